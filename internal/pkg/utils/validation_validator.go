package utils

import (
	"medilink-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("party_role", validatePartyRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePartyRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleDoctor || value == constvars.RolePatient
}
