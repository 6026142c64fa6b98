package requests

type CreateConsultation struct {
	DoctorID string `json:"doctor_id" validate:"required"`
}

type EndConsultation struct {
	// Duration of the finished consultation in minutes.
	Duration int `json:"duration" validate:"required,gt=0"`
}
