package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor holds the doctor-side membership lists. A consultation reference
// lives in exactly one of pending, accepted, ongoing or history at any time.
type Doctor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phone_number"`
	SpecialityID primitive.ObjectID `bson:"specialityId,omitempty" json:"speciality_id,omitempty"`

	// ConsultationFees in minor currency units; the amount charged on payment.
	ConsultationFees int64 `bson:"consultationFees" json:"consultation_fees"`

	// RespondTime counts completed paid consultations, used elsewhere as an
	// experience/ranking signal.
	RespondTime int `bson:"respondTime" json:"respond_time"`

	DeviceToken string `bson:"deviceToken,omitempty" json:"-"`

	PendingConsultations  []primitive.ObjectID `bson:"pendingConsultations" json:"pending_consultations"`
	AcceptedConsultations []primitive.ObjectID `bson:"acceptedConsultations" json:"accepted_consultations"`
	OngoingConsultation   *primitive.ObjectID  `bson:"ongoingConsultation,omitempty" json:"ongoing_consultation,omitempty"`
	ConsultationHistory   []primitive.ObjectID `bson:"consultationHistory" json:"consultation_history"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// Patient mirrors the doctor's membership shape; "requested" is the
// patient-side name for the pending list.
type Patient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phone_number"`

	DeviceToken string `bson:"deviceToken,omitempty" json:"-"`

	RequestedConsultations []primitive.ObjectID `bson:"requestedConsultations" json:"requested_consultations"`
	AcceptedConsultations  []primitive.ObjectID `bson:"acceptedConsultations" json:"accepted_consultations"`
	OngoingConsultation    *primitive.ObjectID  `bson:"ongoingConsultation,omitempty" json:"ongoing_consultation,omitempty"`
	ConsultationHistory    []primitive.ObjectID `bson:"consultationHistory" json:"consultation_history"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
