package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConsultationStatus string

const (
	ConsultationRequested ConsultationStatus = "requested"
	ConsultationAccepted  ConsultationStatus = "accepted"
	ConsultationPaid      ConsultationStatus = "paid"
	ConsultationOngoing   ConsultationStatus = "ongoing"
	ConsultationEnded     ConsultationStatus = "ended"
)

type PayoutStatus string

const (
	PayoutPending PayoutStatus = "pending"
	PayoutSent    PayoutStatus = "sent"
)

// PaymentDetails exists if and only if the consultation reached paid.
type PaymentDetails struct {
	TransactionRef string       `bson:"transactionRef" json:"transaction_ref"`
	AmountPaid     int64        `bson:"amountPaid" json:"amount_paid"`
	PlatformCut    int64        `bson:"platformCut" json:"platform_cut"`
	PaidToDoctor   int64        `bson:"paidToDoctor" json:"paid_to_doctor"`
	PayoutStatus   PayoutStatus `bson:"payoutStatus" json:"payout_status"`
	PayoutDate     *time.Time   `bson:"payoutDate,omitempty" json:"payout_date,omitempty"`
}

type Consultation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID primitive.ObjectID `bson:"patientId" json:"patient_id"`
	DoctorID  primitive.ObjectID `bson:"doctorId" json:"doctor_id"`
	Status    ConsultationStatus `bson:"status" json:"status"`

	// Duration in minutes, set when the consultation ends.
	Duration *int `bson:"duration,omitempty" json:"duration,omitempty"`

	// RespondTimeSnapshot is the doctor's respond-time counter as it was at
	// payment time. Historical record, not kept live.
	RespondTimeSnapshot *int `bson:"respondTimeSnapshot,omitempty" json:"respond_time_snapshot,omitempty"`

	PaymentDetails *PaymentDetails `bson:"paymentDetails,omitempty" json:"payment_details,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// HasParty reports whether the given party ID is the consultation's doctor or
// patient of record.
func (c *Consultation) HasParty(partyID primitive.ObjectID) bool {
	return c.DoctorID == partyID || c.PatientID == partyID
}

// ReachedPaid reports whether the payment confirmation has already been
// applied, at which point a replayed callback must be a no-op.
func (c *Consultation) ReachedPaid() bool {
	switch c.Status {
	case ConsultationPaid, ConsultationOngoing, ConsultationEnded:
		return true
	}
	return false
}
