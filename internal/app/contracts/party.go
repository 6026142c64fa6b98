package contracts

import (
	"context"
	"medilink-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DoctorRepository mutates the doctor-side membership lists. Add/remove
// operations are idempotent at the membership level: adding a present ref or
// removing an absent one is a no-op.
type DoctorRepository interface {
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	AddToPending(ctx context.Context, doctorID, consultationID primitive.ObjectID) error
	RemoveFromPending(ctx context.Context, doctorID, consultationID primitive.ObjectID) error
	AddToAccepted(ctx context.Context, doctorID, consultationID primitive.ObjectID) error
	RemoveFromAccepted(ctx context.Context, doctorID, consultationID primitive.ObjectID) error
	// SetOngoing claims the single ongoing slot; false means it was occupied.
	SetOngoing(ctx context.Context, doctorID, consultationID primitive.ObjectID) (bool, error)
	// ClearOngoing releases the slot only if it still holds consultationID.
	ClearOngoing(ctx context.Context, doctorID, consultationID primitive.ObjectID) error
	AddToHistory(ctx context.Context, doctorID, consultationID primitive.ObjectID) error
	// IncrementRespondTime bumps the counter and returns the pre-increment
	// value for the consultation's historical snapshot.
	IncrementRespondTime(ctx context.Context, doctorID primitive.ObjectID) (int, error)
	ResetMemberships(ctx context.Context) error
}

type PatientRepository interface {
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	AddToRequested(ctx context.Context, patientID, consultationID primitive.ObjectID) error
	RemoveFromRequested(ctx context.Context, patientID, consultationID primitive.ObjectID) error
	AddToAccepted(ctx context.Context, patientID, consultationID primitive.ObjectID) error
	RemoveFromAccepted(ctx context.Context, patientID, consultationID primitive.ObjectID) error
	SetOngoing(ctx context.Context, patientID, consultationID primitive.ObjectID) (bool, error)
	ClearOngoing(ctx context.Context, patientID, consultationID primitive.ObjectID) error
	AddToHistory(ctx context.Context, patientID, consultationID primitive.ObjectID) error
	ResetMemberships(ctx context.Context) error
}
