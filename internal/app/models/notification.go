package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is append-only; records are never mutated after creation.
// Receiver is a tagged union: the kind names which collection ReceiverID
// points into.
type Notification struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title          string              `bson:"title" json:"title"`
	Content        string              `bson:"content" json:"content"`
	ReceiverID     primitive.ObjectID  `bson:"receiverId" json:"receiver_id"`
	ReceiverKind   string              `bson:"receiverKind" json:"receiver_kind"`
	ConsultationID *primitive.ObjectID `bson:"consultationId,omitempty" json:"consultation_id,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt" json:"created_at"`
}
