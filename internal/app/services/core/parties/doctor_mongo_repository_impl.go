package parties

import (
	"context"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var doctor models.Doctor
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) AddToPending(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	return r.addToSet(ctx, doctorID, "pendingConsultations", consultationID)
}

func (r *DoctorMongoRepository) RemoveFromPending(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	return r.pull(ctx, doctorID, "pendingConsultations", consultationID)
}

func (r *DoctorMongoRepository) AddToAccepted(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	return r.addToSet(ctx, doctorID, "acceptedConsultations", consultationID)
}

func (r *DoctorMongoRepository) RemoveFromAccepted(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	return r.pull(ctx, doctorID, "acceptedConsultations", consultationID)
}

// SetOngoing claims the slot only when it is empty or already holds the same
// consultation, so a retried claim stays idempotent while a competing one
// fails.
func (r *DoctorMongoRepository) SetOngoing(ctx context.Context, doctorID, consultationID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id": doctorID,
		"$or": []bson.M{
			{"ongoingConsultation": bson.M{"$exists": false}},
			{"ongoingConsultation": nil},
			{"ongoingConsultation": consultationID},
		},
	}
	update := bson.M{"$set": bson.M{
		"ongoingConsultation": consultationID,
		"updatedAt":           time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (r *DoctorMongoRepository) ClearOngoing(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	filter := bson.M{"_id": doctorID, "ongoingConsultation": consultationID}
	update := bson.M{
		"$unset": bson.M{"ongoingConsultation": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.Collection.UpdateOne(ctx, filter, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) AddToHistory(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	return r.addToSet(ctx, doctorID, "consultationHistory", consultationID)
}

func (r *DoctorMongoRepository) IncrementRespondTime(ctx context.Context, doctorID primitive.ObjectID) (int, error) {
	filter := bson.M{"_id": doctorID}
	update := bson.M{
		"$inc": bson.M{"respondTime": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var doctor models.Doctor
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, exceptions.ErrDoctorNotFound(err)
		}
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return doctor.RespondTime, nil
}

func (r *DoctorMongoRepository) ResetMemberships(ctx context.Context) error {
	update := bson.M{
		"$set": bson.M{
			"pendingConsultations":  []primitive.ObjectID{},
			"acceptedConsultations": []primitive.ObjectID{},
			"consultationHistory":   []primitive.ObjectID{},
			"updatedAt":             time.Now(),
		},
		"$unset": bson.M{"ongoingConsultation": ""},
	}
	if _, err := r.Collection.UpdateMany(ctx, bson.M{}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) addToSet(ctx context.Context, doctorID primitive.ObjectID, field string, consultationID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{field: consultationID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.Collection.UpdateOne(ctx, bson.M{"_id": doctorID}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) pull(ctx context.Context, doctorID primitive.ObjectID, field string, consultationID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{field: consultationID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.Collection.UpdateOne(ctx, bson.M{"_id": doctorID}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
