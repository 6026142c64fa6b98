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
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var patient models.Patient
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) AddToRequested(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	return r.addToSet(ctx, patientID, "requestedConsultations", consultationID)
}

func (r *PatientMongoRepository) RemoveFromRequested(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	return r.pull(ctx, patientID, "requestedConsultations", consultationID)
}

func (r *PatientMongoRepository) AddToAccepted(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	return r.addToSet(ctx, patientID, "acceptedConsultations", consultationID)
}

func (r *PatientMongoRepository) RemoveFromAccepted(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	return r.pull(ctx, patientID, "acceptedConsultations", consultationID)
}

func (r *PatientMongoRepository) SetOngoing(ctx context.Context, patientID, consultationID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id": patientID,
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

func (r *PatientMongoRepository) ClearOngoing(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	filter := bson.M{"_id": patientID, "ongoingConsultation": consultationID}
	update := bson.M{
		"$unset": bson.M{"ongoingConsultation": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.Collection.UpdateOne(ctx, filter, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) AddToHistory(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	return r.addToSet(ctx, patientID, "consultationHistory", consultationID)
}

func (r *PatientMongoRepository) ResetMemberships(ctx context.Context) error {
	update := bson.M{
		"$set": bson.M{
			"requestedConsultations": []primitive.ObjectID{},
			"acceptedConsultations":  []primitive.ObjectID{},
			"consultationHistory":    []primitive.ObjectID{},
			"updatedAt":              time.Now(),
		},
		"$unset": bson.M{"ongoingConsultation": ""},
	}
	if _, err := r.Collection.UpdateMany(ctx, bson.M{}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) addToSet(ctx context.Context, patientID primitive.ObjectID, field string, consultationID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{field: consultationID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.Collection.UpdateOne(ctx, bson.M{"_id": patientID}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) pull(ctx context.Context, patientID primitive.ObjectID, field string, consultationID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{field: consultationID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.Collection.UpdateOne(ctx, bson.M{"_id": patientID}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
