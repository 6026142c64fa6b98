package consultations

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

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) (contracts.ConsultationRepository, error) {
	repository := &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
	if err := repository.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return repository, nil
}

// ensureIndexes enforces that a gateway transaction ref settles at most one
// consultation, even when the same tran_ref arrives under two cart IDs. The
// partial filter keeps unpaid consultations (no paymentDetails) out of the
// unique constraint.
func (r *ConsultationMongoRepository) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys: bson.D{{Key: "paymentDetails.transactionRef", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"paymentDetails.transactionRef": bson.M{"$type": "string"},
			}),
	}
	if _, err := r.Collection.Indexes().CreateOne(ctx, index); err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (r *ConsultationMongoRepository) Create(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	now := time.Now()
	consultation.CreatedAt = now
	consultation.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, consultation)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	consultation.ID = result.InsertedID.(primitive.ObjectID)
	return consultation, nil
}

func (r *ConsultationMongoRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var consultation models.Consultation
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) UpdateStatusIfCurrent(ctx context.Context, id primitive.ObjectID, from, to models.ConsultationStatus) (bool, error) {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{
		"status":    to,
		"updatedAt": time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

// MarkPaid refuses to apply when the consultation already carries payment
// state, which is what makes a replayed gateway callback a no-op.
func (r *ConsultationMongoRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, details *models.PaymentDetails, respondTimeSnapshot int) (bool, error) {
	filter := bson.M{
		"_id": id,
		"status": bson.M{"$nin": []models.ConsultationStatus{
			models.ConsultationPaid,
			models.ConsultationOngoing,
			models.ConsultationEnded,
		}},
	}
	update := bson.M{"$set": bson.M{
		"status":              models.ConsultationPaid,
		"paymentDetails":      details,
		"respondTimeSnapshot": respondTimeSnapshot,
		"updatedAt":           time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *ConsultationMongoRepository) End(ctx context.Context, id primitive.ObjectID, duration int) (bool, error) {
	filter := bson.M{"_id": id, "status": models.ConsultationOngoing}
	update := bson.M{"$set": bson.M{
		"status":    models.ConsultationEnded,
		"duration":  duration,
		"updatedAt": time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *ConsultationMongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *ConsultationMongoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.Collection.DeleteMany(ctx, bson.M{}); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// FindPendingPayouts keys on the payout state alone: a payout stays owed
// after the consultation moves on to ongoing or ended.
func (r *ConsultationMongoRepository) FindPendingPayouts(ctx context.Context) ([]models.Consultation, error) {
	filter := bson.M{"paymentDetails.payoutStatus": models.PayoutPending}
	opts := options.Find().SetSort(bson.M{"updatedAt": 1})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	consultations := make([]models.Consultation, 0)
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consultations, nil
}

func (r *ConsultationMongoRepository) MarkPayoutSent(ctx context.Context, id primitive.ObjectID, payoutDate time.Time) (bool, error) {
	filter := bson.M{"_id": id, "paymentDetails.payoutStatus": models.PayoutPending}
	update := bson.M{"$set": bson.M{
		"paymentDetails.payoutStatus": models.PayoutSent,
		"paymentDetails.payoutDate":   payoutDate,
		"updatedAt":                   time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}
