package ledger

import (
	"context"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PlatformStatsMongoRepository struct {
	Collection    *mongo.Collection
	CreditMarkers *mongo.Collection
}

func NewPlatformStatsMongoRepository(db *mongo.Client, dbName string) contracts.PlatformStatsRepository {
	return &PlatformStatsMongoRepository{
		Collection:    db.Database(dbName).Collection(constvars.MongoCollectionPlatformStats),
		CreditMarkers: db.Database(dbName).Collection(constvars.MongoCollectionLedgerCredits),
	}
}

// Credit increments the singleton counters at most once per transaction ref.
// A marker document keyed by the ref is inserted first; a duplicate-key error
// means the credit was already applied and the call is a no-op.
func (r *PlatformStatsMongoRepository) Credit(ctx context.Context, transactionRef string, platformCut int64) error {
	marker := bson.M{
		"_id":         transactionRef,
		"platformCut": platformCut,
		"createdAt":   time.Now(),
	}
	if _, err := r.CreditMarkers.InsertOne(ctx, marker); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}

	filter := bson.M{"_id": constvars.PlatformStatsDocumentID}
	update := bson.M{
		"$setOnInsert": bson.M{"_id": constvars.PlatformStatsDocumentID},
		"$inc": bson.M{
			"totalPlatformCut":  platformCut,
			"totalTransactions": int64(1),
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.Collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PlatformStatsMongoRepository) Get(ctx context.Context) (*models.PlatformStats, error) {
	var stats models.PlatformStats
	err := r.Collection.FindOne(ctx, bson.M{"_id": constvars.PlatformStatsDocumentID}).Decode(&stats)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.PlatformStats{ID: constvars.PlatformStatsDocumentID}, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &stats, nil
}
