package notifications

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

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (r *NotificationMongoRepository) Insert(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	notification.CreatedAt = time.Now()

	result, err := r.Collection.InsertOne(ctx, notification)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)
	return notification, nil
}

func (r *NotificationMongoRepository) FindByReceiver(ctx context.Context, receiverID primitive.ObjectID, receiverKind string) ([]models.Notification, error) {
	filter := bson.M{"receiverId": receiverID, "receiverKind": receiverKind}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	notifications := make([]models.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (r *NotificationMongoRepository) ExistsForConsultationAndReceiver(ctx context.Context, consultationID, receiverID primitive.ObjectID) (bool, error) {
	filter := bson.M{"consultationId": consultationID, "receiverId": receiverID}
	count, err := r.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}
