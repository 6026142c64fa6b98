package notifications

import (
	"context"
	"errors"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Insert(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	args := m.Called(ctx, notification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByReceiver(ctx context.Context, receiverID primitive.ObjectID, receiverKind string) ([]models.Notification, error) {
	args := m.Called(ctx, receiverID, receiverKind)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ExistsForConsultationAndReceiver(ctx context.Context, consultationID, receiverID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, consultationID, receiverID)
	return args.Bool(0), args.Error(1)
}

type MockPushDispatcher struct {
	mock.Mock
}

func (m *MockPushDispatcher) EnqueuePushDispatch(ctx context.Context, dispatch *contracts.PushDispatch) error {
	args := m.Called(ctx, dispatch)
	return args.Error(0)
}

func newTestUsecase() (*notificationUsecase, *MockNotificationRepository, *MockPushDispatcher) {
	repo := new(MockNotificationRepository)
	dispatcher := new(MockPushDispatcher)
	uc := &notificationUsecase{
		NotificationRepository: repo,
		PushDispatcher:         dispatcher,
		Log:                    zap.NewNop(),
	}
	return uc, repo, dispatcher
}

func TestNotify(t *testing.T) {
	receiverID := primitive.NewObjectID()
	consultationID := primitive.NewObjectID()

	t.Run("persists the record then enqueues delivery", func(t *testing.T) {
		uc, repo, dispatcher := newTestUsecase()
		stored := &models.Notification{ID: primitive.NewObjectID(), ReceiverID: receiverID}

		repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Notification")).Return(stored, nil)
		dispatcher.On("EnqueuePushDispatch", mock.Anything, mock.MatchedBy(func(d *contracts.PushDispatch) bool {
			return d.NotificationID == stored.ID.Hex() && d.DeviceToken == "tok-1"
		})).Return(nil)

		notification, err := uc.Notify(context.Background(), &contracts.NotifyInput{
			ReceiverID:   receiverID,
			ReceiverKind: constvars.ReceiverKindDoctor,
			DeviceToken:  "tok-1",
			Title:        "New consultation request",
			Content:      "Ayu has requested a consultation with you.",
		})

		assert.NoError(t, err)
		assert.Equal(t, stored.ID, notification.ID)
		dispatcher.AssertExpectations(t)
	})

	t.Run("suppresses a duplicate for the same consultation and receiver", func(t *testing.T) {
		uc, repo, dispatcher := newTestUsecase()

		repo.On("ExistsForConsultationAndReceiver", mock.Anything, consultationID, receiverID).Return(true, nil)

		notification, err := uc.Notify(context.Background(), &contracts.NotifyInput{
			ReceiverID:     receiverID,
			ReceiverKind:   constvars.ReceiverKindDoctor,
			DeviceToken:    "tok-1",
			Title:          "Payment received",
			ConsultationID: &consultationID,
			SkipIfExists:   true,
		})

		assert.NoError(t, err)
		assert.Nil(t, notification)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		dispatcher.AssertNotCalled(t, "EnqueuePushDispatch", mock.Anything, mock.Anything)
	})

	t.Run("skips delivery when the receiver has no device token", func(t *testing.T) {
		uc, repo, dispatcher := newTestUsecase()
		stored := &models.Notification{ID: primitive.NewObjectID(), ReceiverID: receiverID}

		repo.On("Insert", mock.Anything, mock.Anything).Return(stored, nil)

		notification, err := uc.Notify(context.Background(), &contracts.NotifyInput{
			ReceiverID:   receiverID,
			ReceiverKind: constvars.ReceiverKindPatient,
			Title:        "Consultation accepted",
		})

		assert.NoError(t, err)
		assert.NotNil(t, notification)
		dispatcher.AssertNotCalled(t, "EnqueuePushDispatch", mock.Anything, mock.Anything)
	})

	t.Run("failed enqueue never loses the persisted record", func(t *testing.T) {
		uc, repo, dispatcher := newTestUsecase()
		stored := &models.Notification{ID: primitive.NewObjectID(), ReceiverID: receiverID}

		repo.On("Insert", mock.Anything, mock.Anything).Return(stored, nil)
		dispatcher.On("EnqueuePushDispatch", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		notification, err := uc.Notify(context.Background(), &contracts.NotifyInput{
			ReceiverID:   receiverID,
			ReceiverKind: constvars.ReceiverKindDoctor,
			DeviceToken:  "tok-1",
			Title:        "Consultation cancelled",
		})

		assert.NoError(t, err)
		assert.Equal(t, stored.ID, notification.ID)
	})
}

func TestListForActor(t *testing.T) {
	receiverID := primitive.NewObjectID()

	t.Run("doctor reads the doctor feed", func(t *testing.T) {
		uc, repo, _ := newTestUsecase()
		feed := []models.Notification{{ID: primitive.NewObjectID(), ReceiverID: receiverID}}

		repo.On("FindByReceiver", mock.Anything, receiverID, constvars.ReceiverKindDoctor).Return(feed, nil)

		notifications, err := uc.ListForActor(context.Background(), &models.Actor{ID: receiverID.Hex(), Role: constvars.RoleDoctor})

		assert.NoError(t, err)
		assert.Len(t, notifications, 1)
	})

	t.Run("admin has no feed", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		_, err := uc.ListForActor(context.Background(), &models.Actor{ID: receiverID.Hex(), Role: constvars.RoleAdmin})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}
