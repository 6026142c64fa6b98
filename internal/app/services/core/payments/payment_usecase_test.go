package payments

import (
	"context"
	"errors"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	args := m.Called(ctx, consultation)
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	args := m.Called(ctx, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) UpdateStatusIfCurrent(ctx context.Context, id primitive.ObjectID, from, to models.ConsultationStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockConsultationRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, details *models.PaymentDetails, respondTimeSnapshot int) (bool, error) {
	args := m.Called(ctx, id, details, respondTimeSnapshot)
	return args.Bool(0), args.Error(1)
}

func (m *MockConsultationRepository) End(ctx context.Context, id primitive.ObjectID, duration int) (bool, error) {
	args := m.Called(ctx, id, duration)
	return args.Bool(0), args.Error(1)
}

func (m *MockConsultationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockConsultationRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConsultationRepository) FindPendingPayouts(ctx context.Context) ([]models.Consultation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) MarkPayoutSent(ctx context.Context, id primitive.ObjectID, payoutDate time.Time) (bool, error) {
	args := m.Called(ctx, id, payoutDate)
	return args.Bool(0), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) AddToPending(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, doctorID, consultationID)
	return args.Error(0)
}

func (m *MockDoctorRepository) RemoveFromPending(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, doctorID, consultationID)
	return args.Error(0)
}

func (m *MockDoctorRepository) AddToAccepted(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, doctorID, consultationID)
	return args.Error(0)
}

func (m *MockDoctorRepository) RemoveFromAccepted(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, doctorID, consultationID)
	return args.Error(0)
}

func (m *MockDoctorRepository) SetOngoing(ctx context.Context, doctorID, consultationID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, doctorID, consultationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDoctorRepository) ClearOngoing(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, doctorID, consultationID)
	return args.Error(0)
}

func (m *MockDoctorRepository) AddToHistory(ctx context.Context, doctorID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, doctorID, consultationID)
	return args.Error(0)
}

func (m *MockDoctorRepository) IncrementRespondTime(ctx context.Context, doctorID primitive.ObjectID) (int, error) {
	args := m.Called(ctx, doctorID)
	return args.Int(0), args.Error(1)
}

func (m *MockDoctorRepository) ResetMemberships(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) AddToRequested(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, patientID, consultationID)
	return args.Error(0)
}

func (m *MockPatientRepository) RemoveFromRequested(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, patientID, consultationID)
	return args.Error(0)
}

func (m *MockPatientRepository) AddToAccepted(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, patientID, consultationID)
	return args.Error(0)
}

func (m *MockPatientRepository) RemoveFromAccepted(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, patientID, consultationID)
	return args.Error(0)
}

func (m *MockPatientRepository) SetOngoing(ctx context.Context, patientID, consultationID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, patientID, consultationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) ClearOngoing(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, patientID, consultationID)
	return args.Error(0)
}

func (m *MockPatientRepository) AddToHistory(ctx context.Context, patientID, consultationID primitive.ObjectID) error {
	args := m.Called(ctx, patientID, consultationID)
	return args.Error(0)
}

func (m *MockPatientRepository) ResetMemberships(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPlatformStatsRepository struct {
	mock.Mock
}

func (m *MockPlatformStatsRepository) Credit(ctx context.Context, transactionRef string, platformCut int64) error {
	args := m.Called(ctx, transactionRef, platformCut)
	return args.Error(0)
}

func (m *MockPlatformStatsRepository) Get(ctx context.Context) (*models.PlatformStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(*models.PlatformStats), args.Error(1)
}

type MockNotificationUsecase struct {
	mock.Mock
}

func (m *MockNotificationUsecase) Notify(ctx context.Context, input *contracts.NotifyInput) (*models.Notification, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationUsecase) ListForActor(ctx context.Context, actor *models.Actor) ([]models.Notification, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]models.Notification), args.Error(1)
}

type MockPaymentGatewayService struct {
	mock.Mock
}

func (m *MockPaymentGatewayService) CreateHostedPage(ctx context.Context, request *requests.PayTabsCreatePage) (*responses.PayTabsCreatePage, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PayTabsCreatePage), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type usecaseMocks struct {
	consultations *MockConsultationRepository
	doctors       *MockDoctorRepository
	patients      *MockPatientRepository
	stats         *MockPlatformStatsRepository
	notifier      *MockNotificationUsecase
	gateway       *MockPaymentGatewayService
	locker        *MockLockerService
}

func newTestUsecase() (*paymentUsecase, *usecaseMocks) {
	m := &usecaseMocks{
		consultations: new(MockConsultationRepository),
		doctors:       new(MockDoctorRepository),
		patients:      new(MockPatientRepository),
		stats:         new(MockPlatformStatsRepository),
		notifier:      new(MockNotificationUsecase),
		gateway:       new(MockPaymentGatewayService),
		locker:        new(MockLockerService),
	}
	uc := &paymentUsecase{
		ConsultationRepository:  m.consultations,
		DoctorRepository:        m.doctors,
		PatientRepository:       m.patients,
		PlatformStatsRepository: m.stats,
		NotificationUsecase:     m.notifier,
		PaymentGateway:          m.gateway,
		Locker:                  m.locker,
		GatewayConfig: &config.PaymentGateway{
			ProfileID:   46021,
			Currency:    "IDR",
			CallbackURL: "https://api.example.com/api/v1/payments/callback",
			ReturnURL:   "https://app.example.com/payments/return",
		},
		Log: zap.NewNop(),
	}
	return uc, m
}

func (m *usecaseMocks) lockAlwaysAvailable() {
	m.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
	m.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
}

func approvedCallback(consultationID string) *requests.PaymentCallback {
	return &requests.PaymentCallback{
		CartID:  utils.GenerateCartID(consultationID),
		TranRef: "TST2261701234567",
		PaymentResult: requests.PaymentResult{
			ResponseStatus: constvars.PayTabsStatusAuthorized,
		},
	}
}

func TestCreateCheckout(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	consultationID := primitive.NewObjectID()

	accepted := func() *models.Consultation {
		return &models.Consultation{ID: consultationID, PatientID: patientID, DoctorID: doctorID, Status: models.ConsultationAccepted}
	}

	t.Run("issues a hosted page priced at the doctor's fee", func(t *testing.T) {
		uc, m := newTestUsecase()
		actor := &models.Actor{ID: patientID.Hex(), Role: constvars.RolePatient}

		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).Return(accepted(), nil)
		m.doctors.On("FindByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID, Name: "dr. Sari", ConsultationFees: 150000}, nil)
		m.patients.On("FindByID", mock.Anything, patientID.Hex()).
			Return(&models.Patient{ID: patientID, Name: "Ayu", Email: "ayu@example.com"}, nil)
		m.gateway.On("CreateHostedPage", mock.Anything, mock.MatchedBy(func(page *requests.PayTabsCreatePage) bool {
			return page.CartAmount == 150000 &&
				page.TranType == constvars.PayTabsTranTypeSale &&
				page.CartID == utils.GenerateCartID(consultationID.Hex())
		})).Return(&responses.PayTabsCreatePage{RedirectURL: "https://secure.paytabs.com/payment/page/abc"}, nil)

		checkout, err := uc.CreateCheckout(context.Background(), actor, consultationID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, "https://secure.paytabs.com/payment/page/abc", checkout.PaymentURL)
		assert.Equal(t, utils.GenerateCartID(consultationID.Hex()), checkout.CartID)
	})

	t.Run("only an accepted consultation can be paid", func(t *testing.T) {
		uc, m := newTestUsecase()
		actor := &models.Actor{ID: patientID.Hex(), Role: constvars.RolePatient}

		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).
			Return(&models.Consultation{ID: consultationID, PatientID: patientID, DoctorID: doctorID, Status: models.ConsultationRequested}, nil)

		_, err := uc.CreateCheckout(context.Background(), actor, consultationID.Hex())

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		m.gateway.AssertNotCalled(t, "CreateHostedPage", mock.Anything, mock.Anything)
	})

	t.Run("another patient cannot pay for it", func(t *testing.T) {
		uc, m := newTestUsecase()
		stranger := &models.Actor{ID: primitive.NewObjectID().Hex(), Role: constvars.RolePatient}

		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).Return(accepted(), nil)

		_, err := uc.CreateCheckout(context.Background(), stranger, consultationID.Hex())

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestPaymentCallback(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	consultationID := primitive.NewObjectID()

	acceptedConsultation := func() *models.Consultation {
		return &models.Consultation{ID: consultationID, PatientID: patientID, DoctorID: doctorID, Status: models.ConsultationAccepted}
	}

	paidDetails := func() *models.PaymentDetails {
		return &models.PaymentDetails{
			TransactionRef: "TST2261701234567",
			AmountPaid:     150001,
			PlatformCut:    30000,
			PaidToDoctor:   120001,
			PayoutStatus:   models.PayoutPending,
		}
	}

	t.Run("approved payment commits split, memberships, stats and notification", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.lockAlwaysAvailable()

		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).Return(acceptedConsultation(), nil)
		m.doctors.On("FindByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID, Name: "dr. Sari", ConsultationFees: 150001, RespondTime: 7, DeviceToken: "tok-1"}, nil)
		m.consultations.On("MarkPaid", mock.Anything, consultationID, mock.MatchedBy(func(details *models.PaymentDetails) bool {
			return details.PlatformCut == 30000 &&
				details.PaidToDoctor == 120001 &&
				details.PlatformCut+details.PaidToDoctor == details.AmountPaid &&
				details.PayoutStatus == models.PayoutPending &&
				details.TransactionRef == "TST2261701234567"
		}), 7).Return(true, nil)
		m.doctors.On("IncrementRespondTime", mock.Anything, doctorID).Return(7, nil)
		m.doctors.On("RemoveFromPending", mock.Anything, doctorID, consultationID).Return(nil)
		m.doctors.On("AddToAccepted", mock.Anything, doctorID, consultationID).Return(nil)
		m.patients.On("RemoveFromRequested", mock.Anything, patientID, consultationID).Return(nil)
		m.patients.On("AddToAccepted", mock.Anything, patientID, consultationID).Return(nil)
		m.stats.On("Credit", mock.Anything, "TST2261701234567", int64(30000)).Return(nil)
		m.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in *contracts.NotifyInput) bool {
			return in.SkipIfExists && in.ConsultationID != nil && *in.ConsultationID == consultationID
		})).Return(&models.Notification{}, nil)

		ack, err := uc.PaymentCallback(context.Background(), approvedCallback(consultationID.Hex()))

		assert.NoError(t, err)
		assert.False(t, ack.AlreadyProcessed)
		assert.Equal(t, consultationID.Hex(), ack.ConsultationID)
		m.consultations.AssertExpectations(t)
		m.doctors.AssertExpectations(t)
		m.patients.AssertExpectations(t)
		m.stats.AssertExpectations(t)
		m.notifier.AssertExpectations(t)
	})

	t.Run("replayed callback acknowledges without re-committing the payment", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.lockAlwaysAvailable()

		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).
			Return(&models.Consultation{ID: consultationID, PatientID: patientID, DoctorID: doctorID, Status: models.ConsultationPaid, PaymentDetails: paidDetails()}, nil)
		m.doctors.On("FindByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID, DeviceToken: "tok-1"}, nil)
		m.doctors.On("RemoveFromPending", mock.Anything, doctorID, consultationID).Return(nil)
		m.doctors.On("AddToAccepted", mock.Anything, doctorID, consultationID).Return(nil)
		m.patients.On("RemoveFromRequested", mock.Anything, patientID, consultationID).Return(nil)
		m.patients.On("AddToAccepted", mock.Anything, patientID, consultationID).Return(nil)
		m.stats.On("Credit", mock.Anything, "TST2261701234567", int64(30000)).Return(nil)
		m.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in *contracts.NotifyInput) bool {
			return in.SkipIfExists && in.ConsultationID != nil && *in.ConsultationID == consultationID
		})).Return(nil, nil)

		ack, err := uc.PaymentCallback(context.Background(), approvedCallback(consultationID.Hex()))

		assert.NoError(t, err)
		assert.True(t, ack.AlreadyProcessed)
		m.consultations.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.doctors.AssertNotCalled(t, "IncrementRespondTime", mock.Anything, mock.Anything)
	})

	t.Run("replay after the consultation moved past paid leaves memberships alone", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.lockAlwaysAvailable()

		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).
			Return(&models.Consultation{ID: consultationID, PatientID: patientID, DoctorID: doctorID, Status: models.ConsultationOngoing, PaymentDetails: paidDetails()}, nil)
		m.doctors.On("FindByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID, DeviceToken: "tok-1"}, nil)
		m.stats.On("Credit", mock.Anything, "TST2261701234567", int64(30000)).Return(nil)
		m.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil, nil)

		ack, err := uc.PaymentCallback(context.Background(), approvedCallback(consultationID.Hex()))

		assert.NoError(t, err)
		assert.True(t, ack.AlreadyProcessed)
		m.doctors.AssertNotCalled(t, "RemoveFromPending", mock.Anything, mock.Anything, mock.Anything)
		m.doctors.AssertNotCalled(t, "AddToAccepted", mock.Anything, mock.Anything, mock.Anything)
		m.patients.AssertNotCalled(t, "RemoveFromRequested", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ledger credit failure after the commit is recovered by the retry", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.lockAlwaysAvailable()

		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).Return(acceptedConsultation(), nil).Once()
		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).
			Return(&models.Consultation{ID: consultationID, PatientID: patientID, DoctorID: doctorID, Status: models.ConsultationPaid, PaymentDetails: paidDetails()}, nil).Once()
		m.doctors.On("FindByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID, Name: "dr. Sari", ConsultationFees: 150001, RespondTime: 7, DeviceToken: "tok-1"}, nil)
		m.consultations.On("MarkPaid", mock.Anything, consultationID, mock.Anything, 7).Return(true, nil).Once()
		m.doctors.On("IncrementRespondTime", mock.Anything, doctorID).Return(7, nil)
		m.doctors.On("RemoveFromPending", mock.Anything, doctorID, consultationID).Return(nil)
		m.doctors.On("AddToAccepted", mock.Anything, doctorID, consultationID).Return(nil)
		m.patients.On("RemoveFromRequested", mock.Anything, patientID, consultationID).Return(nil)
		m.patients.On("AddToAccepted", mock.Anything, patientID, consultationID).Return(nil)
		m.stats.On("Credit", mock.Anything, "TST2261701234567", int64(30000)).
			Return(errors.New("connection reset")).Once()
		m.stats.On("Credit", mock.Anything, "TST2261701234567", int64(30000)).Return(nil).Once()
		m.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := uc.PaymentCallback(context.Background(), approvedCallback(consultationID.Hex()))
		assert.Error(t, err, "the gateway must see a failure so it retries")

		ack, err := uc.PaymentCallback(context.Background(), approvedCallback(consultationID.Hex()))
		assert.NoError(t, err)
		assert.True(t, ack.AlreadyProcessed)
		m.stats.AssertNumberOfCalls(t, "Credit", 2)
		m.consultations.AssertNumberOfCalls(t, "MarkPaid", 1)
	})

	t.Run("lost MarkPaid race is treated as a replay", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.lockAlwaysAvailable()

		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).Return(acceptedConsultation(), nil)
		m.doctors.On("FindByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID, ConsultationFees: 150000, RespondTime: 3}, nil)
		m.consultations.On("MarkPaid", mock.Anything, consultationID, mock.Anything, 3).Return(false, nil)

		ack, err := uc.PaymentCallback(context.Background(), approvedCallback(consultationID.Hex()))

		assert.NoError(t, err)
		assert.True(t, ack.AlreadyProcessed)
		m.doctors.AssertNotCalled(t, "IncrementRespondTime", mock.Anything, mock.Anything)
		m.stats.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
		m.doctors.AssertNotCalled(t, "RemoveFromPending", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("declined payment is rejected and stays unpaid", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.lockAlwaysAvailable()

		m.consultations.On("FindByID", mock.Anything, consultationID.Hex()).Return(acceptedConsultation(), nil)

		callback := approvedCallback(consultationID.Hex())
		callback.PaymentResult.ResponseStatus = constvars.PayTabsStatusDeclined

		_, err := uc.PaymentCallback(context.Background(), callback)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		m.consultations.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed cart id is rejected before locking", func(t *testing.T) {
		uc, m := newTestUsecase()

		callback := approvedCallback(consultationID.Hex())
		callback.CartID = "order_12345"

		_, err := uc.PaymentCallback(context.Background(), callback)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		m.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})
}
