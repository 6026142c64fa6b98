package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/delivery/http/controllers"
	"medilink-service/internal/app/delivery/http/middlewares"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
	"medilink-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockConsultationUsecase struct {
	mock.Mock
}

func (m *MockConsultationUsecase) RequestConsultation(ctx context.Context, actor *models.Actor, request *requests.CreateConsultation) (*models.Consultation, error) {
	args := m.Called(ctx, actor, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationUsecase) AcceptConsultation(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error) {
	args := m.Called(ctx, actor, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationUsecase) CancelConsultation(ctx context.Context, actor *models.Actor, consultationID string) error {
	args := m.Called(ctx, actor, consultationID)
	return args.Error(0)
}

func (m *MockConsultationUsecase) StartConsultation(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error) {
	args := m.Called(ctx, actor, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationUsecase) EndConsultation(ctx context.Context, actor *models.Actor, consultationID string, request *requests.EndConsultation) (*models.Consultation, error) {
	args := m.Called(ctx, actor, consultationID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationUsecase) GetConsultation(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error) {
	args := m.Called(ctx, actor, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationUsecase) ResetConsultations(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) CreateCheckout(ctx context.Context, actor *models.Actor, consultationID string) (*responses.CreateCheckout, error) {
	args := m.Called(ctx, actor, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreateCheckout), args.Error(1)
}

func (m *MockPaymentUsecase) PaymentCallback(ctx context.Context, callback *requests.PaymentCallback) (*responses.PaymentCallbackAck, error) {
	args := m.Called(ctx, callback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentCallbackAck), args.Error(1)
}

const testJWTSecret = "router-test-secret"

func signActorToken(t *testing.T, actorID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  actorID,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	return signed
}

func TestConsultationRouter(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret: testJWTSecret,
		},
	}

	mockConsultationUsecase := new(MockConsultationUsecase)
	mockPaymentUsecase := new(MockPaymentUsecase)

	consultationController := controllers.NewConsultationController(logger, mockConsultationUsecase)
	paymentController := controllers.NewPaymentController(logger, mockPaymentUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachConsultationRoutes(router, middlewareInstance, consultationController, paymentController)

	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	consultationID := primitive.NewObjectID()

	t.Run("Request without token", func(t *testing.T) {
		jsonBody, _ := json.Marshal(requests.CreateConsultation{DoctorID: doctorID.Hex()})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized without a bearer token")
		mockConsultationUsecase.AssertNotCalled(t, "RequestConsultation")
	})

	t.Run("Request with garbage token", func(t *testing.T) {
		jsonBody, _ := json.Marshal(requests.CreateConsultation{DoctorID: doctorID.Hex()})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for an unparseable token")
		mockConsultationUsecase.AssertNotCalled(t, "RequestConsultation")
	})

	t.Run("Request with unknown role claim", func(t *testing.T) {
		jsonBody, _ := json.Marshal(requests.CreateConsultation{DoctorID: doctorID.Hex()})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signActorToken(t, patientID.Hex(), "superuser"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for an unknown role")
		mockConsultationUsecase.AssertNotCalled(t, "RequestConsultation")
	})

	t.Run("Request with valid patient token", func(t *testing.T) {
		mockConsultationUsecase.On("RequestConsultation", mock.Anything, mock.MatchedBy(func(actor *models.Actor) bool {
			return actor.ID == patientID.Hex() && actor.Role == constvars.RolePatient
		}), mock.AnythingOfType("*requests.CreateConsultation")).
			Return(&models.Consultation{ID: consultationID, PatientID: patientID, DoctorID: doctorID, Status: models.ConsultationRequested}, nil)

		jsonBody, _ := json.Marshal(requests.CreateConsultation{DoctorID: doctorID.Hex()})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signActorToken(t, patientID.Hex(), constvars.RolePatient))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created")
		mockConsultationUsecase.AssertExpectations(t)
	})

	t.Run("Request with missing doctor_id", func(t *testing.T) {
		jsonBody, _ := json.Marshal(map[string]interface{}{})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signActorToken(t, patientID.Hex(), constvars.RolePatient))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for missing doctor_id")
	})

	t.Run("Accept with doctor token", func(t *testing.T) {
		mockConsultationUsecase.On("AcceptConsultation", mock.Anything, mock.MatchedBy(func(actor *models.Actor) bool {
			return actor.ID == doctorID.Hex() && actor.Role == constvars.RoleDoctor
		}), consultationID.Hex()).
			Return(&models.Consultation{ID: consultationID, PatientID: patientID, DoctorID: doctorID, Status: models.ConsultationAccepted}, nil)

		req := httptest.NewRequest("PUT", "/"+consultationID.Hex()+"/accept", nil)
		req.Header.Set("Authorization", "Bearer "+signActorToken(t, doctorID.Hex(), constvars.RoleDoctor))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK")
		mockConsultationUsecase.AssertExpectations(t)
	})

	t.Run("Start on an unpaid consultation surfaces the conflict", func(t *testing.T) {
		staleID := primitive.NewObjectID()
		mockConsultationUsecase.On("StartConsultation", mock.Anything, mock.Anything, staleID.Hex()).
			Return(nil, exceptions.ErrInvalidConsultationState(nil))

		req := httptest.NewRequest("PUT", "/"+staleID.Hex()+"/start", nil)
		req.Header.Set("Authorization", "Bearer "+signActorToken(t, doctorID.Hex(), constvars.RoleDoctor))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code, "should return 409 Conflict for an invalid transition")
	})

	t.Run("Pay routes to the payment checkout", func(t *testing.T) {
		mockPaymentUsecase.On("CreateCheckout", mock.Anything, mock.MatchedBy(func(actor *models.Actor) bool {
			return actor.ID == patientID.Hex() && actor.Role == constvars.RolePatient
		}), consultationID.Hex()).
			Return(&responses.CreateCheckout{PaymentURL: "https://secure.paytabs.com/payment/page/abc", CartID: "cons_" + consultationID.Hex()}, nil)

		req := httptest.NewRequest("POST", "/"+consultationID.Hex()+"/pay", nil)
		req.Header.Set("Authorization", "Bearer "+signActorToken(t, patientID.Hex(), constvars.RolePatient))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK")
		mockPaymentUsecase.AssertExpectations(t)
	})
}
