package main

import (
	"context"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/delivery/http/controllers"
	"medilink-service/internal/app/delivery/http/middlewares"
	"medilink-service/internal/app/delivery/http/routers"
	"medilink-service/internal/app/drivers/database"
	"medilink-service/internal/app/drivers/logger"
	"medilink-service/internal/app/drivers/messaging"
	"medilink-service/internal/app/services/core/consultations"
	"medilink-service/internal/app/services/core/ledger"
	"medilink-service/internal/app/services/core/notifications"
	"medilink-service/internal/app/services/core/parties"
	"medilink-service/internal/app/services/core/payments"
	"medilink-service/internal/app/services/shared/locker"
	paymentgateway "medilink-service/internal/app/services/shared/payment_gateway"
	"medilink-service/internal/app/services/shared/push"
	"medilink-service/internal/app/services/shared/pushqueue"
	"medilink-service/internal/app/services/shared/ratelimiter"
	"medilink-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLog.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootstrapLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, bootstrapLog)
	redisClient := database.NewRedisClient(driverConfig, bootstrapLog)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, bootstrapLog)
	chiRouter := chi.NewRouter()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	bootstrapingTheApp(workerCtx, config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		BootstrapLog:   bootstrapLog,
		Logger:         zapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrapLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	stopWorker()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapingTheApp(workerCtx context.Context, bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	callbackLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	payTabsService := paymentgateway.NewPayTabsService(bootstrap.InternalConfig, bootstrap.Logger)

	pushQueue, err := pushqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Push.Prefetch)
	if err != nil {
		bootstrap.BootstrapLog.Fatalf("Failed to initialize push queue: %v", err)
	}
	pushService := push.NewPushService(&bootstrap.InternalConfig.Push, bootstrap.Logger)

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	consultationRepository, err := consultations.NewConsultationMongoRepository(bootstrap.MongoDB, dbName)
	if err != nil {
		bootstrap.BootstrapLog.Fatalf("Failed to initialize consultation repository: %v", err)
	}
	doctorRepository := parties.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := parties.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	platformStatsRepository := ledger.NewPlatformStatsMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, pushQueue, bootstrap.Logger)
	consultationUsecase := consultations.NewConsultationUsecase(
		consultationRepository,
		doctorRepository,
		patientRepository,
		notificationUsecase,
		lockerService,
		bootstrap.Logger,
	)
	ledgerUsecase := ledger.NewLedgerUsecase(consultationRepository, platformStatsRepository, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(
		consultationRepository,
		doctorRepository,
		patientRepository,
		platformStatsRepository,
		notificationUsecase,
		payTabsService,
		lockerService,
		&bootstrap.InternalConfig.PaymentGateway,
		bootstrap.Logger,
	)

	// Push delivery worker
	pushWorker := notifications.NewWorker(bootstrap.Logger, &bootstrap.InternalConfig.Push, lockerService, pushQueue, pushService)
	pushWorker.Start(workerCtx)

	// Delivery
	middlewares := &middlewares.Middlewares{
		Log:             bootstrap.Logger,
		InternalConfig:  bootstrap.InternalConfig,
		CallbackLimiter: callbackLimiter,
	}
	consultationController := controllers.NewConsultationController(bootstrap.Logger, consultationUsecase)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)
	notificationController := controllers.NewNotificationController(bootstrap.Logger, notificationUsecase)
	adminController := controllers.NewAdminController(bootstrap.Logger, ledgerUsecase, consultationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		consultationController,
		paymentController,
		notificationController,
		adminController,
	)
}
