package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		BootstrapLog   *logrus.Logger
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App            App
		JWT            JWT
		PaymentGateway PaymentGateway
		Push           Push
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		EndpointPrefix  string
		Timezone        string
		MaxRequests     int
		ShutdownTimeout int

		// Gateway callback flood guard (fixed window, per gateway).
		CallbackLimitWindowInSeconds int
		CallbackLimitMaxQuota        int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret string
	}

	PaymentGateway struct {
		BaseUrl     string
		ProfileID   int
		ServerKey   string
		Currency    string
		CallbackURL string
		ReturnURL   string
		// Outbound pacing towards the gateway.
		MaxRequestsPerSecond int
	}

	Push struct {
		Endpoint                string
		ServerKey               string
		HTTPTimeoutInSeconds    int
		WorkerIntervalInSeconds int
		MaxRetry                int
		MaxBatch                int
		Prefetch                int
	}
)
