package config

import (
	"medilink-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medilink"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", "development"),
			Port:                         utils.GetEnvString("APP_PORT", ":8080"),
			Version:                      utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:               utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:                  utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:              utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			CallbackLimitWindowInSeconds: utils.GetEnvInt("APP_CALLBACK_LIMIT_WINDOW_IN_SECONDS", 60),
			CallbackLimitMaxQuota:        utils.GetEnvInt("APP_CALLBACK_LIMIT_MAX_QUOTA", 120),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:              utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://secure.paytabs.com"),
			ProfileID:            utils.GetEnvInt("PAYMENT_GATEWAY_PROFILE_ID", 0),
			ServerKey:            utils.GetEnvString("PAYMENT_GATEWAY_SERVER_KEY", ""),
			Currency:             utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "USD"),
			CallbackURL:          utils.GetEnvString("PAYMENT_GATEWAY_CALLBACK_URL", ""),
			ReturnURL:            utils.GetEnvString("PAYMENT_GATEWAY_RETURN_URL", ""),
			MaxRequestsPerSecond: utils.GetEnvInt("PAYMENT_GATEWAY_MAX_REQUESTS_PER_SECOND", 5),
		},
		Push: Push{
			Endpoint:                utils.GetEnvString("PUSH_ENDPOINT", "https://fcm.googleapis.com/fcm/send"),
			ServerKey:               utils.GetEnvString("PUSH_SERVER_KEY", ""),
			HTTPTimeoutInSeconds:    utils.GetEnvInt("PUSH_HTTP_TIMEOUT_IN_SECONDS", 10),
			WorkerIntervalInSeconds: utils.GetEnvInt("PUSH_WORKER_INTERVAL_IN_SECONDS", 15),
			MaxRetry:                utils.GetEnvInt("PUSH_MAX_RETRY", 3),
			MaxBatch:                utils.GetEnvInt("PUSH_MAX_BATCH", 20),
			Prefetch:                utils.GetEnvInt("PUSH_PREFETCH", 10),
		},
	}
}
