package config

import (
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/utils"

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
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),

			ConnectTimeout: utils.GetEnvInt("MONGODB_CONNECT_TIMEOUT", 10),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvInt("RABBITMQ_PORT", 5672),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
			VHost:    utils.GetEnvString("RABBITMQ_VHOST", "/"),

			Heartbeat: utils.GetEnvInt("RABBITMQ_HEARTBEAT", 10),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			Region:   utils.GetEnvString("MINIO_REGION", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "America/Bogota"),
		},
		Rips: AppRips{
			ProviderCode:           utils.GetEnvString("RIPS_PROVIDER_CODE", ""),
			HabilitationCode:       utils.GetEnvString("RIPS_HABILITATION_CODE", ""),
			ProviderName:           utils.GetEnvString("RIPS_PROVIDER_NAME", ""),
			ProviderDocumentType:   utils.GetEnvString("RIPS_PROVIDER_DOCUMENT_TYPE", "NI"),
			ProviderDocumentNumber: utils.GetEnvString("RIPS_PROVIDER_DOCUMENT_NUMBER", ""),
			DefaultVersion:         utils.GetEnvString("RIPS_DEFAULT_VERSION", constvars.RipsVersionCurrent),
			NumericPolicy:          utils.GetEnvString("RIPS_NUMERIC_POLICY", "truncate"),
			DeduplicationPolicy:    utils.GetEnvString("RIPS_DEDUPLICATION_POLICY", "first-wins"),
			BillingSource:          utils.GetEnvString("RIPS_BILLING_SOURCE", constvars.RipsBillingSourceJSON),
			FileSink:               utils.GetEnvString("RIPS_FILE_SINK", constvars.RipsFileSinkLocal),
			OutputDir:              utils.GetEnvString("RIPS_OUTPUT_DIR", "./rips"),
			NotifyGenerations:      utils.GetEnvBool("RIPS_NOTIFY_GENERATIONS", false),
		},
		Minio: AppMinio{
			BucketName:   utils.GetEnvString("APP_MINIO_BUCKET_NAME", "rips"),
			ObjectPrefix: utils.GetEnvString("APP_MINIO_OBJECT_PREFIX", ""),
		},
		RabbitMQ: AppRabbitMQ{
			GenerationQueue: utils.GetEnvString("APP_RABBITMQ_GENERATION_QUEUE", "rips.generations"),
		},
		MongoDB: AppMongoDB{
			BillingDBName: utils.GetEnvString("APP_MONGODB_BILLING_DB_NAME", "billing"),
		},
	}
}
