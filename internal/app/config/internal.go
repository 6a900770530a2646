package config

import "rips-service/internal/app/models"

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Rips     AppRips     `mapstructure:"rips"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
}

type App struct {
	Env      string `mapstructure:"env"`
	Version  string `mapstructure:"version"`
	Timezone string `mapstructure:"timezone"`
}

// AppRips holds the provider identity stamped on every generated file and
// the policies of the generation pipeline.
type AppRips struct {
	ProviderCode           string `mapstructure:"provider_code"`
	HabilitationCode       string `mapstructure:"habilitation_code"`
	ProviderName           string `mapstructure:"provider_name"`
	ProviderDocumentType   string `mapstructure:"provider_document_type"`
	ProviderDocumentNumber string `mapstructure:"provider_document_number"`
	DefaultVersion         string `mapstructure:"default_version"`
	NumericPolicy          string `mapstructure:"numeric_policy"`
	DeduplicationPolicy    string `mapstructure:"deduplication_policy"`
	// BillingSource is "json" or "mongo".
	BillingSource string `mapstructure:"billing_source"`
	// FileSink is "local" or "minio".
	FileSink  string `mapstructure:"file_sink"`
	OutputDir string `mapstructure:"output_dir"`
	// NotifyGenerations publishes every finished generation to RabbitMQ.
	NotifyGenerations bool `mapstructure:"notify_generations"`
}

func (r AppRips) Provider() models.Provider {
	return models.Provider{
		Code:             r.ProviderCode,
		HabilitationCode: r.HabilitationCode,
		Name:             r.ProviderName,
		DocumentType:     r.ProviderDocumentType,
		DocumentNumber:   r.ProviderDocumentNumber,
	}
}

type AppMinio struct {
	BucketName   string `mapstructure:"bucket_name"`
	ObjectPrefix string `mapstructure:"object_prefix"`
}

type AppRabbitMQ struct {
	GenerationQueue string `mapstructure:"generation_queue"`
}

type AppMongoDB struct {
	BillingDBName string `mapstructure:"billing_db_name"`
}
