package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		// ConnectTimeout is in seconds.
		ConnectTimeout int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     int
		Host     string
		Username string
		Password string
		VHost    string
		// Heartbeat is in seconds.
		Heartbeat int
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		Region   string
		UseSSL   bool
	}
)
