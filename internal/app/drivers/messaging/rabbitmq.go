package messaging

import (
	"log"
	"rips-service/internal/app/config"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const connectionName = "rips-service"

// NewRabbitMQ dials the broker that receives generation events. Credentials
// are escaped by amqp091.URI, so passwords may contain any character.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	uri := buildURI(driverConfig)
	conn, err := amqp091.DialConfig(uri.String(), amqp091.Config{
		Heartbeat:  time.Duration(driverConfig.RabbitMQ.Heartbeat) * time.Second,
		Locale:     "en_US",
		Properties: amqp091.Table{"connection_name": connectionName},
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s:%d: %s", uri.Host, uri.Port, err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

func buildURI(driverConfig *config.DriverConfig) amqp091.URI {
	vhost := driverConfig.RabbitMQ.VHost
	if vhost == "" {
		vhost = "/"
	}
	return amqp091.URI{
		Scheme:   "amqp",
		Host:     driverConfig.RabbitMQ.Host,
		Port:     driverConfig.RabbitMQ.Port,
		Username: driverConfig.RabbitMQ.Username,
		Password: driverConfig.RabbitMQ.Password,
		Vhost:    vhost,
	}
}
