package storage

import (
	"fmt"
	"log"
	"rips-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio returns a client for any S3 compatible object store. RIPS
// remissions are archived there when the minio file sink is selected.
func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:        credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure:       driverConfig.Minio.UseSSL,
		Region:       driverConfig.Minio.Region,
		BucketLookup: minio.BucketLookupAuto,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	log.Printf("Minio client ready for %s", endPoint)
	return minioClient
}
