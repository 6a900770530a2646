package storage

import (
	"bytes"
	"context"
	"io"
	"path"
	"rips-service/internal/app/contracts"
	"rips-service/internal/app/models"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/exceptions"
	"strconv"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// objectStore is the part of *minio.Client the sink depends on.
type objectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioStorage struct {
	Client     objectStore
	BucketName string
	Prefix     string
	Log        *zap.Logger
}

// NewMinioStorage stores generated files as objects named
// <prefix>/<file name>. The bucket is created on first use.
func NewMinioStorage(minioClient *minio.Client, bucketName, prefix string, logger *zap.Logger) contracts.FileSink {
	return newMinioStorage(minioClient, bucketName, prefix, logger)
}

func newMinioStorage(client objectStore, bucketName, prefix string, logger *zap.Logger) *minioStorage {
	return &minioStorage{
		Client:     client,
		BucketName: bucketName,
		Prefix:     prefix,
		Log:        logger,
	}
}

func (m *minioStorage) Write(ctx context.Context, file models.GeneratedFile) (string, error) {
	objectName := m.objectName(file.Name)
	m.Log.Info("minioStorage.Write called",
		zap.String(constvars.LoggingFileNameKey, objectName),
		zap.Int(constvars.LoggingRecordCountKey, file.Records),
	)

	if err := m.ensureBucket(ctx); err != nil {
		return "", err
	}

	_, err := m.Client.PutObject(ctx, m.BucketName, objectName, bytes.NewReader(file.Content), int64(len(file.Content)), minio.PutObjectOptions{
		ContentType: file.ContentType,
		UserMetadata: map[string]string{
			"rips-code":    file.Code,
			"rips-records": strconv.Itoa(file.Records),
		},
	})
	if err != nil {
		m.Log.Error("minioStorage.Write error putting object",
			zap.String(constvars.LoggingFileNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrObjectStoreWrite(err, m.BucketName, objectName)
	}

	return m.BucketName + "/" + objectName, nil
}

func (m *minioStorage) ensureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.BucketName)
	if err != nil {
		return exceptions.ErrObjectStoreBucket(err, m.BucketName)
	}
	if exists {
		return nil
	}
	if err := m.Client.MakeBucket(ctx, m.BucketName, minio.MakeBucketOptions{}); err != nil {
		return exceptions.ErrObjectStoreBucket(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) objectName(fileName string) string {
	if m.Prefix == "" {
		return fileName
	}
	return path.Join(m.Prefix, fileName)
}
