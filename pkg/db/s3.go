package db

import (
	"context"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Objects *minio.Client

func InitS3(endpoint, accessKey, secretKey string, secure bool, bucket string) error {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	}

	client, err := minio.New(endpoint, opts)
	if err != nil {
		return err
	}

	if ok, err := client.BucketExists(context.Background(), bucket); err != nil || !ok {
		slog.Warn("MinIO wordlist bucket is not available", "bucket", bucket)
	}

	Objects = client

	return nil
}

func GetObject(ctx context.Context, bucket, objName string) (io.ReadCloser, error) {
	obj, err := Objects.GetObject(ctx, bucket, objName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; stat surfaces a missing object before parsing starts
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}

	return obj, nil
}
