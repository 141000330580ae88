package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/skystore/skystore/internal/infrastructure/logging"
)

// MinioConfig holds connection settings for an S3-compatible server.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Minio stores objects in a single bucket of an S3-compatible server.
// Directory markers are zero-byte objects whose key ends in "/".
type Minio struct {
	client *minio.Client
	bucket string
	logger *logging.Logger
}

// NewMinio connects to the server and ensures the bucket exists.
func NewMinio(ctx context.Context, cfg MinioConfig, logger *logging.Logger) (*Minio, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.Bucket, err)
		}
		logger.Info("created bucket", zap.String("bucket", cfg.Bucket))
	}

	return &Minio{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

func (s *Minio) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("stat %q: %w", key, err)
	}
	return true, nil
}

func (s *Minio) SaveFile(ctx context.Context, key string, content []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *Minio) GetFile(ctx context.Context, key string) ([]byte, error) {
	stream, err := s.GetFileStream(ctx, key)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	content, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return content, nil
}

func (s *Minio) GetFileStream(ctx context.Context, key string) (io.ReadCloser, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return object, nil
}

func (s *Minio) Delete(ctx context.Context, key string) error {
	if !strings.HasSuffix(key, "/") {
		return s.removeOne(ctx, key)
	}
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: key, Recursive: true}) {
		if info.Err != nil {
			return fmt.Errorf("list %q: %w", key, info.Err)
		}
		if err := s.removeOne(ctx, info.Key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Minio) removeOne(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (s *Minio) Move(ctx context.Context, fromKey, toKey string) error {
	if !strings.HasSuffix(fromKey, "/") {
		if err := s.copyOne(ctx, fromKey, toKey); err != nil {
			return err
		}
		return s.removeOne(ctx, fromKey)
	}

	sources, err := s.ListRecursive(ctx, fromKey)
	if err != nil {
		return err
	}
	for _, source := range sources {
		if err := s.copyOne(ctx, source, toKey+strings.TrimPrefix(source, fromKey)); err != nil {
			return err
		}
	}
	for _, source := range sources {
		if err := s.removeOne(ctx, source); err != nil {
			return err
		}
	}
	return nil
}

func (s *Minio) copyOne(ctx context.Context, fromKey, toKey string) error {
	_, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: s.bucket, Object: toKey},
		minio.CopySrcOptions{Bucket: s.bucket, Object: fromKey})
	if err != nil {
		return fmt.Errorf("copy %q to %q: %w", fromKey, toKey, err)
	}
	return nil
}

func (s *Minio) ListDirectory(ctx context.Context, key string) ([]string, error) {
	return s.list(ctx, key, false)
}

func (s *Minio) ListRecursive(ctx context.Context, key string) ([]string, error) {
	return s.list(ctx, key, true)
}

func (s *Minio) list(ctx context.Context, key string, recursive bool) ([]string, error) {
	var keys []string
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: key, Recursive: recursive}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list %q: %w", key, info.Err)
		}
		if !recursive && info.Key == key {
			continue
		}
		keys = append(keys, info.Key)
	}
	return keys, nil
}

func (s *Minio) FileSize(ctx context.Context, key string) (int64, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("stat %q: %w", key, err)
	}
	return info.Size, nil
}

func (s *Minio) CreateDirectory(ctx context.Context, key string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(nil), 0, minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("create directory %q: %w", key, err)
	}
	return nil
}
