// Package storage mints short-lived signed download URLs for purchased
// product files held in S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/Hritik000/valentine-gifts-hub/config"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const defaultURLExpiry = time.Hour

// objectStore is the subset of the MinIO client the vault needs; tests
// substitute a fake.
type objectStore interface {
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// minioVault implements service.FileVault over an S3-compatible store.
// Product rows accumulated over time reference several buckets, so the
// vault walks an ordered candidate list until the object is found.
type minioVault struct {
	client    objectStore
	buckets   []string
	urlExpiry time.Duration
	logger    *slog.Logger
}

// NewMinioVault creates the vault from the configured storage settings.
func NewMinioVault(cfg *config.Config, logger *slog.Logger) (service.FileVault, error) {
	if cfg.Storage == nil || cfg.Storage.Endpoint == "" {
		return nil, errors.New("storage endpoint not configured")
	}

	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create storage client")
	}

	urlExpiry := cfg.Storage.URLExpiry
	if urlExpiry <= 0 {
		urlExpiry = defaultURLExpiry
	}

	return &minioVault{
		client:    client,
		buckets:   cfg.Storage.Buckets,
		urlExpiry: urlExpiry,
		logger:    logger,
	}, nil
}

// SignedDownloadURL resolves fileRef to an object and mints a presigned
// GET URL for it. The bucket named inside the reference is tried first,
// then the configured fallback chain.
func (v *minioVault) SignedDownloadURL(ctx context.Context, rawRef string) (string, error) {
	ref := parseFileRef(rawRef)
	if ref.Object == "" {
		return "", errors.New("empty file reference")
	}

	var lastErr error
	for _, bucket := range v.candidateBuckets(ref.Bucket) {
		if _, err := v.client.StatObject(ctx, bucket, ref.Object, minio.StatObjectOptions{}); err != nil {
			lastErr = err
			v.logger.Debug("object not found in bucket",
				slog.String("bucket", bucket),
				slog.String("object", ref.Object),
			)

			continue
		}

		signed, err := v.client.PresignedGetObject(ctx, bucket, ref.Object, v.urlExpiry, url.Values{})
		if err != nil {
			lastErr = err

			continue
		}

		return signed.String(), nil
	}

	if lastErr != nil {
		return "", errors.Wrapf(lastErr, "object %q not found in any bucket", ref.Object)
	}

	return "", fmt.Errorf("no candidate buckets for object %q", ref.Object)
}

// candidateBuckets returns the ordered, deduplicated bucket list: the
// reference's own bucket first, then the configured fallbacks.
func (v *minioVault) candidateBuckets(parsed string) []string {
	candidates := make([]string, 0, len(v.buckets)+1)
	seen := make(map[string]struct{}, len(v.buckets)+1)

	appendBucket := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		candidates = append(candidates, name)
	}

	appendBucket(parsed)
	for _, bucket := range v.buckets {
		appendBucket(bucket)
	}

	return candidates
}
