package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory objectStore keyed by "bucket/object".
type fakeStore struct {
	objects      map[string]struct{}
	statCalls    []string
	presignCalls []string
	presignErr   error
}

func (f *fakeStore) StatObject(_ context.Context, bucket, object string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	key := bucket + "/" + object
	f.statCalls = append(f.statCalls, key)

	if _, ok := f.objects[key]; !ok {
		return minio.ObjectInfo{}, errors.New("The specified key does not exist.")
	}

	return minio.ObjectInfo{Key: object}, nil
}

func (f *fakeStore) PresignedGetObject(_ context.Context, bucket, object string, _ time.Duration, _ url.Values) (*url.URL, error) {
	key := bucket + "/" + object
	f.presignCalls = append(f.presignCalls, key)

	if f.presignErr != nil {
		return nil, f.presignErr
	}

	return url.Parse("https://storage.example.com/" + key + "?signature=abc")
}

func newTestVault(store *fakeStore, buckets ...string) *minioVault {
	return &minioVault{
		client:    store,
		buckets:   buckets,
		urlExpiry: time.Hour,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestMinioVault_SignedDownloadURL_ParsedBucketFirst(t *testing.T) {
	store := &fakeStore{objects: map[string]struct{}{
		"custom-bucket/guides/love-letters.pdf": {},
	}}
	vault := newTestVault(store, "digital-products", "yourdigitalproducts")

	signed, err := vault.SignedDownloadURL(
		context.Background(),
		"https://abc.supabase.co/storage/v1/object/public/custom-bucket/guides/love-letters.pdf",
	)
	require.NoError(t, err)

	assert.Contains(t, signed, "custom-bucket/guides/love-letters.pdf")
	// The referenced bucket resolved on the first try; no fallback probes.
	assert.Equal(t, []string{"custom-bucket/guides/love-letters.pdf"}, store.statCalls)
}

func TestMinioVault_SignedDownloadURL_FallbackChain(t *testing.T) {
	store := &fakeStore{objects: map[string]struct{}{
		"yourdigitalproducts/guides/love-letters.pdf": {},
	}}
	vault := newTestVault(store, "digital-products", "yourdigitalproducts")

	signed, err := vault.SignedDownloadURL(context.Background(), "guides/love-letters.pdf")
	require.NoError(t, err)

	assert.Contains(t, signed, "yourdigitalproducts/guides/love-letters.pdf")
	assert.Equal(t, []string{
		"digital-products/guides/love-letters.pdf",
		"yourdigitalproducts/guides/love-letters.pdf",
	}, store.statCalls)
}

func TestMinioVault_SignedDownloadURL_NotFoundAnywhere(t *testing.T) {
	store := &fakeStore{objects: map[string]struct{}{}}
	vault := newTestVault(store, "digital-products", "yourdigitalproducts")

	signed, err := vault.SignedDownloadURL(context.Background(), "guides/missing.pdf")
	require.Error(t, err)
	assert.Empty(t, signed)
	assert.Contains(t, err.Error(), "guides/missing.pdf")
	assert.Empty(t, store.presignCalls, "presign is never attempted for missing objects")
}

func TestMinioVault_SignedDownloadURL_EmptyRef(t *testing.T) {
	vault := newTestVault(&fakeStore{objects: map[string]struct{}{}}, "digital-products")

	_, err := vault.SignedDownloadURL(context.Background(), "")
	require.Error(t, err)
}

func TestMinioVault_CandidateBuckets_Dedup(t *testing.T) {
	vault := newTestVault(&fakeStore{}, "digital-products", "yourdigitalproducts")

	assert.Equal(t,
		[]string{"digital-products", "yourdigitalproducts"},
		vault.candidateBuckets("digital-products"),
	)
	assert.Equal(t,
		[]string{"custom", "digital-products", "yourdigitalproducts"},
		vault.candidateBuckets("custom"),
	)
	assert.Equal(t,
		[]string{"digital-products", "yourdigitalproducts"},
		vault.candidateBuckets(""),
	)
}
