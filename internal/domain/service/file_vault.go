package service

import "context"

// FileVault mints short-lived signed URLs for stored product files. The raw
// storage reference and bucket layout never reach the client; only the
// signed URL does.
type FileVault interface {
	// SignedDownloadURL resolves a product file reference (a relative
	// object path or a previously-issued full URL) and returns a
	// time-limited signed URL scoped to that single object.
	SignedDownloadURL(ctx context.Context, fileRef string) (string, error)
}
