package storage

import (
	"regexp"
	"strings"
)

// storageObjectPattern matches hosted-storage URLs of the form
// .../storage/v1/object/public/<bucket>/<path> (or /sign/ for previously
// signed links). Historical product rows store full URLs in this shape.
var storageObjectPattern = regexp.MustCompile(`/storage/v1/object/(?:public|sign)/([^/]+)/(.+)`)

// fileRef is a parsed product file reference: an optional bucket hint plus
// the object key inside it.
type fileRef struct {
	Bucket string
	Object string
}

// parseFileRef extracts the bucket and object key from a stored file
// reference. References come in two shapes: full hosted-storage URLs, and
// bare object paths with no bucket hint. Query strings (stale signatures)
// are discarded either way.
func parseFileRef(raw string) fileRef {
	ref := raw
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		ref = ref[:i]
	}

	if m := storageObjectPattern.FindStringSubmatch(ref); m != nil {
		return fileRef{Bucket: m[1], Object: normalizeObjectKey(m[2])}
	}

	return fileRef{Object: normalizeObjectKey(ref)}
}

// normalizeObjectKey strips leading slashes and collapses duplicate
// slashes so old records with sloppy paths still resolve.
func normalizeObjectKey(key string) string {
	key = strings.TrimLeft(key, "/")
	for strings.Contains(key, "//") {
		key = strings.ReplaceAll(key, "//", "/")
	}

	return key
}
