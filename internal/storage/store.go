package storage

// Store persists one JSON-serializable blob per namespaced key. Load reports
// found=false both for absent keys and for blobs that fail to decode, so
// callers always fall back to factory defaults instead of crashing.
type Store interface {
	Load(key string, v any) (found bool, err error)
	Save(key string, v any) error
	Delete(key string) error
	Close() error
}
