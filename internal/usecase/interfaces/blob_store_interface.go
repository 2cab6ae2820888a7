package interfaces

import "context"

// IBlobStore stores document contents outside the primary database.
type IBlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
