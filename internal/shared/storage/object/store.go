package object

import (
	"context"
	"io"
)

// Store defines the contract for reading and writing binary objects,
// such as the historical feedback dataset.
type Store interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Save(ctx context.Context, key string, r io.Reader) (int64, error)
}
