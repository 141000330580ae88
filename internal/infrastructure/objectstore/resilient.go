package objectstore

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/skystore/skystore/internal/infrastructure/logging"
	"github.com/skystore/skystore/internal/infrastructure/monitoring"
	"github.com/skystore/skystore/internal/infrastructure/resilience"
)

// Store is the surface the resilient decorator wraps. Both Minio and
// Memory satisfy it.
type Store interface {
	Exists(ctx context.Context, key string) (bool, error)
	SaveFile(ctx context.Context, key string, content []byte) error
	GetFile(ctx context.Context, key string) ([]byte, error)
	GetFileStream(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Move(ctx context.Context, fromKey, toKey string) error
	ListDirectory(ctx context.Context, key string) ([]string, error)
	ListRecursive(ctx context.Context, key string) ([]string, error)
	FileSize(ctx context.Context, key string) (int64, error)
	CreateDirectory(ctx context.Context, key string) error
}

// Resilient decorates an object store with a circuit breaker and
// per-operation metrics. When the backend keeps failing, calls fail
// fast with resilience.ErrCircuitOpen.
type Resilient struct {
	inner   Store
	breaker *resilience.Breaker
	metrics *monitoring.Metrics
	backend string
}

// NewResilient wraps inner. The backend label appears in metrics and
// state change logs.
func NewResilient(inner Store, backend string, metrics *monitoring.Metrics, logger *logging.Logger) *Resilient {
	breaker := resilience.New(backend, resilience.Settings{
		OnStateChange: func(name string, from, to resilience.State) {
			logger.Warn("storage circuit breaker state changed",
				zap.String("backend", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &Resilient{inner: inner, breaker: breaker, metrics: metrics, backend: backend}
}

func (r *Resilient) do(operation string, fn func() error) error {
	timer := monitoring.NewTimer(r.metrics, r.backend, operation)
	err := r.breaker.Do(fn)
	if err != nil {
		timer.Stop("error")
		r.metrics.RecordStorageError(r.backend, operation)
		return err
	}
	timer.Stop("success")
	return nil
}

func (r *Resilient) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.do("exists", func() error {
		var innerErr error
		exists, innerErr = r.inner.Exists(ctx, key)
		return innerErr
	})
	return exists, err
}

func (r *Resilient) SaveFile(ctx context.Context, key string, content []byte) error {
	return r.do("save", func() error {
		return r.inner.SaveFile(ctx, key, content)
	})
}

func (r *Resilient) GetFile(ctx context.Context, key string) ([]byte, error) {
	var content []byte
	err := r.do("get", func() error {
		var innerErr error
		content, innerErr = r.inner.GetFile(ctx, key)
		return innerErr
	})
	return content, err
}

func (r *Resilient) GetFileStream(ctx context.Context, key string) (io.ReadCloser, error) {
	var stream io.ReadCloser
	err := r.do("get_stream", func() error {
		var innerErr error
		stream, innerErr = r.inner.GetFileStream(ctx, key)
		return innerErr
	})
	return stream, err
}

func (r *Resilient) Delete(ctx context.Context, key string) error {
	return r.do("delete", func() error {
		return r.inner.Delete(ctx, key)
	})
}

func (r *Resilient) Move(ctx context.Context, fromKey, toKey string) error {
	return r.do("move", func() error {
		return r.inner.Move(ctx, fromKey, toKey)
	})
}

func (r *Resilient) ListDirectory(ctx context.Context, key string) ([]string, error) {
	var keys []string
	err := r.do("list", func() error {
		var innerErr error
		keys, innerErr = r.inner.ListDirectory(ctx, key)
		return innerErr
	})
	return keys, err
}

func (r *Resilient) ListRecursive(ctx context.Context, key string) ([]string, error) {
	var keys []string
	err := r.do("list_recursive", func() error {
		var innerErr error
		keys, innerErr = r.inner.ListRecursive(ctx, key)
		return innerErr
	})
	return keys, err
}

func (r *Resilient) FileSize(ctx context.Context, key string) (int64, error) {
	var size int64
	err := r.do("stat", func() error {
		var innerErr error
		size, innerErr = r.inner.FileSize(ctx, key)
		return innerErr
	})
	return size, err
}

func (r *Resilient) CreateDirectory(ctx context.Context, key string) error {
	return r.do("create_directory", func() error {
		return r.inner.CreateDirectory(ctx, key)
	})
}
