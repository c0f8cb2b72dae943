package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/plotfont/internal/domain/entity"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

// fakeRegistry is a synthetic port.FontRegistry.
type fakeRegistry struct {
	registry  entity.Registry
	err       error
	available bool
	calls     int
}

func (f *fakeRegistry) Fonts(_ context.Context) (entity.Registry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.registry, nil
}

func (f *fakeRegistry) IsAvailable(_ context.Context) bool {
	return f.available
}

// appliedCall records one StyleSink.Apply invocation.
type appliedCall struct {
	batch entity.StyleBatch
	path  string
}

// fakeSink is a synthetic port.StyleSink.
type fakeSink struct {
	applied []appliedCall
	err     error
}

func (f *fakeSink) Apply(_ context.Context, batch entity.StyleBatch, fontPath string) error {
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, appliedCall{batch: batch, path: fontPath})
	return nil
}
