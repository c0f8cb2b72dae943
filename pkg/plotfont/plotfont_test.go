package plotfont

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/plotfont/internal/domain/entity"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

type stubRegistry struct {
	registry entity.Registry
	err      error
}

func (s *stubRegistry) Fonts(_ context.Context) (entity.Registry, error) {
	return s.registry, s.err
}

func (s *stubRegistry) IsAvailable(_ context.Context) bool { return s.err == nil }

type stubSink struct {
	batches []entity.StyleBatch
	paths   []string
}

func (s *stubSink) Apply(_ context.Context, batch entity.StyleBatch, fontPath string) error {
	s.batches = append(s.batches, batch)
	s.paths = append(s.paths, fontPath)
	return nil
}

func TestConfigure_Found(t *testing.T) {
	registry := &stubRegistry{registry: entity.Registry{
		"SF Pro Display": "/f/sfprodisplay.otf",
	}}
	sink := &stubSink{}

	result, err := Configure(testContext(), WithRegistry(registry), WithSink(sink))
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, "SF Pro Display", result.Family)
	assert.Equal(t, "/f/sfprodisplay.otf", result.Path)
	require.Len(t, sink.batches, 1)
	assert.Equal(t, entity.GenericSansSerif, sink.batches[0].Family)
}

func TestConfigure_NotFoundIsNotAnError(t *testing.T) {
	registry := &stubRegistry{registry: entity.Registry{"Arial": "/f/arial.ttf"}}
	sink := &stubSink{}

	result, err := Configure(testContext(), WithRegistry(registry), WithSink(sink))
	require.NoError(t, err)

	assert.False(t, result.Found)
	assert.Empty(t, sink.batches, "no-match leaves the sink untouched")
}

func TestConfigure_WithPreferred(t *testing.T) {
	registry := &stubRegistry{registry: entity.Registry{
		"Inter":       "/f/inter.ttf",
		"SF Pro Text": "/f/sfprotext.otf",
	}}
	sink := &stubSink{}

	result, err := Configure(testContext(),
		WithRegistry(registry),
		WithSink(sink),
		WithPreferred("Inter", "SF Pro Text"),
	)
	require.NoError(t, err)

	assert.Equal(t, "Inter", result.Family)
}

func TestConfigure_DiscoveryError(t *testing.T) {
	registry := &stubRegistry{err: errors.New("discovery broken")}
	sink := &stubSink{}

	_, err := Configure(testContext(), WithRegistry(registry), WithSink(sink))
	assert.Error(t, err)
	assert.Empty(t, sink.batches)
}

func TestPreferredSFFonts_ReturnsCopy(t *testing.T) {
	first := PreferredSFFonts()
	assert.Equal(t, []string{"SF Pro Text", "SF Pro Display", "SF Mono"}, first)

	first[0] = "mutated"
	assert.Equal(t, "SF Pro Text", PreferredSFFonts()[0])
}
