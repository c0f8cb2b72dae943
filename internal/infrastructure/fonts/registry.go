package fonts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/plotfont/internal/domain/entity"
	"github.com/bnema/plotfont/internal/logging"
)

// Scanner is a single font discovery mechanism.
type Scanner interface {
	Scan(ctx context.Context) ([]entity.FontFace, error)
	IsAvailable(ctx context.Context) bool
}

// ScanCache persists directory scan results across runs. Load returns
// (nil, false, nil) on a miss; a stale fingerprint is a miss.
type ScanCache interface {
	Load(ctx context.Context, fingerprint string) (entity.Registry, bool, error)
	Store(ctx context.Context, fingerprint string, registry entity.Registry) error
}

// Registry implements port.FontRegistry. It prefers the fc-list fast path
// and falls back to directory scanning, with the scan result cached behind a
// RWMutex for the lifetime of the process. Directory scans are additionally
// persisted through the ScanCache so repeat startups skip font parsing.
type Registry struct {
	mu        sync.RWMutex
	cached    entity.Registry
	populated bool

	fclist  *FcListScanner
	dirscan *DirScanner
	cache   ScanCache // nil disables persistence

	useFontconfig bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithFontconfig toggles the fc-list fast path.
func WithFontconfig(enabled bool) Option {
	return func(r *Registry) { r.useFontconfig = enabled }
}

// WithScanCache attaches a persistent scan cache.
func WithScanCache(cache ScanCache) Option {
	return func(r *Registry) { r.cache = cache }
}

// WithExtraDirs adds directories to the platform defaults for the
// directory scanner.
func WithExtraDirs(dirs ...string) Option {
	return func(r *Registry) {
		r.dirscan = NewDirScanner(append(SystemDirs(), dirs...)...)
	}
}

// WithDirs replaces the scanned directories entirely, bypassing the
// platform defaults. Used for synthetic registries in tests.
func WithDirs(dirs ...string) Option {
	return func(r *Registry) {
		r.dirscan = NewDirScanner(dirs...)
	}
}

// NewRegistry creates a font registry with the given options.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		fclist:        NewFcListScanner(),
		dirscan:       NewDirScanner(),
		useFontconfig: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsAvailable implements port.FontRegistry.
func (r *Registry) IsAvailable(ctx context.Context) bool {
	if r.useFontconfig && r.fclist.IsAvailable(ctx) {
		return true
	}
	return r.dirscan.IsAvailable(ctx)
}

// Fonts implements port.FontRegistry. The first call discovers fonts;
// subsequent calls return the cached snapshot until Invalidate.
func (r *Registry) Fonts(ctx context.Context) (entity.Registry, error) {
	log := logging.FromContext(ctx)

	r.mu.RLock()
	if r.populated {
		cached := r.cached
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock.
	if r.populated {
		return r.cached, nil
	}

	registry, err := r.discover(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("font discovery failed")
		return nil, err
	}

	r.cached = registry
	r.populated = true
	log.Debug().Int("count", len(registry)).Msg("cached system fonts")

	return registry, nil
}

// Invalidate drops the in-process snapshot so the next Fonts call rescans.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
	r.populated = false
}

// discover runs the actual discovery. Must be called with r.mu held for
// write.
func (r *Registry) discover(ctx context.Context) (entity.Registry, error) {
	log := logging.FromContext(ctx)

	if r.useFontconfig && r.fclist.IsAvailable(ctx) {
		faces, err := r.fclist.Scan(ctx)
		if err == nil {
			return entity.NewRegistry(faces), nil
		}
		log.Debug().Err(err).Msg("fc-list failed, falling back to directory scan")
	}

	fingerprint := dirFingerprint(r.dirscan.Dirs())

	if r.cache != nil {
		registry, ok, err := r.cache.Load(ctx, fingerprint)
		if err != nil {
			log.Debug().Err(err).Msg("scan cache read failed, rescanning")
		} else if ok {
			log.Debug().Int("count", len(registry)).Msg("loaded fonts from scan cache")
			return registry, nil
		}
	}

	faces, err := r.dirscan.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan font directories: %w", err)
	}
	registry := entity.NewRegistry(faces)

	if r.cache != nil {
		if err := r.cache.Store(ctx, fingerprint, registry); err != nil {
			log.Debug().Err(err).Msg("scan cache write failed")
		}
	}

	return registry, nil
}

// dirFingerprint hashes every directory under the roots together with its
// mtime. Font packages install into subdirectories (e.g.
// truetype/<pkg>/), which updates only that subdirectory's mtime, so the
// roots alone are not enough to detect an install or removal.
func dirFingerprint(dirs []string) string {
	sorted := make([]string, len(dirs))
	copy(sorted, dirs)
	sort.Strings(sorted)

	h := sha256.New()
	for _, dir := range sorted {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				fmt.Fprintln(h, path)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			fmt.Fprintln(h, path)
			if info, err := d.Info(); err == nil {
				fmt.Fprintln(h, info.ModTime().UnixNano())
			}
			return nil
		})
	}
	return hex.EncodeToString(h.Sum(nil))
}
