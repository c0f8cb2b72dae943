package fonts

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/plotfont/internal/domain/entity"
	"github.com/bnema/plotfont/internal/logging"
)

// DirScanner discovers fonts by walking font directories and reading family
// names from the TTF/OTF name tables. This is the fallback on systems
// without fontconfig; it is slower than fc-list because every font file is
// parsed.
type DirScanner struct {
	dirs []string
}

// NewDirScanner creates a scanner over the given directories. With no
// directories it scans the platform defaults.
func NewDirScanner(dirs ...string) *DirScanner {
	if len(dirs) == 0 {
		dirs = SystemDirs()
	}
	return &DirScanner{dirs: dirs}
}

// Dirs returns the directories this scanner covers.
func (s *DirScanner) Dirs() []string {
	dirs := make([]string, len(s.dirs))
	copy(dirs, s.dirs)
	return dirs
}

// IsAvailable returns true if at least one of the directories exists.
func (s *DirScanner) IsAvailable(_ context.Context) bool {
	for _, dir := range s.dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// Scan walks all directories in parallel and returns the discovered faces.
// Unreadable or malformed font files are skipped, not fatal: a single broken
// font must not hide the rest of the system's fonts.
func (s *DirScanner) Scan(ctx context.Context) ([]entity.FontFace, error) {
	log := logging.FromContext(ctx)

	var (
		mu    sync.Mutex
		faces []entity.FontFace
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, dir := range s.dirs {
		g.Go(func() error {
			found, err := scanDir(ctx, dir)
			if err != nil {
				return err
			}
			mu.Lock()
			faces = append(faces, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().Int("count", len(faces)).Int("dirs", len(s.dirs)).Msg("directory scan complete")
	return faces, nil
}

// scanDir walks a single directory tree. A missing directory yields no faces
// and no error.
func scanDir(ctx context.Context, dir string) ([]entity.FontFace, error) {
	log := logging.FromContext(ctx)

	if _, err := os.Stat(dir); err != nil {
		return nil, nil
	}

	var (
		faces []entity.FontFace
		buf   sfnt.Buffer
	)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable subtrees.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !isFontFile(path) {
			return nil
		}

		found, parseErr := readFaces(path, &buf)
		if parseErr != nil {
			log.Debug().Str("file", path).Err(parseErr).Msg("skipping unparseable font file")
			return nil
		}
		faces = append(faces, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return faces, nil
}

// isFontFile reports whether the path has a font file extension we can parse.
func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	default:
		return false
	}
}

// readFaces parses a font file and extracts one face per contained font.
func readFaces(path string, buf *sfnt.Buffer) ([]entity.FontFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		collection, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		faces := make([]entity.FontFace, 0, collection.NumFonts())
		for i := 0; i < collection.NumFonts(); i++ {
			f, err := collection.Font(i)
			if err != nil {
				continue
			}
			if family := familyName(f, buf); family != "" {
				faces = append(faces, entity.FontFace{Family: family, Path: path})
			}
		}
		return faces, nil
	default:
		f, err := sfnt.Parse(data)
		if err != nil {
			return nil, err
		}
		family := familyName(f, buf)
		if family == "" {
			return nil, nil
		}
		return []entity.FontFace{{Family: family, Path: path}}, nil
	}
}

// familyName reads the family from the name table, preferring the
// typographic family (which SF fonts use to group weights) over the legacy
// family entry.
func familyName(f *sfnt.Font, buf *sfnt.Buffer) string {
	if name, err := f.Name(buf, sfnt.NameIDTypographicFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}
