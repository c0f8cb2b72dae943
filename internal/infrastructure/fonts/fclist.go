// Package fonts implements font discovery on the host system.
package fonts

import (
	"bufio"
	"context"
	"os/exec"
	"strings"

	"github.com/bnema/plotfont/internal/domain/entity"
	"github.com/bnema/plotfont/internal/logging"
)

// FcListScanner discovers fonts through fontconfig's fc-list command. This
// is the fast path on systems that have fontconfig installed: fc-list reads
// fontconfig's own cache instead of parsing font files.
type FcListScanner struct{}

// NewFcListScanner creates a new fc-list based scanner.
func NewFcListScanner() *FcListScanner {
	return &FcListScanner{}
}

// IsAvailable returns true if the fc-list command is on PATH.
func (*FcListScanner) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("fc-list")
	return err == nil
}

// Scan executes fc-list and parses family names and file paths.
func (*FcListScanner) Scan(ctx context.Context) ([]entity.FontFace, error) {
	log := logging.FromContext(ctx)

	cmd := exec.CommandContext(ctx, "fc-list", ":", "file", "family")
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	faces := parseFcList(string(output))
	log.Debug().Int("count", len(faces)).Msg("fc-list scan complete")
	return faces, nil
}

// parseFcList parses fc-list output of the form
//
//	/usr/share/fonts/dejavu/DejaVuSans.ttf: DejaVu Sans
//
// fc-list may return comma-separated families for fonts with aliases,
// e.g. "DejaVu Sans,DejaVu Sans Light"; each alias maps to the same file.
func parseFcList(output string) []entity.FontFace {
	var faces []entity.FontFace

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		idx := strings.Index(line, ": ")
		if idx < 0 {
			continue
		}
		path := strings.TrimSpace(line[:idx])
		if path == "" {
			continue
		}

		for _, family := range strings.Split(line[idx+2:], ",") {
			family = strings.TrimSpace(family)
			if family != "" {
				faces = append(faces, entity.FontFace{Family: family, Path: path})
			}
		}
	}

	return faces
}
