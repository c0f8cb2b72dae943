package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/plotfont/internal/application/usecase"
	"github.com/bnema/plotfont/internal/domain/entity"
)

// FontListRenderer renders detected fonts for the list command.
type FontListRenderer struct {
	theme *Theme
}

// NewFontListRenderer creates a new font list renderer.
func NewFontListRenderer(theme *Theme) *FontListRenderer {
	return &FontListRenderer{theme: theme}
}

// Render renders one line per family, optionally with the file path, and a
// footer count.
func (r *FontListRenderer) Render(faces []entity.FontFace, total int, showPaths bool) string {
	var b strings.Builder

	for _, face := range faces {
		if showPaths {
			fmt.Fprintf(&b, "%s %s\n",
				r.theme.Highlight.Render(face.Family),
				r.theme.Subtle.Render(face.Path),
			)
		} else {
			fmt.Fprintf(&b, "%s\n", r.theme.Normal.Render(face.Family))
		}
	}

	if len(faces) == total {
		b.WriteString(r.theme.Subtle.Render(fmt.Sprintf("%d font families", total)))
	} else {
		b.WriteString(r.theme.Subtle.Render(fmt.Sprintf("%d of %d font families", len(faces), total)))
	}
	b.WriteString("\n")

	return b.String()
}

// DoctorRenderer renders the doctor report.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a new doctor renderer.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// Render renders the font availability report.
func (r *DoctorRenderer) Render(out *usecase.CheckFontsOutput) string {
	var b strings.Builder

	b.WriteString(r.theme.Title.Render("Font discovery"))
	b.WriteString("\n")

	if !out.DiscoveryAvailable {
		b.WriteString(r.theme.ErrorStyle.Render("✗ no discovery mechanism available (no fc-list, no font directories)"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(r.theme.SuccessStyle.Render(fmt.Sprintf("✓ %d font families installed", out.InstalledTotal)))
	b.WriteString("\n\n")
	b.WriteString(r.theme.Title.Render("Preferred fonts"))
	b.WriteString("\n")

	for _, check := range out.Checks {
		if check.Installed {
			fmt.Fprintf(&b, "%s %s %s\n",
				r.theme.SuccessStyle.Render("✓"),
				r.theme.Highlight.Render(check.Family),
				r.theme.Subtle.Render(check.Path),
			)
		} else {
			fmt.Fprintf(&b, "%s %s %s\n",
				r.theme.ErrorStyle.Render("✗"),
				r.theme.Normal.Render(check.Family),
				r.theme.Subtle.Render("not installed"),
			)
		}
	}

	b.WriteString("\n")
	if out.Selected != "" {
		b.WriteString(r.theme.SuccessStyle.Render(fmt.Sprintf("Would select: %s", out.Selected)))
	} else {
		b.WriteString(r.theme.WarningStyle.Render("None of the preferred fonts are installed; plot defaults stay in effect."))
	}
	b.WriteString("\n")

	return b.String()
}
