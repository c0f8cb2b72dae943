package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/plotfont/internal/domain/build"
)

func TestFormatBuildInfo(t *testing.T) {
	out := formatBuildInfo(build.Info{
		Version:   "1.2.3",
		Commit:    "abc1234",
		BuildDate: "2026-08-23",
		GoVersion: "go1.25.3",
	})

	assert.Contains(t, out, "plotfont 1.2.3")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "2026-08-23")
	assert.Contains(t, out, "go1.25.3")
	assert.Contains(t, out, build.RepoURL())
}
