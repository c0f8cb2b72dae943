package fonts

import (
	"context"
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

func TestParseFcList(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []entity.FontFace
	}{
		{
			name:   "single face",
			output: "/usr/share/fonts/dejavu/DejaVuSans.ttf: DejaVu Sans\n",
			want: []entity.FontFace{
				{Family: "DejaVu Sans", Path: "/usr/share/fonts/dejavu/DejaVuSans.ttf"},
			},
		},
		{
			name:   "comma separated aliases",
			output: "/f/DejaVuSansLight.ttf: DejaVu Sans,DejaVu Sans Light\n",
			want: []entity.FontFace{
				{Family: "DejaVu Sans", Path: "/f/DejaVuSansLight.ttf"},
				{Family: "DejaVu Sans Light", Path: "/f/DejaVuSansLight.ttf"},
			},
		},
		{
			name: "multiple lines with blanks",
			output: "/f/SFProText.otf: SF Pro Text\n" +
				"\n" +
				"/f/SFMono.otf: SF Mono\n",
			want: []entity.FontFace{
				{Family: "SF Pro Text", Path: "/f/SFProText.otf"},
				{Family: "SF Mono", Path: "/f/SFMono.otf"},
			},
		},
		{
			name:   "line without separator is skipped",
			output: "garbage line\n/f/SFMono.otf: SF Mono\n",
			want: []entity.FontFace{
				{Family: "SF Mono", Path: "/f/SFMono.otf"},
			},
		},
		{
			name:   "empty family is skipped",
			output: "/f/Broken.ttf: \n",
			want:   nil,
		},
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFcList(tt.output))
		})
	}
}

func TestFcListScanner_Scan(t *testing.T) {
	scanner := NewFcListScanner()
	ctx := testContext()
	if !scanner.IsAvailable(ctx) {
		t.Skip("fc-list not installed")
	}

	faces, err := scanner.Scan(ctx)
	require.NoError(t, err)
	for _, face := range faces {
		assert.NotEmpty(t, face.Family)
		assert.NotEmpty(t, face.Path)
	}
}
