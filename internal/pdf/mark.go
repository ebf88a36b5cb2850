package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for DecodeConfig
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	mimage "github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Mark kinds, reported in logs and metrics.
const (
	MarkImage  = "image"
	MarkVector = "vector"
)

var (
	navy  = props.Color{Red: 21, Green: 48, Blue: 89}
	cream = props.Color{Red: 244, Green: 225, Blue: 186}
)

// Mark draws the cafe logo into a grid column. The header uses it full size,
// the footer scaled down.
type Mark interface {
	Kind() string
	Col(span int, height float64) core.Col
}

type imageMark struct {
	data []byte
	ext  extension.Type
}

// LoadImageMark reads and checks the logo at path. The returned error means
// the asset is unusable and a vector mark should be drawn instead.
func LoadImageMark(path string) (Mark, error) {
	if path == "" {
		return nil, fmt.Errorf("no logo configured")
	}
	var ext extension.Type
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		ext = extension.Png
	case ".jpg", ".jpeg":
		ext = extension.Jpg
	default:
		return nil, fmt.Errorf("unsupported logo format %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read logo: %w", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to decode logo: %w", err)
	}
	return &imageMark{data: data, ext: ext}, nil
}

func (m *imageMark) Kind() string { return MarkImage }

func (m *imageMark) Col(span int, _ float64) core.Col {
	return col.New(span).Add(mimage.NewFromBytes(m.data, m.ext, props.Rect{
		Center:  true,
		Percent: 90,
	}))
}

// vectorMark is a navy badge with a cream border and the cafe initials. It
// occupies the same column as the image it replaces.
type vectorMark struct{}

func NewVectorMark() Mark { return vectorMark{} }

func (vectorMark) Kind() string { return MarkVector }

func (vectorMark) Col(span int, height float64) core.Col {
	size := height * 0.45
	return col.New(span).
		WithStyle(&props.Cell{
			BackgroundColor: &navy,
			BorderType:      border.Full,
			BorderColor:     &cream,
			BorderThickness: 0.6,
		}).
		Add(text.New("THE PALM", props.Text{
			Top:   height*0.5 - size*0.45,
			Size:  size,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: &cream,
		}))
}
