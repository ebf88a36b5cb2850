package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writePNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 21, G: 48, B: 89, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestRenderer_MissingLogoFallsBackToVector(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := NewRenderer(Config{LogoPath: filepath.Join(t.TempDir(), "missing.png")}, zap.New(core))

	doc, err := r.Render(testInvoice(3), "$")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc.Bytes, []byte("%PDF-")))
	assert.Equal(t, MarkVector, doc.Mark)
	assert.Equal(t, 1, doc.Pages)
	require.Equal(t, 1, logs.Len(), "one warning per render, not per mark")
	assert.Equal(t, "logo unavailable, drawing vector mark", logs.All()[0].Message)
}

func TestRenderer_UsesImageLogo(t *testing.T) {
	r := NewRenderer(Config{LogoPath: writePNG(t)}, zap.NewNop())

	doc, err := r.Render(testInvoice(3), "$")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc.Bytes, []byte("%PDF-")))
	assert.Equal(t, MarkImage, doc.Mark)
}

func TestRenderer_CorruptLogoFallsBackToVector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o600))
	r := NewRenderer(Config{LogoPath: path}, zap.NewNop())

	doc, err := r.Render(testInvoice(1), "$")
	require.NoError(t, err)
	assert.Equal(t, MarkVector, doc.Mark)
	assert.NotEmpty(t, doc.Bytes)
}

func TestRenderer_MultiPage(t *testing.T) {
	r := NewRenderer(Config{}, zap.NewNop())

	doc, err := r.Render(testInvoice(80), "Rs.")
	require.NoError(t, err)
	assert.Greater(t, doc.Pages, 1)
	assert.True(t, bytes.HasPrefix(doc.Bytes, []byte("%PDF-")))
}

func TestRenderer_ByteIdenticalAcrossRenders(t *testing.T) {
	r := NewRenderer(Config{}, zap.NewNop())

	first, err := r.Render(testInvoice(12), "$")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		doc, err := r.Render(testInvoice(12), "$")
		require.NoError(t, err)
		require.True(t, bytes.Equal(first.Bytes, doc.Bytes), "render %d differs", i)
	}
}

func TestRenderer_ModDateFollowsInvoiceDate(t *testing.T) {
	doc, err := NewRenderer(Config{}, zap.NewNop()).Render(testInvoice(1), "$")
	require.NoError(t, err)

	assert.Contains(t, string(doc.Bytes), "/CreationDate (D:20240301140500)")
	assert.Contains(t, string(doc.Bytes), "/ModDate (D:20240301140500)")
}

func TestPinModDate(t *testing.T) {
	in := []byte("/CreationDate (D:20240301140500)\n/ModDate (D:20991231235959)\n")
	assert.Equal(t, "/CreationDate (D:20240301140500)\n/ModDate (D:20240301140500)\n", string(pinModDate(in)))

	untouched := []byte("/ModDate (D:2099")
	assert.Equal(t, "/ModDate (D:2099", string(pinModDate(untouched)))
}

func TestRenderer_NilInvoice(t *testing.T) {
	_, err := NewRenderer(Config{}, zap.NewNop()).Render(nil, "$")
	assert.Error(t, err)
}

func TestLoadImageMark_RejectsUnknownFormat(t *testing.T) {
	_, err := LoadImageMark("logo.svg")
	assert.Error(t, err)
}
