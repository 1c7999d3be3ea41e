package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tumorvision/config"
	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

type fixedModel []float32

func (m fixedModel) Predict(ctx context.Context, in entity.Tensor) ([]float32, error) {
	return m, nil
}

func withModel(t *testing.T, m port.Model) {
	t.Helper()
	orig := loadModel
	loadModel = func(*config.Config, *slog.Logger) (port.Model, func()) { return m, func() {} }
	t.Cleanup(func() { loadModel = orig })
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: 230})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func runClassify(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"classify"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CHAT_STORE", "memory")
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func TestClassify_PrintsLabels(t *testing.T) {
	dir := setupEnv(t)
	withModel(t, fixedModel{0, 0, 1, 0})

	scan := writePNG(t, dir, "scan.png", 100, 100)
	wide := writePNG(t, dir, "wide.png", 300, 100)

	out, err := runClassify(t, scan, wide)
	require.NoError(t, err)
	require.Contains(t, out, "scan.png: no tumor")
	require.Contains(t, out, "wide.png: rejected (")
}

func TestClassify_ReportsFailures(t *testing.T) {
	dir := setupEnv(t)
	withModel(t, fixedModel{1, 0, 0, 0})

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not a png"), 0o600))

	out, err := runClassify(t, junk, filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 of 2 files failed")
	require.Equal(t, 2, strings.Count(out, ": error: "))
}

func TestClassify_RequiresArgs(t *testing.T) {
	setupEnv(t)
	_, err := runClassify(t)
	require.Error(t, err)
}
