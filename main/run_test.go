package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/jsonio/pkg/compactwire"
	"github.com/rawbytedev/jsonio/pkg/scan"
)

const doc = `{"name": "edge", "mode": "mesh", "perm": "WRITE", "tags": ["a"]}`

func quiet() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestConvertText(t *testing.T) {
	out, err := convert(Config{}, []byte(doc), quiet())
	require.NoError(t, err)
	assert.Contains(t, string(out), "\t\"name\": \"edge\",\n")
	assert.Contains(t, string(out), "\t\"perm\": \"WRITE\",\n")
}

func TestConvertFramed(t *testing.T) {
	out, err := convert(Config{Frame: true, Compress: true}, []byte(doc), quiet())
	require.NoError(t, err)
	text, err := compactwire.DecodeDataFrame(out)
	require.NoError(t, err)

	// framed input is unwrapped first
	again, err := convert(Config{Frame: true}, out, quiet())
	require.NoError(t, err)
	text2, err := compactwire.DecodeDataFrame(again)
	require.NoError(t, err)
	assert.Equal(t, text, text2)
}

func TestConvertErrorFrame(t *testing.T) {
	bad := []byte(`{"name" "edge"}`)
	out, err := convert(Config{Frame: true}, bad, quiet())
	require.ErrorIs(t, err, scan.ErrMissingColon)
	f, err := compactwire.DecodeErrorFrame(out)
	require.NoError(t, err)
	assert.Equal(t, scan.KindMissingColon, scan.Kind(f.Code))
	assert.Equal(t, uint32(8), f.Offset)

	out, err = convert(Config{}, bad, quiet())
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jsonio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frame: true\nlog_level: debug\nout: x.bin\n"), 0o644))

	cfg, err := loadConfig([]string{"--config", path, "--out", "y.bin"})
	require.NoError(t, err)
	assert.True(t, cfg.Frame)
	assert.Equal(t, "y.bin", cfg.Out)
	assert.Equal(t, logrus.DebugLevel, cfg.level())

	t.Setenv("JSONIO_COMPRESS", "true")
	cfg, err = loadConfig(nil)
	require.NoError(t, err)
	assert.True(t, cfg.Compress)
	assert.Equal(t, logrus.InfoLevel, cfg.level())
}
