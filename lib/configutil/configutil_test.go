package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	Extra string `json:"extra"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	// json5: unquoted keys, trailing comma
	writeFile(t, name, `{host: "example.com", port: 80, extra: "keep",}`)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{Host: "example.com", Port: 80, Extra: "keep"}, cfg)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	writeFile(t, name, `{host: "example.com", port: 80, extra: "keep"}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{port: 9000}`)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	// overridden field wins, the rest fall through
	require.Equal(t, testConfig{Host: "example.com", Port: 9000, Extra: "keep"}, cfg)
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "config.local.json5"), `{host: "local only"}`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "local only", cfg.Host)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}
