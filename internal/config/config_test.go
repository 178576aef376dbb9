package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nmea.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
only: DBS,DBT
metrics_addr: ":9100"
serial:
  device: /dev/ttyUSB0
  baud: 38400
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "DBS,DBT", cfg.Only)
	require.Equal(t, ":9100", cfg.MetricsAddr)
	require.Equal(t, "/dev/ttyUSB0", cfg.Serial.Device)
	require.Equal(t, 38400, cfg.Serial.Baud)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "serial:\n  device: /dev/ttyS1\n"))
	require.NoError(t, err)
	require.Equal(t, defaultBaud, cfg.Serial.Baud)
	require.Equal(t, "/dev/ttyS1", cfg.Serial.Device)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorContains(t, err, "read config")

	_, err = Load(writeConfig(t, "serial: [unclosed"))
	require.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "serial:\n  baud: -1\n"))
	require.ErrorContains(t, err, "baud")
}
