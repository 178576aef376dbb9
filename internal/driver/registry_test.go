package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asnimansari/nmea/internal/frame"
	"github.com/asnimansari/nmea/internal/nmea"
)

type stubDriver struct{ name string }

func (d stubDriver) Name() string { return d.name }

func (d stubDriver) Process(context.Context, *frame.Sentence) (map[string]any, error) {
	return map[string]any{"driver": d.name}, nil
}

func TestRegisterLookup(t *testing.T) {
	t.Cleanup(func() {
		regMu.Lock()
		delete(registry, nmea.ZDA)
		regMu.Unlock()
	})

	_, err := Lookup(nmea.ZDA)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ZDA")

	Register(nmea.ZDA, stubDriver{name: "first"})
	Register(nmea.ZDA, stubDriver{name: "second"})

	drv, err := Lookup(nmea.ZDA)
	require.NoError(t, err)
	require.Equal(t, "second", drv.Name())
	require.Contains(t, Registered(), nmea.ZDA)
}
