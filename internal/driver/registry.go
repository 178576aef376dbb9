package driver

import (
	"context"
	"fmt"
	"sync"

	"github.com/asnimansari/nmea/internal/frame"
	"github.com/asnimansari/nmea/internal/nmea"
)

// Driver decodes the payload of one sentence type once selected.
type Driver interface {
	Name() string
	Process(context.Context, *frame.Sentence) (map[string]any, error)
}

var (
	regMu    sync.RWMutex
	registry = map[nmea.SentenceType]Driver{}
)

// Register binds a driver to a message id. A later registration for the
// same id replaces the earlier one.
func Register(id nmea.SentenceType, drv Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[id] = drv
}

// Lookup returns the driver registered for the message id.
func Lookup(id nmea.SentenceType) (Driver, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	if drv, ok := registry[id]; ok {
		return drv, nil
	}
	return nil, fmt.Errorf("driver not found for sentence %s", id)
}

// Registered lists the message ids that currently have a driver.
func Registered() []nmea.SentenceType {
	regMu.RLock()
	defer regMu.RUnlock()
	ids := make([]nmea.SentenceType, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
