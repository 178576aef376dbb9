// Package source reads sentence lines from an NMEA talker.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	serial "go.bug.st/serial"
)

// OpenSerial opens the serial device an NMEA talker is attached to. Most
// depth sounders talk at 4800 baud, 8N1.
func OpenSerial(device string, baud int) (io.ReadCloser, error) {
	port, err := serial.Open(device, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", device, err)
	}
	return port, nil
}

// Lines sends every non-empty, trimmed line read from r to out until r is
// exhausted or ctx is cancelled. out is closed on return.
func Lines(ctx context.Context, r io.Reader, out chan<- string) error {
	defer close(out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read sentences: %w", err)
	}
	return nil
}
