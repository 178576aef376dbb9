package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/asnimansari/nmea/internal/config"
	"github.com/asnimansari/nmea/internal/metrics"
	"github.com/asnimansari/nmea/internal/source"
	"github.com/asnimansari/nmea/pkg/nmea"
)

var (
	rootCmd = &cobra.Command{
		Use:   "nmea-analyze [sentence]",
		Short: "Decode NMEA 0183 depth sentences",
		Long: "nmea-analyze decodes NMEA 0183 sentences using the nmea library.\n" +
			"Pass a sentence as argument, paste sentences interactively, or stream them from a serial talker with --device.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			a := &analyzer{
				opts:     nmea.AnalyzeOptions{Only: cfg.Only},
				recorder: metrics.NewRecorder(),
				out:      cmd.OutOrStdout(),
			}
			if cfg.MetricsAddr != "" {
				serveMetrics(cfg.MetricsAddr, a.recorder)
			}
			ctx := cmd.Context()
			switch {
			case len(args) == 1:
				return a.analyze(ctx, args[0])
			case cfg.Serial.Device != "":
				return a.runSerial(ctx, cfg.Serial)
			default:
				return a.runInteractive(ctx, cmd.InOrStdin())
			}
		},
	}

	configPath  string
	only        string
	device      string
	baud        int
	metricsAddr string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&only, "only", "", "comma-separated message ids to decode (e.g. DBS,DBT)")
	flags.StringVar(&device, "device", "", "serial device to read sentences from (e.g. /dev/ttyUSB0)")
	flags.IntVar(&baud, "baud", config.Default().Serial.Baud, "serial baud rate")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "listen address for the Prometheus /metrics endpoint")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

// loadConfig reads the optional config file and lets explicitly set
// flags override it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("only") {
		cfg.Only = only
	}
	if flags.Changed("device") {
		cfg.Serial.Device = device
	}
	if flags.Changed("baud") {
		cfg.Serial.Baud = baud
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = metricsAddr
	}
	return cfg, nil
}

func serveMetrics(addr string, recorder *metrics.Recorder) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	go func() {
		logrus.WithField("addr", addr).Info("serving metrics")
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("metrics server stopped")
		}
	}()
}

type analyzer struct {
	opts     nmea.AnalyzeOptions
	recorder *metrics.Recorder
	out      io.Writer
}

func (a *analyzer) runInteractive(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	logrus.Info("nmea analyze mode. Paste a sentence and press Enter (Ctrl+D to exit).")
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := a.analyze(ctx, line); err != nil {
			logrus.WithError(err).Error("failed to decode sentence")
		}
	}
	return scanner.Err()
}

func (a *analyzer) runSerial(ctx context.Context, cfg config.SerialConfig) error {
	port, err := source.OpenSerial(cfg.Device, cfg.Baud)
	if err != nil {
		return err
	}
	// Closing the port unblocks a pending read once ctx is cancelled.
	stopClose := context.AfterFunc(ctx, func() { _ = port.Close() })
	defer func() {
		if !stopClose() {
			return
		}
		if err := port.Close(); err != nil {
			logrus.WithError(err).Warn("close serial port")
		}
	}()
	logrus.WithFields(logrus.Fields{"device": cfg.Device, "baud": cfg.Baud}).Info("reading sentences")

	lines := make(chan string, 16)
	errc := make(chan error, 1)
	go func() { errc <- source.Lines(ctx, port, lines) }()
	for line := range lines {
		if err := a.analyze(ctx, line); err != nil {
			logrus.WithError(err).WithField("sentence", line).Warn("failed to decode sentence")
		}
	}
	if err := <-errc; err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (a *analyzer) analyze(ctx context.Context, line string) error {
	result, err := nmea.AnalyzeLineWithOptions(ctx, line, a.opts)
	a.recorder.Observe(result.Sentence.String(), outcome(result, err))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, result.String())
	return nil
}

func outcome(result nmea.Result, err error) string {
	switch {
	case err != nil:
		return metrics.OutcomeError
	case result.Driver == nmea.DriverUnknown:
		return metrics.OutcomeUnknown
	case result.Driver == nmea.DriverSkipped:
		return metrics.OutcomeSkipped
	default:
		return metrics.OutcomeDecoded
	}
}
