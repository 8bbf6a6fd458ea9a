// cmd/vdcexport/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tamzrod/vdc-exporter/internal/config"
	"github.com/tamzrod/vdc-exporter/internal/device"
	"github.com/tamzrod/vdc-exporter/internal/logging"
	"github.com/tamzrod/vdc-exporter/internal/status"
	"github.com/tamzrod/vdc-exporter/internal/transport"
	"github.com/tamzrod/vdc-exporter/internal/writer"
)

const usage = "usage: vdcexport [-config file] [-o output.csv] [-log-level level] [-simulate] [device] [user]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one export and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, opts ...transport.Option) int {
	fs := flag.NewFlagSet("vdcexport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprintln(stderr, usage); fs.PrintDefaults() }

	cfgPath := fs.String("config", "", "YAML config file")
	output := fs.String("o", "", "CSV output file (default stdout)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	simulate := fs.Bool("simulate", false, "read from a built-in simulated device")

	if err := fs.Parse(args); err != nil {
		return int(status.CodeConfig)
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "config load failed: %v\n", err)
		return int(status.CodeConfig)
	}

	if err := applyArgs(cfg, fs.Args(), *output, *logLevel, *simulate); err != nil {
		fmt.Fprintf(stderr, "%v\n%s\n", err, usage)
		return int(status.CodeConfig)
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "config validation failed: %v\n", err)
		return int(status.CodeConfig)
	}
	config.Normalize(cfg)

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "logger init failed: %v\n", err)
		return int(status.CodeConfig)
	}
	defer func() { _ = logger.Sync() }()

	snap := status.Snapshot{
		RunID: uuid.NewString(),
		User:  cfg.Device.User,
	}
	logger = logger.With(zap.String("run_id", snap.RunID))

	statusWriter, statusEnabled := writer.NewStatusWriter(cfg.Metrics.Textfile)

	// --------------------
	// Export
	// --------------------

	start := time.Now()
	n, err := export(cfg, stdout, logger, opts)

	snap.Observations = n
	snap.At = time.Now()
	snap.Duration = snap.At.Sub(start)
	snap = status.Complete(snap, err)

	if err != nil {
		logger.Error("export failed",
			zap.Int("user", cfg.Device.User),
			zap.String("device", cfg.Device.Path),
			zap.Uint16("code", snap.LastErrorCode),
			zap.Error(err),
		)
	} else {
		logger.Info("export complete", zap.Int("user", cfg.Device.User), zap.Int("observations", n), zap.Duration("took", snap.Duration))
	}

	if statusEnabled {
		if err := statusWriter.WriteStatus(snap); err != nil {
			logger.Warn("status write failed", zap.Error(err))
		}
	}

	return status.ExitCode(snap)
}

// export fetches the observation set and writes it as CSV.
// Nothing is written unless the whole set is valid.
func export(cfg *config.Config, stdout io.Writer, logger *zap.Logger, opts []transport.Option) (int, error) {
	session, err := device.Build(cfg.Device, logger, opts...)
	if err != nil {
		return 0, err
	}

	set, err := session.FetchObservations(cfg.Device.User)
	if err != nil {
		return 0, err
	}

	out := stdout
	if cfg.Export.Output != "" {
		f, err := os.Create(cfg.Export.Output)
		if err != nil {
			return 0, &outputError{err: err}
		}
		defer f.Close()
		out = f
	}

	if err := writer.NewCSVWriter(out).Write(cfg.Device.User, set); err != nil {
		return 0, &outputError{err: err}
	}
	return set.Len(), nil
}

// applyArgs lets flags and positional [device] [user] override the config file.
func applyArgs(cfg *config.Config, rest []string, output, logLevel string, simulate bool) error {
	if len(rest) > 2 {
		return fmt.Errorf("too many arguments")
	}
	if len(rest) > 0 {
		cfg.Device.Path = rest[0]
	}
	if len(rest) > 1 {
		u, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("user %q: not a number", rest[1])
		}
		if u == 0 {
			// 0 is the config default marker, not a user.
			return fmt.Errorf("user 0: must be 1 or 2")
		}
		cfg.Device.User = u
	}
	if output != "" {
		cfg.Export.Output = output
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if simulate {
		cfg.Device.Simulate = true
	}
	return nil
}

type outputError struct {
	err error
}

func (e *outputError) Error() string { return "output: " + e.err.Error() }
func (e *outputError) Unwrap() error { return e.err }
func (e *outputError) Code() uint16  { return status.CodeOutput }
