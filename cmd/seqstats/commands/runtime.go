package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/seqstats/pkg/config"
	"github.com/Sumatoshi-tech/seqstats/pkg/observability"
	"github.com/Sumatoshi-tech/seqstats/pkg/version"
)

// runtime is the state shared by all subcommands of one invocation.
type runtime struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *observability.CommandMetrics
	shutdown func(ctx context.Context) error
}

func (rt *runtime) init(_ context.Context, flags *globalFlags) error {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.Environment = cfg.Telemetry.Environment
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(cfg.Telemetry.OTLPHeaders)
	obsCfg.LogLevel = cfg.Logging.SlogLevel()
	obsCfg.LogJSON = cfg.Logging.Format == "json"
	obsCfg.LogWriter = rt.stderr

	switch {
	case flags.quiet:
		obsCfg.LogLevel = slog.LevelError
	case flags.verbose:
		obsCfg.LogLevel = slog.LevelDebug
	}

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	cmdMetrics, err := observability.NewCommandMetrics(providers.Meter)
	if err != nil {
		return fmt.Errorf("init command metrics: %w", err)
	}

	rt.cfg = cfg
	rt.logger = providers.Logger
	rt.tracer = providers.Tracer
	rt.metrics = cmdMetrics
	rt.shutdown = providers.Shutdown

	return nil
}

func (rt *runtime) close(ctx context.Context) error {
	if rt.shutdown == nil {
		return nil
	}

	err := rt.shutdown(ctx)
	rt.shutdown = nil

	if err != nil {
		return fmt.Errorf("flush telemetry: %w", err)
	}

	return nil
}

// run executes fn inside a span named after the command and records its
// duration and outcome.
func (rt *runtime) run(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := rt.tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	rt.metrics.RecordCommand(ctx, name, elapsed, err != nil)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	rt.logger.DebugContext(ctx, "command finished", "command", name, "elapsed", elapsed)

	return nil
}
