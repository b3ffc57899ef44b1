package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"or1on"
	"or1on/cmd/or1on/ui"
	"or1on/config"
	auditsqlite "or1on/internal/auditlog/sqlite"
	"or1on/internal/clock/ntp"
	"or1on/internal/metrics"
	"or1on/internal/telemetry"
	"or1on/kernel"

	"github.com/prometheus/client_golang/prometheus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

const ntpSyncTimeout = 5 * time.Second

// Flags holds the root persistent flag values shared by every command.
type Flags struct {
	ConfigPath string
	Journal    string
	Debug      bool
	NoColor    bool
	Trace      bool
}

// Session is one CLI invocation: a freshly constructed kernel plus the
// collaborators that render, count, trace and journal what it does. Kernel
// state lives only as long as the session. Event notices go to stderr so
// stdout carries only command output.
type Session struct {
	Settings config.Settings
	Config   kernel.Config
	Kernel   *kernel.Kernel
	Tracer   trace.Tracer
	Metrics  *metrics.Recorder

	journalPath string
	journal     *auditsqlite.Journal
	registry    *prometheus.Registry
	provider    *sdktrace.TracerProvider
	spans       *tracetest.SpanRecorder
	stderr      io.Writer
}

// Open loads settings and the config bundle and builds the session's kernel.
func Open(ctx context.Context, flags *Flags) (*Session, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	path := settings.ResolvePath(flags.ConfigPath)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded kernel config.", "path", path, "identity", cfg.Identity)

	s := &Session{
		Settings:    settings,
		Config:      cfg,
		journalPath: flags.Journal,
		registry:    prometheus.NewRegistry(),
		stderr:      os.Stderr,
	}
	if s.journalPath == "" {
		s.journalPath = settings.AuditDB
	}
	s.Metrics = metrics.NewRecorder(s.registry)

	var processors []sdktrace.SpanProcessor
	if flags.Trace {
		s.spans = tracetest.NewSpanRecorder()
		processors = append(processors, s.spans)
	}
	s.provider = telemetry.NewProvider(slog.Default(), processors...)
	s.Tracer = s.provider.Tracer(telemetry.TracerName)

	opts := []kernel.Option{
		kernel.WithLogger(slog.Default()),
		kernel.WithObserver(func(ev or1on.Event) {
			s.Metrics.Observe(ev)
			fmt.Fprintln(s.stderr, ui.Event(ev))
		}),
	}
	if settings.NTPPool != "" {
		opts = append(opts, kernel.WithClock(syncedClock(ctx, settings.NTPPool)))
	}
	s.Kernel = kernel.New(cfg, opts...)
	return s, nil
}

// Spans returns the spans finished so far when tracing is enabled.
func (s *Session) Spans() []sdktrace.ReadOnlySpan {
	if s.spans == nil {
		return nil
	}
	return s.spans.Ended()
}

// Hash picks the expected anchor: the flag value, then OR1ON_HASH.
func (s *Session) Hash(flag string) string {
	if flag != "" {
		return flag
	}
	return s.Settings.Hash
}

// Journal opens the audit journal on first use. It returns nil, nil when
// no journal is configured.
func (s *Session) Journal() (*auditsqlite.Journal, error) {
	if s.journal != nil || s.journalPath == "" {
		return s.journal, nil
	}
	j, err := auditsqlite.Open(s.journalPath)
	if err != nil {
		return nil, err
	}
	s.journal = j
	return j, nil
}

// Record appends rec to the journal if one is configured.
func (s *Session) Record(ctx context.Context, rec or1on.AuditRecord) error {
	j, err := s.Journal()
	if err != nil || j == nil {
		return err
	}
	id, err := j.Append(ctx, rec)
	if err != nil {
		return err
	}
	slog.Debug("Journaled audit record.", "id", id, "status", rec.Status)
	return nil
}

// Close flushes metrics to the textfile, if configured, prints the trace
// when enabled, and releases the journal and tracer provider.
func (s *Session) Close(ctx context.Context) error {
	if spans := s.Spans(); len(spans) > 0 {
		fmt.Fprintln(s.stderr, ui.Table([]string{"Span", "Duration", "Status"}, spanRows(spans)))
	}

	var errs []error
	if s.Settings.MetricsFile != "" {
		if err := metrics.WriteTextfile(s.Settings.MetricsFile, s.registry); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.journal.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close journal: %w", err))
	}
	if err := s.provider.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown tracer provider: %w", err))
	}
	return errors.Join(errs...)
}

func spanRows(spans []sdktrace.ReadOnlySpan) [][]string {
	rows := make([][]string, 0, len(spans))
	for _, sp := range spans {
		rows = append(rows, []string{
			sp.Name(),
			sp.EndTime().Sub(sp.StartTime()).String(),
			sp.Status().Code.String(),
		})
	}
	return rows
}

// syncedClock returns an NTP-corrected clock. A failed sync is logged and
// the clock falls back to the local time.
func syncedClock(ctx context.Context, pool string) *ntp.Clock {
	c := ntp.New(ntp.WithPool(pool))

	syncCtx, cancel := context.WithTimeout(ctx, ntpSyncTimeout)
	defer cancel()
	if err := c.Sync(syncCtx); err != nil {
		slog.Warn("NTP sync failed, using local clock.", "pool", pool, "err", err)
	}
	return c
}
