package cmdutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"or1on"
	"or1on/config"
	auditsqlite "or1on/internal/auditlog/sqlite"
	"or1on/internal/telemetry"
	"or1on/kernel"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionEnv points every session input at a temp dir and writes a config
// bundle anchored at "H". It returns the temp dir.
func sessionEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, name := range []string{
		"OR1ON_CONFIG", "OR1ON_AUDIT_DB", "OR1ON_METRICS_FILE", "OR1ON_NTP_POOL", "OR1ON_HASH",
	} {
		t.Setenv(name, "")
	}

	cfg := kernel.DefaultConfig()
	cfg.HashAnchor = "H"
	require.NoError(t, config.Save(filepath.Join(dir, "or1on", "kernel.yaml"), cfg))
	return dir
}

func verifyAndAudit(ctx context.Context, s *Session, _ []string) error {
	if !s.Kernel.Verify("H") {
		return kernel.ErrVerificationMismatch
	}
	return s.Record(ctx, s.Kernel.AuditResume())
}

func journalEntries(t *testing.T, path string) []auditsqlite.Entry {
	t.Helper()

	j, err := auditsqlite.Open(path)
	require.NoError(t, err)
	defer j.Close()

	entries, err := j.Recent(context.Background(), 0)
	require.NoError(t, err)
	return entries
}

func TestWithSession_JournalsAndWritesMetrics(t *testing.T) {
	dir := sessionEnv(t)
	dbPath := filepath.Join(dir, "audit.db")
	metricsPath := filepath.Join(dir, "or1on.prom")
	t.Setenv("OR1ON_AUDIT_DB", dbPath)
	t.Setenv("OR1ON_METRICS_FILE", metricsPath)

	run := WithSession(&Flags{}, verifyAndAudit)
	require.NoError(t, run(&cobra.Command{}, nil))

	entries := journalEntries(t, dbPath)
	require.Len(t, entries, 1)
	assert.Equal(t, or1on.AuditStatusResumed, entries[0].Record.Status)
	assert.Equal(t, "H", entries[0].Record.HashAnchor)
	assert.NotEmpty(t, entries[0].Record.EpochID)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `or1on_kernel_verify_total{result="ok"} 1`)
	assert.Contains(t, text, `or1on_kernel_audit_total{status="resumed"} 1`)
	assert.Contains(t, text, "or1on_kernel_epoch_registered_total 1")
}

func TestWithSession_JournalFlagOverridesEnv(t *testing.T) {
	dir := sessionEnv(t)
	envPath := filepath.Join(dir, "env.db")
	flagPath := filepath.Join(dir, "flag.db")
	t.Setenv("OR1ON_AUDIT_DB", envPath)

	run := WithSession(&Flags{Journal: flagPath}, verifyAndAudit)
	require.NoError(t, run(&cobra.Command{}, nil))

	assert.Len(t, journalEntries(t, flagPath), 1)
	_, err := os.Stat(envPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithSession_ReturnsBodyError(t *testing.T) {
	sessionEnv(t)

	run := WithSession(&Flags{}, func(_ context.Context, s *Session, _ []string) error {
		if !s.Kernel.Verify("wrong") {
			return kernel.ErrVerificationMismatch
		}
		return nil
	})
	assert.ErrorIs(t, run(&cobra.Command{}, nil), kernel.ErrVerificationMismatch)
}

func TestSession_RecordWithoutJournal(t *testing.T) {
	sessionEnv(t)
	ctx := context.Background()

	s, err := Open(ctx, &Flags{})
	require.NoError(t, err)

	j, err := s.Journal()
	require.NoError(t, err)
	assert.Nil(t, j)
	assert.NoError(t, s.Record(ctx, s.Kernel.AuditResume()))
	assert.NoError(t, s.Close(ctx))
}

func TestSession_ConfigFlagOverridesXDG(t *testing.T) {
	dir := sessionEnv(t)
	path := filepath.Join(dir, "other.yaml")
	cfg := kernel.DefaultConfig()
	cfg.Identity = "NOVA"
	require.NoError(t, config.Save(path, cfg))

	s, err := Open(context.Background(), &Flags{ConfigPath: path})
	require.NoError(t, err)
	defer s.Close(context.Background())

	assert.Equal(t, "NOVA", s.Config.Identity)
	assert.Equal(t, "NOVA", s.Kernel.Status().Identity)
}

func TestWithSession_TracePrintsSpans(t *testing.T) {
	sessionEnv(t)
	var out bytes.Buffer

	run := WithSession(&Flags{Trace: true}, func(ctx context.Context, s *Session, _ []string) error {
		s.stderr = &out

		op, err := telemetry.Start(ctx, s.Tracer, "kernel.verify")
		if err != nil {
			return err
		}
		op.End(op.RunStep(op.Context(), "verify", func(context.Context) error { return nil }))

		var names []string
		for _, sp := range s.Spans() {
			names = append(names, sp.Name())
		}
		assert.Equal(t, []string{"verify", "kernel.verify"}, names)
		return nil
	})
	require.NoError(t, run(&cobra.Command{}, nil))

	assert.Contains(t, out.String(), "kernel.verify")
}

func TestSession_NoSpansWithoutTrace(t *testing.T) {
	sessionEnv(t)
	ctx := context.Background()

	s, err := Open(ctx, &Flags{})
	require.NoError(t, err)
	defer s.Close(ctx)

	_, span := s.Tracer.Start(ctx, "verify")
	span.End()
	assert.Nil(t, s.Spans())
}
