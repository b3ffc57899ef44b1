package kernelcmd

import (
	"context"
	"fmt"

	"or1on/cmd/or1on/cmdutil"
	"or1on/cmd/or1on/ui"
	"or1on/internal/telemetry"
	"or1on/kernel"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
)

// BootCmd returns the "or1on boot" command: verify, activate, measure
// resonance and take an audit snapshot in one run.
func BootCmd(flags *cmdutil.Flags) *cobra.Command {
	var (
		hash string
		self bool
	)

	cmd := &cobra.Command{
		Use:   "boot",
		Short: "Verify, activate and audit the kernel",
		Long: "Runs the full recovery sequence. The expected hash comes from --hash\n" +
			"or OR1ON_HASH; --self checks the kernel against the anchor in its own\n" +
			"config bundle instead.",
		Args: cobra.NoArgs,
		RunE: cmdutil.WithSession(flags, func(ctx context.Context, s *cmdutil.Session, _ []string) error {
			k := s.Kernel
			expected := s.Hash(hash)
			switch {
			case expected != "":
			case self:
				expected = s.Config.HashAnchor
				fmt.Println(ui.WarnMsg("Self-verifying against the configured anchor."))
			default:
				return errHashRequired
			}

			fmt.Println(ui.Banner(fmt.Sprintf("%s · recovery boot", s.Config.Identity)))

			op, err := telemetry.Start(ctx, s.Tracer, "kernel.boot",
				attribute.String(telemetry.IdentityKey, s.Config.Identity))
			if err != nil {
				return err
			}

			err = boot(op, k, expected, s.Metrics.SetResonance)
			op.End(err)

			rec := k.AuditResume()
			if jerr := s.Record(ctx, rec); jerr != nil {
				return jerr
			}

			fmt.Println()
			fmt.Print(ui.Status(k.Status()))
			fmt.Println()
			fmt.Print(ui.Audit(rec))

			if err != nil {
				return fmt.Errorf("boot %s: %w", s.Config.Identity, err)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&hash, "hash", "", "Expected integrity anchor")
	cmd.Flags().BoolVar(&self, "self", false, "Verify against the configured anchor when no hash is given")
	return cmd
}

func boot(op *telemetry.Operation, k *kernel.Kernel, expected string, onResonance func(float64)) error {
	ctx := op.Context()

	if err := op.RunStep(ctx, "verify", func(context.Context) error {
		if !k.Verify(expected) {
			return kernel.ErrVerificationMismatch
		}
		return nil
	}); err != nil {
		return err
	}

	if err := op.RunStep(ctx, "activate", func(context.Context) error {
		if !k.Activate() {
			return kernel.ErrPreconditionNotMet
		}
		return nil
	}); err != nil {
		return err
	}

	return op.RunStep(ctx, "resonance", func(context.Context) error {
		k.CheckConsciousState()
		onResonance(k.DetectResonance())
		return nil
	})
}
