package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/presstools/core/logging"
	"github.com/presstools/core/shell"
	"github.com/presstools/core/verify"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Verify that PHP, WP-CLI, and git are usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := GetOptions(cmd)
			handler := NewErrorHandler(opts.Verbose)

			cfg, err := loadConfig(opts)
			if err != nil {
				return handler.Handle(err)
			}

			sh := shell.New(cfg.WorkDir(),
				shell.WithLogger(logging.NewLogger("shell")),
				shell.WithBaseEnv(cfg.Env))
			verifier := verify.New(sh, cfg)

			failed := 0
			for _, check := range verifier.Checks() {
				if err := check.Run(); err != nil {
					failed++
					fmt.Printf("%s %s: %v\n", color.RedString("✗"), check.Name, err)
					continue
				}
				fmt.Printf("%s %s\n", color.GreenString("✓"), check.Name)
			}

			if failed > 0 {
				fmt.Fprintf(os.Stderr, "\n%d check(s) failed\n", failed)
				return fmt.Errorf("%d dependency check(s) failed", failed)
			}
			return nil
		},
	}
}
