package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/presstools/core/catalog"
	"github.com/presstools/core/errors"
	"github.com/presstools/core/logging"
	"github.com/presstools/core/registry"
	"github.com/presstools/core/shell"
)

// consoleSink forwards captured lines to the terminal as they are read, so
// long-running commands show progress instead of a silent pause.
type consoleSink struct{}

func (consoleSink) Line(line string, isError bool) {
	if isError {
		fmt.Fprintln(os.Stderr, color.RedString(line))
		return
	}
	fmt.Println(line)
}

func newRunCmd() *cobra.Command {
	var paramFlags []string

	cmd := &cobra.Command{
		Use:   "run <command>",
		Short: "Run a registered command by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := GetOptions(cmd)
			handler := NewErrorHandler(opts.Verbose)

			cfg, err := loadConfig(opts)
			if err != nil {
				return handler.Handle(err)
			}
			log := GetLogger(cmd)

			sh := shell.New(cfg.WorkDir(),
				shell.WithLogger(logging.NewLogger("shell")),
				shell.WithSink(consoleSink{}),
				shell.WithBaseEnv(cfg.Env))

			// Ctrl-C triggers the two-phase stop instead of orphaning children.
			interrupts := make(chan os.Signal, 1)
			signal.Notify(interrupts, os.Interrupt)
			defer signal.Stop(interrupts)
			go func() {
				if _, ok := <-interrupts; ok {
					sh.Stop()
				}
			}()

			reg := registry.New(logging.NewLogger("registry"))
			catalog.RegisterAll(reg)

			params, err := parseParams(paramFlags)
			if err != nil {
				return handler.Handle(err)
			}

			ctx := &registry.Context{Shell: sh, Config: cfg, Log: log}
			command, err := reg.Create(args[0], ctx, params)
			if err != nil {
				return handler.Handle(err)
			}

			res, err := command.Execute()
			if err != nil {
				return handler.Handle(err)
			}
			if !res.Successful() {
				// Output already reached the terminal through the sink.
				return handler.Handle(errors.New(errors.ErrCodeInternal,
					fmt.Sprintf("command '%s' reported failure", args[0])))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&paramFlags, "param", nil,
		"Command parameter as key=value (repeatable)")
	return cmd
}

// parseParams converts repeated key=value flags into a parameter bag.
func parseParams(flags []string) (registry.Params, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	params := make(registry.Params, len(flags))
	for _, flag := range flags {
		key, value, found := strings.Cut(flag, "=")
		if !found || key == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				fmt.Sprintf("malformed parameter %q, expected key=value", flag))
		}
		params[key] = value
	}
	return params, nil
}
