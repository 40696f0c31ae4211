package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"numcode/internal/app"
	"numcode/internal/domain"
)

var appCtx *app.App

// Execute runs the CLI with the process arguments and standard streams.
func Execute() error {
	return ExecuteWith(app.Config{}, os.Args[1:])
}

// ExecuteWith runs the CLI with args over the streams in cfg. Any error is also
// reported as a single diagnostic line on cfg.Err.
func ExecuteWith(cfg app.Config, args []string) error {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	root := newRootCmd(cfg)
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		app.NewLogger(cfg.Err).Print(err)
	}
	return err
}

func newRootCmd(cfg app.Config) *cobra.Command {
	appCtx = nil
	root := &cobra.Command{
		Use:   "numcode",
		Short: "Convert decimal numbers between decimal, BCD, Aiken and Stibitz codes",
		Long: "numcode reads \"<encoding> <value>\" records from stdin, one per line, and\n" +
			"prints each value as decimal, BCD, Aiken and Stibitz, separated by tabs.",
		Args:               noArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			appCtx = app.New(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Run()
		},
	}
	return root
}

// noArgs rejects every argument, flags included.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected argument %q; %s takes no arguments", domain.ErrUsage, args[0], cmd.Name())
	}
	return nil
}
