package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newSrcsetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srcset PATH",
		Short: "Build a srcset attribute value",
		Long: `Build the candidate list for an img srcset attribute.

A width list or range (-p width=100..800) yields width descriptors. A fixed
width or height yields density descriptors for the given dpr list or range,
or 1x to 6x. Without either the default width ladder from 100 to 8192 is used.`,
		Example: `  imglab srcset --source assets -p width=100..800 example.jpeg
  imglab srcset --source assets -p width=300 -p dpr=1..3 example.jpeg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, name, err := resolveService(cmd)
			if err != nil {
				return err
			}
			params, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}

			srcset, err := svc.Srcset(name, args[0], params)
			if err != nil {
				return err
			}
			commandLogger(cmd).Debug("srcset built", slog.String("source", string(name)), slog.String("path", args[0]))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), srcset)
			return err
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	addSourceFlags(cmd)
	return cmd
}
