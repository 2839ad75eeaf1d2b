package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newURLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url PATH",
		Short: "Build a single image URL",
		Example: `  imglab url --source assets -p width=500 -p format=webp example.jpeg
  imglab url --source assets --secure-key KEY --secure-salt SALT -p width=200 example.jpeg`,
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

			u, err := svc.URL(name, args[0], params)
			if err != nil {
				return err
			}
			commandLogger(cmd).Debug("url built", slog.String("source", string(name)), slog.String("path", args[0]))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	addSourceFlags(cmd)
	return cmd
}
