package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"imglab-urls/internal/imglab"
	"imglab-urls/internal/urlbuilder"
)

func newSequenceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sequence FIRST LAST [SIZE]",
		Short: "Print a geometric sequence of integers, one per line",
		Example: `  imglab sequence 100 8192
  imglab sequence 100 1000 4`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]int, len(args))
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("%w: %q is not an integer", imglab.ErrMalformedRange, a)
				}
				nums[i] = n
			}
			size := 0
			if len(nums) == 3 {
				size = nums[2]
				if size == 0 {
					return fmt.Errorf("%w: size must be positive", imglab.ErrMalformedRange)
				}
			}

			svc := urlbuilder.NewService(urlbuilder.NewInMemoryRepository())
			seq, err := svc.Sequence(nums[0], nums[1], size)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, n := range seq {
				if _, err := fmt.Fprintln(out, n); err != nil {
					return err
				}
			}
			return nil
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
}
