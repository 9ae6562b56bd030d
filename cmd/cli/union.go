package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unionCmd = &cobra.Command{
	Use:   "union [dst] [a] [b]",
	Short: "Store the union of two filters under a new name",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst, left, right := args[0], args[1], args[2]

		a, err := getStore().Get(left)
		if err != nil {
			return err
		}
		b, err := getStore().Get(right)
		if err != nil {
			return err
		}
		u, err := a.Union(b)
		if err != nil {
			return fmt.Errorf("failed to union %s and %s: %w", left, right, err)
		}
		if err := getStore().Put(dst, u, gzipDumps); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s | %s\n", dst, left, right)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unionCmd)
}
