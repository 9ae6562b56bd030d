package cli

import (
	"fmt"
	"math"

	"cross-bloomfilter/bloom"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [name]",
	Short: "Show the parameters and fill level of a filter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := getStore().Get(args[0])
		if err != nil {
			return err
		}
		printStats(cmd, args[0], f)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored filters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, filters, err := getStore().LoadAll()
		if err != nil {
			return err
		}
		for _, name := range names {
			f, ok := filters[name]
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tunreadable\n", name)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tcapacity=%d error=%v\n", name, f.Capacity(), f.ErrorRate())
		}
		return nil
	},
}

func printStats(cmd *cobra.Command, name string, f *bloom.Filter) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:        %s\n", name)
	fmt.Fprintf(out, "capacity:    %d\n", f.Capacity())
	fmt.Fprintf(out, "error rate:  %v\n", f.ErrorRate())
	fmt.Fprintf(out, "bits:        %d\n", f.BitCount())
	fmt.Fprintf(out, "bytes:       %d\n", f.ByteCount())
	fmt.Fprintf(out, "hashes:      %d\n", f.HashRounds())
	fmt.Fprintf(out, "fill ratio:  %.4f\n", f.FillRatio())
	if n := f.ApproxCount(); n == math.MaxInt {
		fmt.Fprintln(out, "approx keys: saturated")
	} else {
		fmt.Fprintf(out, "approx keys: %d\n", n)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
}
