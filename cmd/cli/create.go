package cli

import (
	"fmt"

	"cross-bloomfilter/bloom"

	"github.com/spf13/cobra"
)

var (
	createCapacity  int
	createErrorRate float64
	createForce     bool
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an empty filter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !createForce {
			exists, err := getStore().Has(name)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("filter %s already exists (use --force to replace it)", name)
			}
		}

		if err := bloom.CheckReloadable(createCapacity, createErrorRate); err != nil {
			return fmt.Errorf("failed to create filter %s: %w", name, err)
		}
		f, err := bloom.New(createCapacity, createErrorRate)
		if err != nil {
			return fmt.Errorf("failed to create filter %s: %w", name, err)
		}
		if err := getStore().Put(name, f, gzipDumps); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), f)
		return nil
	},
}

func init() {
	createCmd.Flags().IntVarP(&createCapacity, "capacity", "n", bloom.DefaultCapacity, "Expected number of distinct keys")
	createCmd.Flags().Float64VarP(&createErrorRate, "error-rate", "e", bloom.DefaultErrorRate, "Target false positive rate")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "Replace an existing filter")
	rootCmd.AddCommand(createCmd)
}
