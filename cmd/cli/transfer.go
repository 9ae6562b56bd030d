package cli

import (
	"fmt"
	"io"

	"cross-bloomfilter/bloom"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Print a filter as a base64 dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := getStore().Get(args[0])
		if err != nil {
			return err
		}
		out, err := f.DumpToBase64(gzipDumps)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [name] [base64|-]",
	Short: "Store a filter from a base64 dump given inline or on stdin",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		var encoded []byte
		if len(args) == 2 && args[1] != "-" {
			encoded = []byte(args[1])
		} else {
			in, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read dump: %w", err)
			}
			encoded = in
		}

		f, err := bloom.LoadFromBase64(encoded)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", name, err)
		}
		if err := getStore().Put(name, f, gzipDumps); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), f)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a stored filter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getStore().Delete(args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(deleteCmd)
}
