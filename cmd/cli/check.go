package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [name] [key...]",
	Short: "Test keys for membership",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := getStore().Get(args[0])
		if err != nil {
			return err
		}
		for _, key := range args[1:] {
			verdict := "absent"
			if f.Contains(key) {
				verdict = "maybe"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, verdict)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
