package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var addFile string

var addCmd = &cobra.Command{
	Use:   "add [name] [key...]",
	Short: "Add keys to a filter",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		keys := args[1:]
		if addFile != "" {
			fileKeys, err := readKeys(addFile)
			if err != nil {
				return err
			}
			keys = append(keys, fileKeys...)
		}
		if len(keys) == 0 {
			return cmd.Help()
		}

		f, err := getStore().Get(name)
		if err != nil {
			return err
		}
		added := f.AddAll(keys...)
		if err := getStore().Put(name, f, gzipDumps); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %d new of %d keys to %s\n", added, len(keys), name)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addFile, "file", "", "Read newline-delimited keys from a file")
	rootCmd.AddCommand(addCmd)
}

// readKeys returns the non-blank lines of path.
func readKeys(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer file.Close()

	var keys []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	return keys, nil
}
