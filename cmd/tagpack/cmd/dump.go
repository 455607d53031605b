package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tagpack/tagpack/pkg/codec"
	"github.com/tagpack/tagpack/pkg/compress"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print a human-readable dump of a tagpack payload",
	Long: `Print an annotated, offset-prefixed dump of every value in a tagpack
payload. Useful for inspecting wire-level framing when debugging an
encoder or a foreign producer.

Example:
  tagpack dump payload.tp
  tagpack encode doc.json | tagpack dump`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		algorithm, err := cmd.Flags().GetString("compress")
		if err != nil {
			return err
		}
		comp, err := compress.ForAlgorithm(algorithm)
		if err != nil {
			return err
		}
		raw, err := comp.Decompress(input)
		if err != nil {
			return fmt.Errorf("decompression failed: %w", err)
		}

		dump, err := codec.Diagnose(raw)
		if err != nil {
			return fmt.Errorf("dump failed: %w", err)
		}
		fmt.Print(dump)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
