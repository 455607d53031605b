package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tagpack/tagpack/pkg/codec"
	"github.com/tagpack/tagpack/pkg/compress"
	"github.com/tagpack/tagpack/pkg/value"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a tagpack payload into a JSON document",
	Long: `Decode a tagpack payload back into JSON. Reads from the file argument
or stdin, writes JSON to --out or stdout. Pass the same --compress
algorithm the payload was encoded with.

Example:
  tagpack decode payload.tp
  tagpack decode payload.tp --compress s2 --out payload.json`,
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

		v, err := codec.Decode(raw)
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}

		doc, err := value.ToJSON(v)
		if err != nil {
			return fmt.Errorf("payload is not representable as JSON: %w", err)
		}

		outPath, _ := cmd.Flags().GetString("out")
		return writeOutput(outPath, append(doc, '\n'))
	},
}

func init() {
	decodeCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(decodeCmd)
}
