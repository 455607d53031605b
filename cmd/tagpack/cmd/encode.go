package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tagpack/tagpack/pkg/codec"
	"github.com/tagpack/tagpack/pkg/compress"
	"github.com/tagpack/tagpack/pkg/value"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a JSON document into a tagpack payload",
	Long: `Encode a JSON document into a tagpack payload. Reads from the file
argument or stdin, writes binary to --out or stdout.

Example:
  tagpack encode payload.json --out payload.tp
  echo '{"id":7}' | tagpack encode > payload.tp`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		v, err := value.FromJSON(input)
		if err != nil {
			return fmt.Errorf("invalid JSON document: %w", err)
		}

		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}

		encoded, err := codec.EncodeOptions(v, opts)
		if err != nil {
			return fmt.Errorf("encode failed: %w", err)
		}

		comp, err := compress.ForAlgorithm(opts.Compression)
		if err != nil {
			return err
		}
		out, err := comp.Compress(encoded)
		if err != nil {
			return fmt.Errorf("compression failed: %w", err)
		}

		outPath, _ := cmd.Flags().GetString("out")
		return writeOutput(outPath, out)
	},
}

// optionsFromFlags builds codec options from the persistent flags.
func optionsFromFlags(cmd *cobra.Command) (codec.Options, error) {
	wide, err := cmd.Flags().GetBool("wide-integers")
	if err != nil {
		return codec.Options{}, err
	}
	double, err := cmd.Flags().GetBool("float64")
	if err != nil {
		return codec.Options{}, err
	}
	algorithm, err := cmd.Flags().GetString("compress")
	if err != nil {
		return codec.Options{}, err
	}
	return codec.Options{
		WideIntegers:    wide,
		DoublePrecision: double,
		Compression:     algorithm,
	}, nil
}

func init() {
	encodeCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(encodeCmd)
}
