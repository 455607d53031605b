package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tagpack",
	Short: "tagpack - compact tagged-value binary codec",
	Long: `tagpack converts JSON documents to and from a compact, schema-free
binary wire format where every value carries a single leading tag byte.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("compress", "none", "Transport compression: none, s2 or lz4")
	rootCmd.PersistentFlags().Bool("wide-integers", false, "Use the 8-byte integer form beyond 32 bits (format revision)")
	rootCmd.PersistentFlags().Bool("float64", false, "Use the 8-byte float form (format revision)")
}

// readInput reads a file argument, or stdin when the argument is "-"
// or absent.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

// writeOutput writes to a file, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
