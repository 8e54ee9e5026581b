// Command cobs encodes and decodes zero-delimited COBS packets, reading
// whole inputs from stdin or a file and writing whole outputs to stdout or a
// file.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var inFile string
var outFile string

var rootCmd = &cobra.Command{
	Use:   "cobs",
	Short: "Encode or decode COBS packets",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

func init() {
	log.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().StringVarP(&inFile, "in", "i", "", "Read input from this file instead of stdin")
	rootCmd.PersistentFlags().StringVarP(&outFile, "out", "o", "", "Write output to this file instead of stdout")
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func readInput() []byte {
	if inFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Unable to read stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(inFile)
	if err != nil {
		log.Fatalf("Unable to read '%s': %v", inFile, err)
	}
	return data
}

func writeOutput(data []byte) {
	if outFile == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("Unable to write stdout: %v", err)
		}
		return
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		log.Fatalf("Unable to write '%s': %v", outFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
