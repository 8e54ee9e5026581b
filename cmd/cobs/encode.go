package main

import (
	"github.com/spf13/cobra"

	"github.com/byteframe/cobs-go/internal/frame"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode the input as a single COBS packet",
	Long:  "Read the whole input and write it back as a single zero-terminated COBS packet.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		raw := readInput()
		encoded := frame.AppendEncode(nil, raw)
		log.Debugf("Encoded %d bytes into %d", len(raw), len(encoded))
		writeOutput(encoded)
	},
}
