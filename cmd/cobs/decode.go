package main

import (
	"github.com/spf13/cobra"

	"github.com/byteframe/cobs-go/internal/frame"
)

var decodeAll bool

func init() {
	decodeCmd.Flags().BoolVar(&decodeAll, "all", false, "Decode every packet in the input, skipping empty and corrupt ones")
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode COBS packets from the input",
	Long: "Read the whole input and decode its first zero-terminated COBS packet. " +
		"With --all, decode packets one after another until the input is exhausted, " +
		"resynchronizing on the next marker after a corrupt packet.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stream := readInput()

		if !decodeAll {
			decoded, _, err := frame.AppendDecode(nil, stream)
			if err != nil {
				log.Fatalf("Unable to decode packet: %v", err)
			}
			writeOutput(decoded)
			return
		}

		var decoded []byte
		rest := stream
		packets := 0
		for {
			next, remaining, err := frame.AppendDecode(decoded, rest)
			if err == frame.Incomplete {
				if len(remaining) > 0 {
					log.Warnf("Discarding %d trailing bytes with no terminating marker", len(remaining))
				}
				break
			}
			if err != nil {
				log.Warnf("Skipping corrupt packet: %v", err)
			} else {
				packets++
			}
			decoded = next
			rest = remaining
		}
		log.Debugf("Decoded %d packets into %d bytes", packets, len(decoded))
		writeOutput(decoded)
	},
}
