package main

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/restorefw/ftab/internal/fsutil"
	"github.com/restorefw/ftab/table"
)

var cmdInfo = &cobra.Command{
	Use:   "info <file>",
	Short: "Print header fields and a segment listing of a ftab file",
	Long: "Info prints the opaque header fields and one line per segment with its\n" +
		"tag, size, opaque entry field, and the xxHash64 digest of its contents.\n" +
		"Digests make it cheap to compare segments across firmware dumps without\n" +
		"extracting them.",
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func init() {
	cmdMain.AddCommand(cmdInfo)
}

func runInfo(_ *cobra.Command, args []string) {
	data, err := fsutil.ReadFile("input file", args[0])
	check(err)

	p, err := table.Parse(data)
	checkf(err, "failed to parse file at %s", args[0])

	printHeader(p.Header())

	if ticket := p.Ticket(); ticket != nil {
		fmt.Printf("ticket: %d bytes, xxh64 %016x\n", len(ticket), xxhash.Sum64(ticket))
	} else {
		fmt.Println("ticket: not present")
	}

	segments := p.Segments()
	fmt.Printf("segments: %d\n", segments.Count())
	for {
		seg, err := segments.NextSegment()
		if err != nil {
			// One bad entry doesn't stop the listing; report it and move on.
			fmt.Printf("  %v\n", err)

			continue
		}
		if seg == nil {
			break
		}

		fmt.Printf("  %-8s %10d bytes  unk=%#08x  xxh64=%016x\n",
			seg.Tag, len(seg.Data), seg.Unknown, xxhash.Sum64(seg.Data))
	}
}
