package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/restorefw/ftab/internal/fsutil"
	"github.com/restorefw/ftab/manifest"
)

var cmdPack = &cobra.Command{
	Use:   "pack <manifest> [out-file]",
	Short: "Create a ftab file from a manifest",
	Long: "Pack reads a manifest.toml (as written by unpack), loads the segment and\n" +
		"ticket files it references relative to the manifest's directory, and\n" +
		"writes the assembled ftab file (default: ftab.bin next to the manifest).",
	Args: cobra.RangeArgs(1, 2),
	Run:  runPack,
}

var flagPack = struct {
	Overwrite bool
}{}

func init() {
	cmdPack.Flags().BoolVarP(&flagPack.Overwrite, "overwrite", "o", false, "Overwrite the output file instead of stopping when the file exists at the specified path")
	cmdMain.AddCommand(cmdPack)
}

func runPack(_ *cobra.Command, args []string) {
	manifestPath := args[0]

	m, err := manifest.Load(manifestPath)
	check(err)

	inputDir := filepath.Dir(manifestPath)

	outPath := "ftab.bin"
	if len(args) > 1 {
		outPath = args[1]
	}
	outPath = fsutil.Qualify(outPath, inputDir)

	b, err := m.Builder(inputDir)
	check(err)

	var confirm fsutil.ConfirmFunc
	if !flagPack.Overwrite {
		confirm = confirmOverwrite
	}

	f, err := fsutil.Create("output file", outPath, flagPack.Overwrite, confirm)
	check(err)

	log.Debug().Str("path", outPath).Int("segments", b.SegmentCount()).Msg("writing ftab")

	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		fatalf("failed to write output file at path %s: %v", outPath, err)
	}
	checkf(f.Close(), "failed to write output file at path %s", outPath)

	log.Info().Msg("done")
}
