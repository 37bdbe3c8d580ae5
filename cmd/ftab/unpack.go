package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restorefw/ftab/internal/fsutil"
	"github.com/restorefw/ftab/manifest"
	"github.com/restorefw/ftab/section"
	"github.com/restorefw/ftab/table"
)

var cmdUnpack = &cobra.Command{
	Use:   "unpack <file> [out-dir]",
	Short: "Unpack a ftab file into a directory",
	Long: "Unpack extracts every segment of a ftab file into the output directory\n" +
		"(default: the current working directory), writes the signing ticket to\n" +
		"ApImg4Ticket.der when present, and saves a manifest.toml describing the\n" +
		"file so it can be rebuilt with pack.",
	Args: cobra.RangeArgs(1, 2),
	Run:  runUnpack,
}

var flagUnpack = struct {
	Overwrite        bool
	CreateParentDirs bool
}{}

func init() {
	cmdUnpack.Flags().BoolVarP(&flagUnpack.Overwrite, "overwrite", "o", false, "Overwrite files instead of stopping when a file exists in the output directory")
	cmdUnpack.Flags().BoolVarP(&flagUnpack.CreateParentDirs, "create-parent-dirs", "p", false, "Create parent directories when the output directory does not exist")
	cmdMain.AddCommand(cmdUnpack)
}

func runUnpack(_ *cobra.Command, args []string) {
	inFile := args[0]
	outDir := ""
	if len(args) > 1 {
		outDir = args[1]
	}

	data, err := fsutil.ReadFile("input file", inFile)
	check(err)
	log.Info().Str("path", inFile).Msg("loaded input file")

	if outDir != "" {
		check(makeOutDir(outDir, flagUnpack.CreateParentDirs))
	}

	p, err := table.Parse(data)
	checkf(err, "failed to parse file at %s", inFile)
	log.Debug().Uint32("count", p.Header().SegmentCount).Msg("parsed header")

	if flagMain.PrintHeader {
		printHeader(p.Header())
	}

	m := manifest.FromParser(p)

	var confirm fsutil.ConfirmFunc
	if !flagUnpack.Overwrite {
		confirm = confirmOverwrite
	}

	if ticket := p.Ticket(); ticket != nil {
		const name = "ApImg4Ticket.der"
		check(fsutil.WriteFile("ticket", fsutil.Qualify(name, outDir), ticket, flagUnpack.Overwrite, confirm))
		log.Info().Str("path", name).Int("size", len(ticket)).Msg("saved ticket")
		m.Ticket = name
	}

	segments := p.Segments()
	m.Segments = make([]manifest.Segment, 0, segments.Count())
	for {
		seg, err := segments.NextSegment()
		check(err)
		if seg == nil {
			break
		}

		name := filenameForTag(seg.Tag)
		check(fsutil.WriteFile("segment", fsutil.Qualify(name, outDir), seg.Data, flagUnpack.Overwrite, confirm))
		log.Info().Stringer("tag", seg.Tag).Str("path", name).Int("size", len(seg.Data)).Msg("saved segment")

		m.Segments = append(m.Segments, manifest.Segment{
			Path:    name,
			Tag:     manifest.Tag(seg.Tag),
			Unknown: seg.Unknown,
		})
	}

	serialized, err := m.Bytes()
	check(err)
	check(fsutil.WriteFile("manifest", fsutil.Qualify("manifest.toml", outDir), serialized, flagUnpack.Overwrite, confirm))

	log.Info().Msg("done")
}

// filenameForTag maps a segment tag to the extracted file's name:
// "<tag>.bin" for alphanumeric tags, "tag_<hex>.bin" otherwise.
func filenameForTag(tag section.Tag) string {
	if tag.IsAlphanumeric() {
		return string(tag[:]) + ".bin"
	}

	return "tag_" + tag.Hex() + ".bin"
}

func makeOutDir(dir string, parents bool) error {
	var err error
	if parents {
		err = os.MkdirAll(dir, 0o755)
	} else {
		err = os.Mkdir(dir, 0o755)
	}

	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrExist) {
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			return nil
		}

		return fmt.Errorf("path %s exists and is not a directory", dir)
	}

	return fmt.Errorf("couldn't create target directory at %s: %w", dir, err)
}
