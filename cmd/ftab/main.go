package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/restorefw/ftab/section"
)

var log = zerolog.Nop()

var cmdMain = &cobra.Command{
	Use:              "ftab",
	Short:            "Pack and unpack ftab firmware table files",
	PersistentPreRun: setupLogging,
	Run:              printUsageAndExit1,
}

var flagMain struct {
	LogLevel    string
	PrintHeader bool
}

func init() {
	cmdMain.PersistentFlags().StringVarP(&flagMain.LogLevel, "log-level", "l", "warn", "Log level: none, trace, debug, info, warn or error")
	cmdMain.PersistentFlags().BoolVarP(&flagMain.PrintHeader, "print-header", "H", false, "Print fields of the ftab file header that are neither offsets nor magic (currently all are unknown and ignored)")
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		os.Exit(1)
	}
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func setupLogging(*cobra.Command, []string) {
	level := zerolog.WarnLevel
	switch strings.ToLower(flagMain.LogLevel) {
	case "none":
		level = zerolog.Disabled
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...any) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}

// confirmOverwrite asks on the terminal whether the file at path may be
// replaced. When stdin is not a terminal there is nobody to ask, so the
// answer is no.
func confirmOverwrite(path string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return false
	}

	fmt.Fprintf(os.Stderr, "Do you want to overwrite the file at '%s'? [y/N] ", path)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func printHeader(hdr section.Header) {
	fmt.Printf("unk_0: %#08x\n", hdr.Unknown0)
	fmt.Printf("unk_1: %#08x\n", hdr.Unknown1)
	fmt.Printf("unk_2: %#08x\n", hdr.Unknown2)
	fmt.Printf("unk_3: %#08x\n", hdr.Unknown3)
	fmt.Printf("unk_4: %#08x\n", hdr.Unknown4)
	fmt.Printf("unk_5: %#08x\n", hdr.Unknown5)
	fmt.Printf("unk_6: %#08x\n", hdr.Unknown6)
}
