// SPDX-License-Identifier: MIT

// Command fastyz compresses and decompresses Yaz0/SZS files.
//
//	fastyz [-c|-d] [-o output] input
//	fastyz file.bin                 compress to file.bin.yaz0
//	fastyz -c file.bin -o out.szs   compress to out.szs
//	fastyz file.yaz0                decompress to file
//	fastyz -d data.szs -o raw.bin   decompress to raw.bin
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aboood40091/fastyz"
)

const programName = "fastyz"

// mode selects which operation to run on the input file.
type mode int

const (
	modeAuto mode = iota
	modeCompress
	modeDecompress
)

// decompressedExts are recognized as "this is a compressed container" by
// extension alone, without needing to peek at the file's magic.
var decompressedExts = []string{".yaz0", ".szs", ".carc"}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	compress := fs.Bool("c", false, "force compression mode")
	decompress := fs.Bool("d", false, "force decompression mode")
	output := fs.String("o", "", "output filename")
	var version bool
	fs.BoolVar(&version, "v", false, "show version information")
	fs.BoolVar(&version, "version", false, "show version information")
	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if version {
		printVersion()
		return 0
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		fmt.Fprintf(os.Stderr, "Use '%s -h' for usage information\n", programName)
		return 1
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: multiple input files specified")
		return 1
	}
	input := fs.Arg(0)

	m := modeAuto
	switch {
	case *compress && *decompress:
		fmt.Fprintln(os.Stderr, "Error: -c and -d are mutually exclusive")
		return 1
	case *compress:
		m = modeCompress
	case *decompress:
		m = modeDecompress
	}

	if m == modeAuto {
		detected, err := detectMode(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", input, err)
			return 1
		}
		m = detected
	}

	out := *output
	if out == "" {
		out = generateOutputName(input, m)
	}

	var err error
	switch m {
	case modeCompress:
		err = doCompress(input, out)
	default:
		err = doDecompress(input, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// detectMode auto-detects compress vs. decompress: extension first, then the
// stream's own magic bytes if the extension is inconclusive.
func detectMode(input string) (mode, error) {
	lower := strings.ToLower(input)
	for _, ext := range decompressedExts {
		if strings.HasSuffix(lower, ext) {
			return modeDecompress, nil
		}
	}

	f, err := os.Open(input)
	if err != nil {
		return modeAuto, err
	}
	defer f.Close()

	var head [4]byte
	n, _ := f.Read(head[:])
	if n == 4 && yaz0.IsYaz0(head[:]) {
		return modeDecompress, nil
	}
	return modeCompress, nil
}

// generateOutputName derives an output filename from input when the caller
// didn't pass -o, mirroring the extension conventions Yaz0 tooling uses:
// compression appends ".yaz0"; decompression strips a recognized container
// extension (turning ".carc" into ".arc") or, failing that, appends ".bin".
func generateOutputName(input string, m mode) string {
	if m == modeCompress {
		return input + ".yaz0"
	}

	lower := strings.ToLower(input)
	switch {
	case strings.HasSuffix(lower, ".yaz0"):
		return input[:len(input)-len(".yaz0")]
	case strings.HasSuffix(lower, ".szs"):
		return input[:len(input)-len(".szs")]
	case strings.HasSuffix(lower, ".carc"):
		return input[:len(input)-len(".carc")] + ".arc"
	default:
		return input + ".bin"
	}
}

func doCompress(inputFile, outputFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("cannot read %q: %w", inputFile, err)
	}

	start := time.Now()
	out, err := yaz0.Encode(data)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("compression failed: %w", err)
	}

	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		return fmt.Errorf("cannot write %q: %w", outputFile, err)
	}

	ratio := 100 * float64(len(out)) / float64(len(data))
	speed := mibPerSecond(len(data), elapsed)
	fmt.Printf("Compressed: %s -> %s\n", inputFile, outputFile)
	fmt.Printf("  Original:   %d bytes\n", len(data))
	fmt.Printf("  Compressed: %d bytes (%.1f%%)\n", len(out), ratio)
	fmt.Printf("  Time:       %.3f sec (%.1f MB/s)\n", elapsed.Seconds(), speed)
	return nil
}

func doDecompress(inputFile, outputFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("cannot read %q: %w", inputFile, err)
	}

	if !yaz0.IsYaz0(data) {
		return fmt.Errorf("%q is not a valid Yaz0 file", inputFile)
	}

	start := time.Now()
	out, err := yaz0.Decode(data)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("decompression failed: %w", err)
	}

	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		return fmt.Errorf("cannot write %q: %w", outputFile, err)
	}

	speed := mibPerSecond(len(out), elapsed)
	fmt.Printf("Decompressed: %s -> %s\n", inputFile, outputFile)
	fmt.Printf("  Compressed:   %d bytes\n", len(data))
	fmt.Printf("  Decompressed: %d bytes\n", len(out))
	fmt.Printf("  Time:         %.3f sec (%.1f MB/s)\n", elapsed.Seconds(), speed)
	return nil
}

func mibPerSecond(n int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return (float64(n) / (1024 * 1024)) / elapsed.Seconds()
}

func printUsage(fs *flag.FlagSet) {
	prog := filepath.Base(programName)
	fmt.Fprintf(os.Stderr, "%s - Fast Yaz0 compression\n\n", prog)
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <input>\n\n", prog)
	fmt.Fprintln(os.Stderr, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nIf no mode is specified, the operation is auto-detected:")
	fmt.Fprintln(os.Stderr, "  - files with .yaz0, .szs, or .carc extension are decompressed")
	fmt.Fprintln(os.Stderr, "  - files starting with the \"Yaz0\" magic are decompressed")
	fmt.Fprintln(os.Stderr, "  - all other files are compressed")
	fmt.Fprintln(os.Stderr, "\nExamples:")
	fmt.Fprintf(os.Stderr, "  %s file.bin                 compress to file.bin.yaz0\n", prog)
	fmt.Fprintf(os.Stderr, "  %s -c file.bin -o out.szs   compress to out.szs\n", prog)
	fmt.Fprintf(os.Stderr, "  %s file.yaz0                decompress to file\n", prog)
	fmt.Fprintf(os.Stderr, "  %s -d data.szs -o raw.bin   decompress to raw.bin\n", prog)
}

func printVersion() {
	fmt.Printf("%s (github.com/aboood40091/fastyz)\n", programName)
}
