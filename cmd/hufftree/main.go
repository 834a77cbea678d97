package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/icza/bitio"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/hufftree"
)

const progName = "hufftree"

const usageMessageRaw = `
Usage: hufftree -c|-d [-text] INPUT OUTPUT
Options:
  -c	Compress INPUT into OUTPUT.
  -d	Decompress INPUT into OUTPUT.
  -text
	Keep the tree header in a separate human-readable file next to
	the payload (OUTPUT.code when compressing, INPUT.code when
	decompressing) instead of packing it in front of the payload
	bits.  Both sides must agree on this option.
  -debug
	Log at DEBUG level.
`

// The alphabet is raw bytes; one extra symbol id marks end of message.
const (
	alphabetSize = 256
	eofSymbol    = hufftree.Symbol(alphabetSize)
)

const codeSuffix = ".code"

var log = logging.MustGetLogger(progName)

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

func startLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:6s} | %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func compress(inPath, outPath string, textHeader bool) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	counts, err := hufftree.CountFrequencies(bytes.NewReader(data), alphabetSize)
	if err != nil {
		return err
	}
	tree := hufftree.NewFromFrequencies(counts)
	log.Debugf("built %s", tree)

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	buffered := bufio.NewWriter(outFile)
	w := bitio.NewWriter(buffered)

	if textHeader {
		if err := writeTextHeader(tree, outPath+codeSuffix); err != nil {
			return err
		}
	} else {
		if err := tree.WriteHeader(w); err != nil {
			return err
		}
	}

	if err := tree.Encode(bytes.NewReader(data), w, eofSymbol); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if err := buffered.Flush(); err != nil {
		return err
	}

	log.Infof("compressed %s (%d bytes) into %s", inPath, len(data), outPath)
	return nil
}

func decompress(inPath, outPath string, textHeader bool) error {
	inFile, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer inFile.Close()

	r := bitio.NewReader(bufio.NewReader(inFile))

	var tree *hufftree.Tree
	if textHeader {
		tree, err = readTextHeader(inPath + codeSuffix)
	} else {
		tree, err = hufftree.ReadHeader(r)
	}
	if err != nil {
		return err
	}
	log.Debugf("rebuilt %s", tree)

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	buffered := bufio.NewWriter(outFile)
	if err := tree.Decode(r, buffered, eofSymbol); err != nil {
		return err
	}
	if err := buffered.Flush(); err != nil {
		return err
	}

	log.Infof("decompressed %s into %s", inPath, outPath)
	return nil
}

func writeTextHeader(tree *hufftree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	buffered := bufio.NewWriter(f)
	if err := tree.WriteText(buffered); err != nil {
		f.Close()
		return err
	}
	if err := buffered.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readTextHeader(path string) (*hufftree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return hufftree.ParseText(f)
}

func main() {
	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(io.Discard)

	// Usage strings are hardcoded above.

	var doCompress, doDecompress, textHeader, debugLogging bool
	ourFlags.BoolVar(&doCompress, "c", false, "")
	ourFlags.BoolVar(&doDecompress, "d", false, "")
	ourFlags.BoolVar(&textHeader, "text", false, "")
	ourFlags.BoolVar(&debugLogging, "debug", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	startLogging(debugLogging)

	if doCompress == doDecompress {
		usageErrorf("exactly one of -c and -d is required")
	}
	if ourFlags.NArg() != 2 {
		usageErrorf("expected INPUT and OUTPUT arguments")
	}
	inPath, outPath := ourFlags.Arg(0), ourFlags.Arg(1)

	var err error
	if doCompress {
		err = compress(inPath, outPath, textHeader)
	} else {
		err = decompress(inPath, outPath, textHeader)
	}
	if err != nil {
		exitError(err)
	}
}
