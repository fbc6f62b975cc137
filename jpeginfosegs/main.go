package main

// Print JPEG markers, their offsets and segment lengths.

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	jinfo "github.com/garyhouston/jpeginfo"
)

// printSegments writes one line per marker found in buf. Bytes between
// markers are summarised as image data, less the 0x00 of each stuffed
// 0xFF 0x00 pair; RSTn markers are counted and don't end a run.
func printSegments(w io.Writer, buf []byte, entries []jinfo.Entry, withOffsets bool) {
	end := 0
	dataCount := 0
	resetCount := 0
	for _, e := range entries {
		if e.Offset > end {
			gap := buf[end:e.Offset]
			dataCount += len(gap) - bytes.Count(gap, stuffed)
		}
		end = e.Offset + e.Size()
		if e.Marker.Code >= jinfo.RST0 && e.Marker.Code <= jinfo.RST0+7 {
			resetCount++
			continue
		}
		if dataCount > 0 || resetCount > 0 {
			fmt.Fprintf(w, "%d bytes of image data", dataCount)
			if resetCount > 0 {
				fmt.Fprintf(w, " and %d reset markers", resetCount)
			}
			fmt.Fprintln(w)
			dataCount, resetCount = 0, 0
		}
		if withOffsets {
			fmt.Fprintf(w, "%8d ", e.Offset)
		}
		if e.Length == 0 {
			fmt.Fprintln(w, e.Marker.Code.Name())
			continue
		}
		fmt.Fprintf(w, "%s, %d bytes\n", e.Marker.Code.Name(), int(e.Length)-2)
	}
}

// Escaped 0xFF in scan data.
var stuffed = []byte{0xFF, 0x00}

func newApp(stdout, stderr io.Writer) *cli.App {
	var logger *zap.SugaredLogger

	return &cli.App{
		Name:      "jpeginfosegs",
		Usage:     "list the markers of a JPEG file",
		ArgsUsage: "<file>",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "offsets",
				Usage: "prefix each marker with its byte offset",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if !c.Bool("debug") {
				logger = zap.NewNop().Sugar()
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "creating logger")
			}
			logger = l.Sugar()
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.Errorf("usage: %s file", c.App.Name)
			}
			path := c.Args().First()
			buf, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrap(err, "reading input")
			}
			entries, err := jinfo.Segments(buf)
			logger.Debugw("walked markers", "file", path, "bytes", len(buf), "markers", len(entries))
			printSegments(stdout, buf, entries, c.Bool("offsets"))
			return errors.Wrap(err, path)
		},
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
