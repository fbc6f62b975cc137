package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/garyhouston/jpeginfo"
)

// result is the outcome for one input path. openFailed is set when the
// file could not be read at all.
type result struct {
	path       string
	report     jpeginfo.Report
	err        error
	openFailed bool
}

// scanFiles scans paths with at most jobs files in flight. Results are
// returned in the order of paths; a failing file does not stop the rest.
func scanFiles(ctx context.Context, logger *zap.SugaredLogger, paths []string, jobs int, opts jpeginfo.Options) []result {
	results := make([]result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = result{path: path, err: err}
				return nil
			}
			results[i] = scanFile(logger, path, opts)
			return nil
		})
	}
	//nolint:errcheck
	g.Wait()
	return results
}

func scanFile(logger *zap.SugaredLogger, path string, opts jpeginfo.Options) result {
	buf, err := os.ReadFile(path)
	if err != nil {
		logger.Debugw("read failed", "file", path, "error", err)
		return result{path: path, err: errors.Wrapf(err, "reading %s", path), openFailed: true}
	}
	logger.Debugw("read file", "file", path, "bytes", len(buf))
	report, err := jpeginfo.ScanWithOptions(buf, opts)
	if err != nil {
		logger.Debugw("scan failed", "file", path, "error", err)
		return result{path: path, err: errors.Wrapf(err, "scanning %s", path)}
	}
	logger.Debugw("scanned file", "file", path, "identifier", report.Identifier,
		"frame", report.FrameCode.Name(), "width", report.Frame.Width, "height", report.Frame.Height)
	return result{path: path, report: report}
}

type printer struct {
	stdout, stderr io.Writer
	verbose        bool
}

var (
	idColor  = color.New(color.FgCyan)
	errColor = color.New(color.FgRed)
)

func (p printer) printText(results []result) {
	for _, r := range results {
		switch {
		case r.openFailed:
			errColor.Fprintf(p.stderr, "could not open %s\n", r.path)
		case r.err != nil:
			errColor.Fprintf(p.stderr, "%v\n", r.err)
		default:
			fmt.Fprintf(p.stdout, "File (%s) %s %dx%d", filepath.Base(r.path),
				idColor.Sprint(r.report.Identifier), r.report.Frame.Width, r.report.Frame.Height)
			if p.verbose {
				fmt.Fprint(p.stdout, details(r.report))
			}
			fmt.Fprintln(p.stdout)
		}
	}
}

func details(r jpeginfo.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, ", %s, %d-bit, %d components", r.FrameCode.Name(), r.Frame.Precision, r.Frame.Components)
	if r.Exif != nil {
		if r.Exif.Make != "" || r.Exif.Model != "" {
			fmt.Fprintf(&b, ", camera %q", strings.TrimSpace(r.Exif.Make+" "+r.Exif.Model))
		}
		if r.Exif.Orientation != 0 {
			fmt.Fprintf(&b, ", orientation %d", r.Exif.Orientation)
		}
	}
	if r.MPFImages > 0 {
		fmt.Fprintf(&b, ", %d MPF images", r.MPFImages)
	}
	return b.String()
}

type jsonLine struct {
	File   string           `json:"file"`
	Frame  string           `json:"frameMarker,omitempty"`
	Report *jpeginfo.Report `json:"report,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func (p printer) printJSON(results []result) error {
	enc := json.NewEncoder(p.stdout)
	for _, r := range results {
		line := jsonLine{File: r.path}
		if r.err != nil {
			line.Error = r.err.Error()
		} else {
			report := r.report
			line.Report = &report
			line.Frame = report.FrameCode.Name()
		}
		if err := enc.Encode(line); err != nil {
			return errors.Wrap(err, "writing JSON")
		}
	}
	return nil
}
