package main

// Print the container identifier and dimensions of JPEG files.

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/garyhouston/jpeginfo"
)

const (
	flagJSON    = "json"
	flagVerbose = "verbose"
	flagJobs    = "jobs"
	flagPolicy  = "policy"
	flagDebug   = "debug"
	flagNoColor = "no-color"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	var logger *zap.SugaredLogger

	return &cli.App{
		Name:      "jpeginfoprint",
		Usage:     "print the identifier and dimensions of JPEG files",
		ArgsUsage: "<FILENAME.jpeg>...",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagJSON,
				Usage: "print one JSON object per file",
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "also print precision, components and Exif/MPF details",
			},
			&cli.IntFlag{
				Name:    flagJobs,
				Aliases: []string{"j"},
				Value:   1,
				Usage:   "number of files to scan in parallel",
			},
			&cli.StringFlag{
				Name:  flagPolicy,
				Value: jpeginfo.LastByKind.String(),
				Usage: "frame header to report when a file has several (last-kind or first-seen)",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  flagNoColor,
				Usage: "disable colored output",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagNoColor) {
				color.NoColor = true
			}
			if !c.Bool(flagDebug) {
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
		After: func(c *cli.Context) error {
			if logger != nil {
				//nolint:errcheck
				logger.Sync()
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("please provide a JPEG image as argument")
			}
			jobs := c.Int(flagJobs)
			if jobs < 1 {
				return errors.Errorf("--%s must be at least 1, got %d", flagJobs, jobs)
			}
			policy, err := jpeginfo.ParsePolicy(c.String(flagPolicy))
			if err != nil {
				return err
			}

			results := scanFiles(c.Context, logger, c.Args().Slice(), jobs, jpeginfo.Options{Policy: policy})
			p := printer{stdout: stdout, stderr: stderr, verbose: c.Bool(flagVerbose)}
			if c.Bool(flagJSON) {
				err = p.printJSON(results)
			} else {
				p.printText(results)
			}
			if err != nil {
				return err
			}

			var failed error
			for _, r := range results {
				failed = multierr.Append(failed, r.err)
			}
			if n := len(multierr.Errors(failed)); n > 0 {
				return errors.Wrapf(failed, "%d of %d files failed", n, len(results))
			}
			return nil
		},
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
