package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/plankworks/plank/pkg/outline"
	"github.com/plankworks/plank/pkg/quote"
	"github.com/plankworks/plank/pkg/resolve"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	svg    string // SVG preview output path
	output string // JSON output path (stdout if empty)
	raw    bool   // print the parsed paths instead of the summary
}

// newParseCmd creates the parse command. It reads a DXF drawing, extracts
// the outer contour, and reports the bounding box a custom tabletop would
// lock to.
func newParseCmd() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <file.dxf>",
		Short: "Extract a tabletop outline from a DXF drawing",
		Long: `Extract a tabletop outline from a DXF drawing.

The drawing's polylines and lines are collected and their bounding box
becomes the tabletop's length and width, in millimetres.

Examples:
  plank parse top.dxf                # summary to stdout
  plank parse top.dxf --svg top.svg  # also write an SVG preview
  plank parse top.dxf --json -o out.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.svg, "svg", "", "write an SVG preview to this path")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.raw, "json", false, "emit the parse result as JSON")

	return cmd
}

// parseReport is the JSON shape of a parse result.
type parseReport struct {
	File     string          `json:"file"`
	Paths    int             `json:"paths"`
	Bounds   *outline.Bounds `json:"bounds,omitempty"`
	LengthMm int             `json:"lengthMm"`
	WidthMm  int             `json:"widthMm"`
}

func runParse(cmd *cobra.Command, opts *parseOpts, path string) error {
	logger := loggerFromContext(cmd.Context())

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	runner := quote.NewRunner(nil, nil, logger)
	res, err := runner.Import(resolve.NewState(), filepath.Base(path), data)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d paths", len(res.Outline.Paths)))

	if opts.svg != "" {
		if err := os.WriteFile(opts.svg, []byte(res.Outline.SVG()), 0o644); err != nil {
			return err
		}
		printFile(opts.svg)
	}

	report := parseReport{
		File:     filepath.Base(path),
		Paths:    len(res.Outline.Paths),
		Bounds:   res.Outline.Bounds,
		LengthMm: res.State.Config.LengthMm,
		WidthMm:  res.State.Config.WidthMm,
	}

	if opts.raw {
		return writeJSONReport(report, opts.output)
	}

	printSuccess("Outline %d × %d mm", report.LengthMm, report.WidthMm)
	printDetail("%d path(s) in %s", report.Paths, report.File)
	return nil
}

// writeJSONReport serializes v as indented JSON to path (or stdout).
func writeJSONReport(v any, path string) error {
	var out io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
