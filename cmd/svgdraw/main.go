// Command svgdraw writes geometry files (WKT, GeoJSON, CSV, KML) as SVG.
// Without an input file it draws a four colored square.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"svgdraw/internal/geom"
	"svgdraw/internal/plot"
	"svgdraw/internal/svg"
	"svgdraw/internal/tui"
)

type config struct {
	out         string
	input       string
	interactive bool
	opts        plot.Options
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("svgdraw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: svgdraw [flags] [file.wkt|.geojson|.json|.csv|.kml]\n")
		fs.PrintDefaults()
	}
	def := plot.DefaultOptions()
	style := svg.DefaultStyle()
	out := fs.String("o", svg.DefaultFilename, `Path to output SVG file. If set to "-" (hyphen), stdout is used.`)
	width := fs.Int("width", def.Width, "Canvas width in pixels.")
	height := fs.Int("height", def.Height, "Canvas height in pixels.")
	pad := fs.Float64("pad", def.Padding, "Padding around the data, as a fraction of its extent.")
	radius := fs.Float64("radius", def.PointRadius, "Point radius in pixels.")
	stroke := fs.String("stroke", style.StrokeColor, "Stroke color, named or #rrggbb.")
	strokeWidth := fs.Float64("stroke-width", style.StrokeWidth, "Stroke width.")
	dash := fs.Int("dash", style.DashPitch, "Dash pitch; 0 draws solid strokes.")
	fill := fs.String("fill", style.FillColor, "Fill color for points and polygons.")
	interactive := fs.Bool("tui", false, "Preview in the terminal; press e to export.")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return config{}, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	o := def
	o.Width, o.Height = *width, *height
	o.Padding = *pad
	o.PointRadius = *radius
	o.SetStyle(svg.Style{StrokeColor: *stroke, StrokeWidth: *strokeWidth, DashPitch: *dash, FillColor: *fill})
	return config{out: *out, input: fs.Arg(0), interactive: *interactive, opts: o}, nil
}

// draw writes the document described by cfg. Diagnostics go to stderr.
func draw(cfg config, stdout, stderr io.Writer) error {
	var d geom.Data
	if cfg.input != "" {
		var err error
		if d, err = geom.Load(cfg.input); err != nil {
			return err
		}
	}
	opts := append([]svg.Option{svg.WithLogger(log.New(stderr, "svgdraw: ", 0))}, cfg.opts.CanvasOptions...)

	var c *svg.Canvas
	if cfg.out == "-" {
		c = svg.New(stdout, cfg.opts.Width, cfg.opts.Height, opts...)
	} else {
		var err error
		if c, err = svg.Create(cfg.out, cfg.opts.Width, cfg.opts.Height, opts...); err != nil {
			return err
		}
	}
	defer c.Close()

	if cfg.input == "" {
		c.SetStyle(cfg.opts.PointStyle)
		plot.Demo(c)
	} else {
		plot.Draw(c, d, cfg.opts)
	}
	return c.Close()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("svgdraw: ")
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	if cfg.interactive {
		var m tea.Model
		if cfg.input != "" {
			m = tui.NewWithPath(cfg.input, cfg.opts, cfg.out)
		} else {
			m = tui.New(cfg.opts, cfg.out)
		}
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := draw(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
