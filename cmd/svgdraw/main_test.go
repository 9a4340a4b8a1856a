package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maruel/ut"

	"svgdraw/internal/geom"
	"svgdraw/internal/svg"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()
	cfg, err := parseFlags([]string{"-o", "-", "-width", "640", "-height", "480", "-stroke", "red", "-dash", "3", "-fill", "none", "in.wkt"}, io.Discard)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, "-", cfg.out)
	ut.AssertEqual(t, "in.wkt", cfg.input)
	ut.AssertEqual(t, 640, cfg.opts.Width)
	ut.AssertEqual(t, 480, cfg.opts.Height)
	ut.AssertEqual(t, svg.Style{StrokeColor: "red", StrokeWidth: 1, DashPitch: 3, FillColor: "none"}, cfg.opts.PointStyle)

	cfg, err = parseFlags(nil, io.Discard)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, svg.DefaultFilename, cfg.out)
	ut.AssertEqual(t, "", cfg.input)

	_, err = parseFlags([]string{"a.wkt", "b.wkt"}, io.Discard)
	ut.AssertEqual(t, true, err != nil)
}

func TestDrawDemo(t *testing.T) {
	t.Parallel()
	cfg, err := parseFlags([]string{"-o", "-"}, io.Discard)
	ut.AssertEqual(t, nil, err)
	out := &bytes.Buffer{}
	ut.AssertEqual(t, nil, draw(cfg, out, io.Discard))
	s := out.String()
	ut.AssertEqual(t, 4, strings.Count(s, "<line "))
	for _, c := range []string{"red", "blue", "yellow", "green"} {
		ut.AssertEqual(t, true, strings.Contains(s, `stroke="`+c+`"`))
	}
	ut.AssertEqual(t, true, strings.HasSuffix(s, "</svg>\n"))
}

func TestDrawFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wkt")
	ut.AssertEqual(t, nil, os.WriteFile(in, []byte("POLYGON((0 0, 1 0, 1 1, 0 0))"), 0o644))
	out := filepath.Join(dir, "out.svg")
	cfg, err := parseFlags([]string{"-o", out, "-stroke", "blue", in}, io.Discard)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, nil, draw(cfg, io.Discard, io.Discard))
	b, err := os.ReadFile(out)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, 3, strings.Count(string(b), `stroke="blue"`))
}

func TestDrawErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := parseFlags([]string{"-o", "-", filepath.Join(dir, "in.shp")}, io.Discard)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, true, errors.Is(draw(cfg, io.Discard, io.Discard), geom.ErrUnsupported))

	cfg, err = parseFlags([]string{"-o", filepath.Join(dir, "missing", "out.svg")}, io.Discard)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, true, errors.Is(draw(cfg, io.Discard, io.Discard), os.ErrNotExist))
}
