package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"svgdraw/internal/geom"
	"svgdraw/internal/plot"
	"svgdraw/internal/svg"
)

// Palettes cycled through by the style keys.
var (
	strokeColors = []string{"#000000", "red", "blue", "green", "orange", "#7C3AED"}
	fillColors   = []string{"none", "#000000", "red", "blue", "green", "orange"}
	strokeWidths = []float64{1, 2, 4, 0.5}
	dashPitches  = []int{0, 2, 5, 10}
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	data geom.Data

	// export settings; style is the drawing state applied to every layer
	opts    plot.Options
	style   svg.Style
	outPath string

	// last rendered map size (for hover)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// drawing state table
	showState bool
	tbl       table.Model

	// hover state
	hoverHasGeo bool
	hoverX      float64
	hoverY      float64
}

// New returns a previewer that exports with o to outPath. Stdout belongs
// to the terminal UI, so "-" exports to svg.DefaultFilename.
func New(o plot.Options, outPath string) Model {
	if outPath == "" || outPath == "-" {
		outPath = svg.DefaultFilename
	}
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "svgdraw ready",
		opts:        o,
		style:       o.PointStyle,
		outPath:     outPath,
	}
	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(
		table.WithColumns([]table.Column{{Title: "setting", Width: 10}, {Title: "value", Width: 40}}),
		table.WithHeight(8),
	)
	m.refreshState()
	m.refreshDir()
	return m
}

// NewWithPath preloads a geometry file at launch.
func NewWithPath(path string, o plot.Options, outPath string) Model {
	m := New(o, outPath)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// exportOptions are the options used for both the preview and the export.
func (m Model) exportOptions() plot.Options {
	o := m.opts
	o.SetStyle(m.style)
	o.CanvasOptions = append([]svg.Option{svg.WithLogger(nil)}, o.CanvasOptions...)
	return o
}

func (m *Model) setData(d geom.Data) {
	m.data = d
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.refreshState()
}

func next[T comparable](vals []T, cur T) T {
	for i, v := range vals {
		if v == cur {
			return vals[(i+1)%len(vals)]
		}
	}
	return vals[0]
}
