package svg

// Style is the drawing state applied to every shape emitted after it is set.
type Style struct {
	StrokeColor string
	StrokeWidth float64
	// DashPitch is the dash length; 0 draws a solid stroke.
	DashPitch int
	FillColor string
}

// DefaultStyle is a solid black 1px stroke with black fill.
func DefaultStyle() Style {
	return Style{
		StrokeColor: "#000000",
		StrokeWidth: 1.0,
		DashPitch:   0,
		FillColor:   "#000000",
	}
}

// Dashed reports whether the stroke-dasharray attribute is emitted.
func (s Style) Dashed() bool { return s.DashPitch > 0 }
