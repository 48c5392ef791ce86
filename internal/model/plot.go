package model

// Point is a coordinate in plot space.
type Point struct {
	X, Y float64
}

// Plot is the drawable form of one series.
type Plot struct {
	Name   string
	Min    float64
	Max    float64
	Points []Point
	// Path is SVG path data ("M x y L x y ...").
	Path string
	// Placeholder is set for series without samples.
	Placeholder bool
}
