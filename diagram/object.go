// Package diagram models the drawable shapes: the shared anchored-geometry
// base, the Box and Line variants, their rasterization onto a canvas, and the
// tagged-record JSON codec that persists them.
package diagram

import (
	"tad/canvas"
	"tad/geometry"
)

// Shape is the anchored geometry every diagram object carries. Position is
// the corner the user anchored the object at; Size may have negative
// components, meaning the object grows toward negative x or y. The normalized
// accessors fold the sign away and are always well-ordered.
//
// Corners are derived on demand, never stored.
type Shape struct {
	Position geometry.Point
	Size     geometry.Size
}

// Bounds returns the shape itself, giving Object implementations a promoted
// accessor through embedding.
func (s *Shape) Bounds() *Shape { return s }

// NormalizedPosition returns the true top-left corner: the position shifted
// by any negative size component.
func (s *Shape) NormalizedPosition() geometry.Point {
	p := s.Position
	if s.Size.W < 0 {
		p.X += s.Size.W
	}
	if s.Size.H < 0 {
		p.Y += s.Size.H
	}
	return p
}

// NormalizedSize returns the size with both components made non-negative.
func (s *Shape) NormalizedSize() geometry.Size {
	return s.Size.Abs()
}

// TopLeft is the anchor corner as drawn by the user.
func (s *Shape) TopLeft() geometry.Point { return s.Position }

func (s *Shape) TopRight() geometry.Point {
	return geometry.Point{X: s.Position.X + s.Size.W, Y: s.Position.Y}
}

func (s *Shape) BottomLeft() geometry.Point {
	return geometry.Point{X: s.Position.X, Y: s.Position.Y + s.Size.H}
}

func (s *Shape) BottomRight() geometry.Point {
	return s.Position.Add(s.Size)
}

// NormalizedTopLeft through NormalizedBottomRight are the four corners of the
// sign-folded rectangle; NormalizedTopLeft is component-wise never greater
// than NormalizedBottomRight, whatever the sign of Size.
func (s *Shape) NormalizedTopLeft() geometry.Point { return s.NormalizedPosition() }

func (s *Shape) NormalizedTopRight() geometry.Point {
	p := s.NormalizedPosition()
	return geometry.Point{X: p.X + s.NormalizedSize().W, Y: p.Y}
}

func (s *Shape) NormalizedBottomLeft() geometry.Point {
	p := s.NormalizedPosition()
	return geometry.Point{X: p.X, Y: p.Y + s.NormalizedSize().H}
}

func (s *Shape) NormalizedBottomRight() geometry.Point {
	return s.NormalizedPosition().Add(s.NormalizedSize())
}

// Object is a drawable diagram shape. The editor owns an ordered list of
// these; later objects draw on top of earlier ones.
type Object interface {
	// Bounds exposes the mutable anchored geometry.
	Bounds() *Shape

	// Draw rasterizes the object onto the canvas.
	Draw(cv canvas.Canvas)
}

// Toggler is the optional flip-main-attribute capability (border visibility
// for boxes, starting orientation for lines). Objects without it are a
// silent no-op for the toggle command.
type Toggler interface {
	Toggle()
}

// TextEditor is the optional in-place text editing capability. Only Box
// implements it; invoking edit on anything else is a silent no-op.
type TextEditor interface {
	Edit(cv canvas.Canvas)
}
