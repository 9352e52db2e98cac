// Package geom provides the small amount of vector and rectangle math the
// engine needs. Coordinates follow the simulation convention: X/Y span the
// ground plane, Z points up.
package geom

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Up is the world up axis.
var Up = Vec3{Z: 1}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// LenSq returns the squared length of v.
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

// Normalized returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Rect is an axis-aligned rectangle on the ground plane.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectAt returns the rectangle centered at (cx, cy) with the given half extents.
func RectAt(cx, cy, halfW, halfH float64) Rect {
	return Rect{
		MinX: cx - halfW,
		MinY: cy - halfH,
		MaxX: cx + halfW,
		MaxY: cy + halfH,
	}
}

// Expand returns the rectangle grown by r on all sides.
func (r Rect) Expand(by float64) Rect {
	return Rect{
		MinX: r.MinX - by,
		MinY: r.MinY - by,
		MaxX: r.MaxX + by,
		MaxY: r.MaxY + by,
	}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x > r.MinX && x < r.MaxX && y > r.MinY && y < r.MaxY
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX && r.MinY < o.MaxY && r.MaxY > o.MinY
}

// Center returns the rectangle center.
func (r Rect) Center() (float64, float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}
