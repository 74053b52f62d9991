package entity

import "math"

// TileSide is the side length of a level tile in world units
const TileSide = 1.0

// Vec2 is a 2D vector in world units (y points up)
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Neg returns -v
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Clamp restricts each component of v to [lo, hi]
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y)}
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Sign returns -1, 0 or 1 following the sign of x
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Collides reports whether two center/extent boxes overlap.
// Touching edges are not an overlap, so a body can rest flush against a tile.
func Collides(posA, extA, posB, extB Vec2) bool {
	return math.Abs(posA.X-posB.X) < (extA.X+extB.X)/2 &&
		math.Abs(posA.Y-posB.Y) < (extA.Y+extB.Y)/2
}

// Box is an axis-aligned box given by its center and full extent
type Box struct {
	Center Vec2
	Extent Vec2
}

// Overlaps reports whether b and o overlap (strictly)
func (b Box) Overlaps(o Box) bool {
	return Collides(b.Center, b.Extent, o.Center, o.Extent)
}

// Min returns the bottom-left corner
func (b Box) Min() Vec2 { return b.Center.Sub(b.Extent.Scale(0.5)) }

// Max returns the top-right corner
func (b Box) Max() Vec2 { return b.Center.Add(b.Extent.Scale(0.5)) }

// Tile is a static, solid square of the level
type Tile struct {
	Position Vec2
	Extent   Vec2
}

// Box returns the tile's bounding box
func (t Tile) Box() Box { return Box{Center: t.Position, Extent: t.Extent} }

// Level is the immutable result of loading a level: geometry, spawn points and bounds.
// Sessions copy the spawn data into fresh entities and never mutate it.
type Level struct {
	Name        string
	Tiles       []Tile
	EnemySpawns []Vec2
	BossSpawn   Vec2
	PlayerSpawn Vec2
	TrapX       float64
	Width       int
	Height      int
}

// MaxBounds returns the top-right corner of the world
func (l *Level) MaxBounds() Vec2 {
	return Vec2{float64(l.Width) / 2, float64(l.Height) / 2}
}

// MinBounds returns the bottom-left corner of the world
func (l *Level) MinBounds() Vec2 {
	return l.MaxBounds().Neg()
}
