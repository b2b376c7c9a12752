package model

// Point is an integer 2D coordinate in bin-local units.
type Point struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
}

// Rect is an axis-aligned rectangle. X and Y are the top-left corner,
// Width and Height the extent. It is a plain value; every method is a pure
// function of the four fields.
type Rect struct {
	X      int `json:"x" yaml:"x" toml:"x"`
	Y      int `json:"y" yaml:"y" toml:"y"`
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Area returns Width*Height.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rectangle has a non-positive width or height.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Corners returns the four corners as top-left, top-right, bottom-left, bottom-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// Intersects returns true if the two rectangles share a region of positive
// area. Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contains returns true if o lies entirely within r. A rectangle contains itself.
func (r Rect) Contains(o Rect) bool {
	return r.X <= o.X && r.Y <= o.Y &&
		r.Right() >= o.Right() && r.Bottom() >= o.Bottom()
}

// Intersection returns the overlapping region of r and o. The result is
// Empty when the rectangles do not intersect.
func (r Rect) Intersection(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	w := min(r.Right(), o.Right()) - x
	h := min(r.Bottom(), o.Bottom()) - y
	if w <= 0 || h <= 0 {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// OverlapArea returns the area shared by r and o, or 0.
func (r Rect) OverlapArea(o Rect) int {
	return r.Intersection(o).Area()
}

// Translate returns r shifted by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
