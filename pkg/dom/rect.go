package dom

// Rect is a rectangle in screen cells. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }
