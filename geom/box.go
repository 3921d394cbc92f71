package geom

// Box is an axis-aligned pixel-space bounding box, inclusive of both edges:
// Height = Down - Up + 1, Width = Right - Left + 1.
type Box struct {
	Up    int
	Down  int
	Left  int
	Right int
}

// Height returns the inclusive pixel height of the box.
func (b Box) Height() int { return b.Down - b.Up + 1 }

// Width returns the inclusive pixel width of the box.
func (b Box) Width() int { return b.Right - b.Left + 1 }

// Shape returns (height, width).
func (b Box) Shape() (int, int) { return b.Height(), b.Width() }

// Clip clamps this box to lie within a (width, height) raster.
func (b Box) Clip(width, height int) Box {

	clip := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}
	return Box{
		Up:    clip(b.Up, height-1),
		Down:  clip(b.Down, height-1),
		Left:  clip(b.Left, width-1),
		Right: clip(b.Right, width-1),
	}
}
