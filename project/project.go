// Package project defines the abstract "map a source point to a
// destination point" contract shared by the camera model and the MLS
// similarity transform, so the grid package and the distortion dispatcher
// can drive either without knowing which one they hold.
package project

import "github.com/g3n/meshwarp/math32"

// Projector maps a single source-space point to destination space.
type Projector interface {
	Project(p math32.Vector2) math32.Vector2
}

// BulkProjector is an optional capability a Projector may also implement:
// a vectorized form for projecting many points at once. Grid construction
// prefers this when available and falls back to per-point Project calls
// otherwise.
type BulkProjector interface {
	Projector
	ProjectAll(pts []math32.Vector2) []math32.Vector2
}

// ProjectAll projects every point in pts, using p's bulk form when p
// implements BulkProjector and falling back to one Project call per point
// otherwise.
func ProjectAll(p Projector, pts []math32.Vector2) []math32.Vector2 {

	if bulk, ok := p.(BulkProjector); ok {
		return bulk.ProjectAll(pts)
	}
	out := make([]math32.Vector2, len(pts))
	for i, pt := range pts {
		out[i] = p.Project(pt)
	}
	return out
}

// Func adapts a plain function to the Projector interface.
type Func func(p math32.Vector2) math32.Vector2

func (f Func) Project(p math32.Vector2) math32.Vector2 { return f(p) }
