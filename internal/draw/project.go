package draw

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NearPlane is the closest depth, in world units, that still projects.
const NearPlane = 0.5

// Projector maps world points onto a canvas through a pinhole camera that
// looks down its local -Z axis with +Y up.
type Projector struct {
	Eye         mgl64.Vec3
	Orientation mgl64.Quat // Camera-to-world rotation
	FOV         float64    // Vertical field of view, radians
	Width       float64    // Canvas pixels
	Height      float64    // Canvas pixels

	inverse mgl64.Quat
	focal   float64
}

// NewProjector prepares a projector for a canvas of width x height pixels.
// Half-block pixels are close to square, so no aspect correction is applied.
func NewProjector(eye mgl64.Vec3, orientation mgl64.Quat, fov float64, width, height int) Projector {
	return Projector{
		Eye:         eye,
		Orientation: orientation,
		FOV:         fov,
		Width:       float64(width),
		Height:      float64(height),
		inverse:     orientation.Normalize().Conjugate(),
		focal:       float64(height) / 2 / math.Tan(fov/2),
	}
}

// ToCamera returns p in camera space. Depth along the view axis is -Z.
func (pr Projector) ToCamera(p mgl64.Vec3) mgl64.Vec3 {
	return pr.inverse.Rotate(p.Sub(pr.Eye))
}

// Project returns the canvas position and view depth of p. ok is false for
// points behind the near plane.
func (pr Projector) Project(p mgl64.Vec3) (pt Point, depth float64, ok bool) {
	local := pr.ToCamera(p)
	depth = -local.Z()
	if depth < NearPlane {
		return Point{}, depth, false
	}
	return pr.projectLocal(local, depth), depth, true
}

// ProjectDirection projects a direction at infinity (stars).
func (pr Projector) ProjectDirection(dir mgl64.Vec3) (Point, bool) {
	local := pr.inverse.Rotate(dir)
	depth := -local.Z()
	if depth <= 0 {
		return Point{}, false
	}
	return pr.projectLocal(local, depth), true
}

func (pr Projector) projectLocal(local mgl64.Vec3, depth float64) Point {
	return Point{
		X: pr.Width/2 + local.X()*pr.focal/depth,
		Y: pr.Height/2 - local.Y()*pr.focal/depth,
	}
}

// Scale returns the on-screen size of a length at the given depth.
func (pr Projector) Scale(length, depth float64) float64 {
	if depth < NearPlane {
		depth = NearPlane
	}
	return length * pr.focal / depth
}

// Visible reports whether pt lies inside the canvas, with margin pixels of slack.
func (pr Projector) Visible(pt Point, margin float64) bool {
	return pt.X >= -margin && pt.X <= pr.Width+margin && pt.Y >= -margin && pt.Y <= pr.Height+margin
}

// LookRotation returns the camera-to-world rotation of a camera at eye
// looking at target. up need not be perpendicular to the view direction.
func LookRotation(eye, target, up mgl64.Vec3) mgl64.Quat {
	f := target.Sub(eye)
	if f.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	f = f.Normalize()
	r := f.Cross(up)
	if r.Len() < 1e-9 {
		// up is parallel to the view direction; pick any perpendicular.
		r = f.Cross(mgl64.Vec3{1, 0, 0})
		if r.Len() < 1e-9 {
			r = f.Cross(mgl64.Vec3{0, 0, 1})
		}
	}
	r = r.Normalize()
	u := r.Cross(f)
	m := mgl64.Mat3FromCols(r, u, f.Mul(-1))
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}
