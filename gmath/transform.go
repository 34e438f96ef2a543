package gmath

// Transform is a position/rotation/scale triple. It composes into a Mat4 as
// translation * rotation * scale, so scale applies first.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

func NewTransform() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    Vec3One(),
	}
}

func (t Transform) Mat4() Mat4 {
	return Mat4Translation(t.Position).
		Mul(t.Rotation.Mat4()).
		Mul(Mat4Scale(t.Scale))
}

// Apply transforms a local-space point into the transform's space.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Rotation.Rotate(p.Mul(t.Scale)).Add(t.Position)
}

// Combine composes a child transform under a parent: the result maps the
// child's local space through the child, then the parent.
func (t Transform) Combine(child Transform) Transform {
	return Transform{
		Position: t.Apply(child.Position),
		Rotation: t.Rotation.Mul(child.Rotation).Normalized(),
		Scale:    t.Scale.Mul(child.Scale),
	}
}

func (t Transform) Forward() Vec3 {
	return t.Rotation.Rotate(Vec3{0, 0, -1})
}

func (t Transform) Right() Vec3 {
	return t.Rotation.Rotate(Vec3{1, 0, 0})
}

func (t Transform) Up() Vec3 {
	return t.Rotation.Rotate(Vec3{0, 1, 0})
}
