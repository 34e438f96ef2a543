package gmath

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func close(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func vecClose(a, b Vec3) bool {
	return close(a.X, b.X) && close(a.Y, b.Y) && close(a.Z, b.Z)
}

func TestVec3Basics(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); !vecClose(got, Vec3{5, 7, 9}) {
		t.Errorf("Add: %v", got)
	}
	if got := b.Sub(a); !vecClose(got, Vec3{3, 3, 3}) {
		t.Errorf("Sub: %v", got)
	}
	if got := a.Dot(b); !close(got, 32) {
		t.Errorf("Dot: %v, want 32", got)
	}
	if got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)); !vecClose(got, Vec3{0, 0, 1}) {
		t.Errorf("Cross: %v, want {0 0 1}", got)
	}
	if got := NewVec3(3, 4, 0).Length(); !close(got, 5) {
		t.Errorf("Length: %v, want 5", got)
	}
	if got := NewVec3(10, 0, 0).Normalized(); !vecClose(got, Vec3{1, 0, 0}) {
		t.Errorf("Normalized: %v", got)
	}
	if got := Vec3Zero().Normalized(); !vecClose(got, Vec3{}) {
		t.Errorf("Normalizing zero vector: %v, want zero", got)
	}
	if got := a.Lerp(b, 0.5); !vecClose(got, Vec3{2.5, 3.5, 4.5}) {
		t.Errorf("Lerp: %v", got)
	}
}

func TestVec2Basics(t *testing.T) {
	a := NewVec2(3, 4)
	if got := a.Length(); !close(got, 5) {
		t.Errorf("Length: %v, want 5", got)
	}
	if got := a.Normalized().Length(); !close(got, 1) {
		t.Errorf("Normalized length: %v, want 1", got)
	}
	if got := a.Dot(NewVec2(1, 0)); !close(got, 3) {
		t.Errorf("Dot: %v, want 3", got)
	}
}

func vec4Close(a, b Vec4) bool {
	return close(a.X, b.X) && close(a.Y, b.Y) && close(a.Z, b.Z) && close(a.W, b.W)
}

func TestVec4Basics(t *testing.T) {
	a := NewVec4(1, 2, 3, 4)
	b := NewVec4(5, 6, 7, 8)

	if got := a.Add(b); !vec4Close(got, Vec4{6, 8, 10, 12}) {
		t.Errorf("Add: %v", got)
	}
	if got := b.Sub(a); !vec4Close(got, Vec4{4, 4, 4, 4}) {
		t.Errorf("Sub: %v", got)
	}
	if got := a.Dot(b); !close(got, 70) {
		t.Errorf("Dot: %v, want 70", got)
	}
	if got := NewVec4(2, 0, 0, 0).Normalized(); !vec4Close(got, Vec4{1, 0, 0, 0}) {
		t.Errorf("Normalized: %v", got)
	}
	if got := Vec4Zero().Normalized(); !vec4Close(got, Vec4{}) {
		t.Errorf("Normalizing zero vector: %v, want zero", got)
	}
	if got := a.Lerp(b, 0.5); !vec4Close(got, Vec4{3, 4, 5, 6}) {
		t.Errorf("Lerp: %v", got)
	}
	if got := NewVec4(2, 4, 6, 2).Homogenized(); !vec4Close(got, Vec4{1, 2, 3, 1}) {
		t.Errorf("Homogenized: %v", got)
	}
	if got := Vec4FromVec3(Vec3{1, 2, 3}, 1).XYZ(); !vecClose(got, Vec3{1, 2, 3}) {
		t.Errorf("XYZ round trip: %v", got)
	}
}

func TestMat4Vec4Transform(t *testing.T) {
	m := Mat4Translation(Vec3{10, 20, 30})

	// Points (w = 1) translate, directions (w = 0) do not.
	p := m.TransformVec4(Vec4{1, 2, 3, 1})
	if !vec4Close(p, Vec4{11, 22, 33, 1}) {
		t.Errorf("Point transform: %v", p)
	}
	d := m.TransformVec4(Vec4{1, 2, 3, 0})
	if !vec4Close(d, Vec4{1, 2, 3, 0}) {
		t.Errorf("Direction transform: %v", d)
	}
}

func TestMat4RowCol(t *testing.T) {
	m := Mat4Translation(Vec3{10, 20, 30})
	if got := m.Col(3); !vec4Close(got, Vec4{10, 20, 30, 1}) {
		t.Errorf("Col(3): %v", got)
	}
	if got := m.Row(0); !vec4Close(got, Vec4{1, 0, 0, 10}) {
		t.Errorf("Row(0): %v", got)
	}
	if got := m.Transposed().Col(0); !vec4Close(got, m.Row(0)) {
		t.Errorf("Transposed column: %v, want %v", got, m.Row(0))
	}
}

func TestQuatRotation(t *testing.T) {
	// Quarter turn around Y maps +X to -Z
	q := QuatFromAxisAngle(Vec3Up(), math.Pi/2)
	got := q.Rotate(Vec3{1, 0, 0})
	if !vecClose(got, Vec3{0, 0, -1}) {
		t.Errorf("Rotate: %v, want {0 0 -1}", got)
	}

	// Identity does nothing
	if got := QuatIdentity().Rotate(Vec3{1, 2, 3}); !vecClose(got, Vec3{1, 2, 3}) {
		t.Errorf("Identity rotate: %v", got)
	}

	// Composition equals sequential rotation
	half := QuatFromAxisAngle(Vec3Up(), math.Pi/4)
	composed := half.Mul(half)
	if got := composed.Rotate(Vec3{1, 0, 0}); !vecClose(got, Vec3{0, 0, -1}) {
		t.Errorf("Composed rotate: %v, want {0 0 -1}", got)
	}

	// Matrix expansion agrees with direct rotation
	if got := q.Mat4().TransformDirection(Vec3{1, 0, 0}); !vecClose(got, Vec3{0, 0, -1}) {
		t.Errorf("Mat4 rotate: %v, want {0 0 -1}", got)
	}
}

func TestQuatNormalized(t *testing.T) {
	q := Quat{W: 2, X: 0, Y: 0, Z: 0}.Normalized()
	if !close(q.Length(), 1) {
		t.Errorf("Normalized length: %v, want 1", q.Length())
	}
	if got := (Quat{}).Normalized(); got != QuatIdentity() {
		t.Errorf("Normalizing zero quat: %v, want identity", got)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4Translation(Vec3{1, 2, 3})
	if got := m.Mul(Mat4Identity()); got != m {
		t.Errorf("M * I != M")
	}
	if got := Mat4Identity().Mul(m); got != m {
		t.Errorf("I * M != M")
	}
}

func TestMat4TransformPoint(t *testing.T) {
	m := Mat4Translation(Vec3{10, 0, 0}).Mul(Mat4Scale(Vec3{2, 2, 2}))
	got := m.TransformPoint(Vec3{1, 1, 1})
	if !vecClose(got, Vec3{12, 2, 2}) {
		t.Errorf("TransformPoint: %v, want {12 2 2}", got)
	}
}

func TestTransformCompose(t *testing.T) {
	tr := NewTransform()
	tr.Position = Vec3{5, 0, 0}
	tr.Rotation = QuatFromAxisAngle(Vec3Up(), math.Pi/2)
	tr.Scale = Vec3{2, 2, 2}

	// Matrix and direct application must agree
	p := Vec3{1, 0, 0}
	direct := tr.Apply(p)
	viaMat := tr.Mat4().TransformPoint(p)
	if !vecClose(direct, viaMat) {
		t.Errorf("Apply %v != Mat4 %v", direct, viaMat)
	}
	if !vecClose(direct, Vec3{5, 0, -2}) {
		t.Errorf("Apply: %v, want {5 0 -2}", direct)
	}
}

func TestTransformCombine(t *testing.T) {
	parent := NewTransform()
	parent.Position = Vec3{10, 0, 0}

	child := NewTransform()
	child.Position = Vec3{0, 5, 0}

	world := parent.Combine(child)
	if !vecClose(world.Position, Vec3{10, 5, 0}) {
		t.Errorf("Combined position: %v, want {10 5 0}", world.Position)
	}

	// Combining must match applying both transforms in sequence
	p := Vec3{1, 1, 1}
	if got, want := world.Apply(p), parent.Apply(child.Apply(p)); !vecClose(got, want) {
		t.Errorf("Combined apply %v != sequential %v", got, want)
	}
}

func TestLookAtOrigin(t *testing.T) {
	view := Mat4LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3Up())
	// The target ends up on the negative Z axis in view space
	got := view.TransformPoint(Vec3{})
	if !vecClose(got, Vec3{0, 0, -5}) {
		t.Errorf("View of target: %v, want {0 0 -5}", got)
	}
}
