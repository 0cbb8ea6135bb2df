package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 3 (indices 12, 13, 14)
	if m.At(0, 3) != 5 || m.At(1, 3) != 10 || m.At(2, 3) != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformVec3(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"shear x", ShearX(0.5, 2), Vec3{2, 0, 0}, Vec3{2, 1, 4}},
		{"shear y", ShearY(0.5, 2), Vec3{0, 2, 0}, Vec3{1, 2, 4}},
		{"shear z", ShearZ(0.5, 2), Vec3{0, 0, 2}, Vec3{1, 4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformVec3(tt.in)
			if got != tt.want {
				t.Errorf("TransformVec3: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMulOrder(t *testing.T) {
	// S * T applies T first.
	m := Scale(2, 2, 2).Mul(Translate(1, 0, 0))
	got := m.TransformVec3(Vec3{})
	if got != (Vec3{2, 0, 0}) {
		t.Errorf("Scale*Translate on origin: got %v, want (2, 0, 0)", got)
	}
}

func TestRotateAxisX90(t *testing.T) {
	m := RotateAxis([3]float32{1, 0, 0}, Radians(90))
	result := m.TransformVec3(Vec3{0, 1, 0})

	// Right-handed: +Y rotates onto +Z
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z-1) > 0.001 {
		t.Errorf("RotateAxis X 90: got %v, want (0, 0, 1)", result)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-math.Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(45), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	// The eye maps to the view-space origin.
	got := m.TransformVec3(eye)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z) > 0.001 {
		t.Errorf("LookAt(eye) = %v, want origin", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestProjectKeepsW(t *testing.T) {
	m := Perspective(Radians(90), 1, 1, 10)
	// A point 5 units in front of the camera has clip w = 5.
	_, _, _, w := m.Project(Vec3{0, 0, -5})
	if abs(w-5) > 1e-5 {
		t.Errorf("Project w = %v, want 5", w)
	}
	x, y, z, w := Identity().Project(Vec3{1, 2, 3})
	if x != 1 || y != 2 || z != 3 || w != 1 {
		t.Errorf("identity Project = (%v, %v, %v, %v)", x, y, z, w)
	}
}
