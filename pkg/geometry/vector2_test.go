package geometry

import (
	"math"
	"testing"
)

func TestVector2Add(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, 5)
	result := v1.Add(v2)

	expected := NewVector2(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Sub(t *testing.T) {
	v1 := NewVector2(5, 7)
	v2 := NewVector2(1, 2)
	result := v1.Sub(v2)

	expected := NewVector2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Neg(t *testing.T) {
	v := NewVector2(3, -4)
	result := v.Neg()

	expected := NewVector2(-3, 4)
	if result != expected {
		t.Errorf("Neg failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Length(t *testing.T) {
	v := NewVector2(3, 4)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector2Distance(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(3, 4)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector2Dot(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(3, 4)
	dot := v1.Dot(v2)

	expected := 11.0
	if math.Abs(dot-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, dot)
	}
}

func TestVector2Normalize(t *testing.T) {
	v := NewVector2(3, 4)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector2NormalizeZero(t *testing.T) {
	v := NewVector2(0, 0)
	normalized := v.Normalize()

	expected := Vector2{}
	if normalized != expected {
		t.Errorf("Normalize of zero vector failed: expected %v, got %v", expected, normalized)
	}
}

func TestVector2MinMax(t *testing.T) {
	v1 := NewVector2(1, 5)
	v2 := NewVector2(3, 2)

	expectedMin := NewVector2(1, 2)
	expectedMax := NewVector2(3, 5)

	if v1.Min(v2) != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, v1.Min(v2))
	}
	if v1.Max(v2) != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, v1.Max(v2))
	}
}
