package geom

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"inside", 2, 1, 5, 2},
		{"below", 0.01, 0.1, 5, 0.1},
		{"above", 100, 0.1, 5, 5},
		{"at low bound", 1, 1, 5, 1},
		{"at high bound", 5, 1, 5, 5},
		{"negative range", -3, -10, -1, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", R(0, 0, 10, 10), R(20, 20, 10, 10), R(0, 0, 30, 30)},
		{"overlapping", R(0, 0, 10, 10), R(5, 5, 10, 10), R(0, 0, 15, 15)},
		{"contained", R(0, 0, 20, 20), R(5, 5, 5, 5), R(0, 0, 20, 20)},
		{"empty left", Rect{}, R(3, 4, 5, 6), R(3, 4, 5, 6)},
		{"empty right", R(3, 4, 5, 6), Rect{}, R(3, 4, 5, 6)},
		{"negative origin", R(-10, -10, 5, 5), R(0, 0, 5, 5), R(-10, -10, 15, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("%+v.Union(%+v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectCenterContains(t *testing.T) {
	r := R(10, 20, 30, 40)
	if got, want := r.Center(), V2(25, 40); got != want {
		t.Errorf("Center() = %+v, want %+v", got, want)
	}
	if !r.Contains(V2(10, 20)) {
		t.Error("Contains(origin) = false, want true")
	}
	if r.Contains(V2(40, 60)) {
		t.Error("Contains(max corner) = true, want false (half-open)")
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(V2(50, 50), 20, 10)
	if want := R(40, 45, 20, 10); r != want {
		t.Errorf("RectAround = %+v, want %+v", r, want)
	}
}

func TestRectExpand(t *testing.T) {
	r := R(10, 10, 10, 10).Expand(2)
	if want := R(8, 8, 14, 14); r != want {
		t.Errorf("Expand(2) = %+v, want %+v", r, want)
	}
}
