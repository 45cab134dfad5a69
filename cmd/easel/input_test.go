package main

import (
	"image/color"
	"testing"

	"github.com/ha1tch/easel/internal/geom"
)

func TestColorNear(t *testing.T) {
	tests := []struct {
		name string
		a, b color.RGBA
		tol  float32
		want bool
	}{
		{"identical", color.RGBA{10, 20, 30, 255}, color.RGBA{10, 20, 30, 255}, 0, true},
		{"within tolerance", color.RGBA{10, 20, 30, 255}, color.RGBA{40, 50, 60, 255}, 32, true},
		{"one channel out", color.RGBA{10, 20, 30, 255}, color.RGBA{10, 20, 63, 255}, 32, false},
		{"alpha out", color.RGBA{10, 20, 30, 255}, color.RGBA{10, 20, 30, 0}, 32, false},
		{"zero tolerance mismatch", color.RGBA{10, 20, 30, 255}, color.RGBA{11, 20, 30, 255}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorNear(tt.a, tt.b, tt.tol); got != tt.want {
				t.Errorf("colorNear(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.tol, got, tt.want)
			}
		})
	}
}

func TestDragRect(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Vec2
		want geom.Rect
	}{
		{"down right", geom.V2(10, 10), geom.V2(30, 50), geom.R(10, 10, 20, 40)},
		{"up left", geom.V2(30, 50), geom.V2(10, 10), geom.R(10, 10, 20, 40)},
		{"degenerate", geom.V2(5, 5), geom.V2(5, 5), geom.R(5, 5, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dragRect(tt.a, tt.b); got != tt.want {
				t.Errorf("dragRect(%v, %v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
