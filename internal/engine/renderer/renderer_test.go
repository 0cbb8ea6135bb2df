package renderer

import (
	"testing"

	"github.com/Faultbox/twinview/internal/world"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name          string
		side          world.Side
		width, height int
		want          Viewport
	}{
		{"left even", world.Left, 1600, 800, Viewport{0, 0, 800, 800}},
		{"right even", world.Right, 1600, 800, Viewport{800, 0, 800, 800}},
		{"left odd", world.Left, 1601, 800, Viewport{0, 0, 800, 800}},
		{"right odd", world.Right, 1601, 800, Viewport{800, 0, 801, 800}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.side, tt.width, tt.height); got != tt.want {
				t.Errorf("Split = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestViewportAspect(t *testing.T) {
	if got := (Viewport{Width: 800, Height: 400}).Aspect(); got != 2 {
		t.Errorf("Aspect = %v, want 2", got)
	}
	if got := (Viewport{Width: 800}).Aspect(); got != 1 {
		t.Errorf("zero-height Aspect = %v, want 1", got)
	}
}
