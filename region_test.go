package verso

import "testing"

func TestClassifyTapRegionBoundaries(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want TapRegion
	}{
		{"far left", 0, TapRegionLeft},
		{"just inside left", 199, TapRegionLeft},
		{"left edge", 200, TapRegionCenter},
		{"center", 500, TapRegionCenter},
		{"right edge", 800, TapRegionCenter},
		{"just inside right", 801, TapRegionRight},
		{"far right", 1000, TapRegionRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyTapRegion(tt.x, 1000); got != tt.want {
				t.Errorf("classifyTapRegion(%v, 1000) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestClassifyTapRegionScalesWithViewport(t *testing.T) {
	if got := classifyTapRegion(50, 400); got != TapRegionLeft {
		t.Errorf("classifyTapRegion(50, 400) = %v, want left", got)
	}
	if got := classifyTapRegion(350, 400); got != TapRegionRight {
		t.Errorf("classifyTapRegion(350, 400) = %v, want right", got)
	}
}

func TestClassifyTapRegionDegenerateViewport(t *testing.T) {
	if got := classifyTapRegion(10, 0); got != TapRegionCenter {
		t.Errorf("classifyTapRegion with zero width = %v, want center", got)
	}
}
