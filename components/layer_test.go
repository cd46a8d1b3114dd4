package components

import "testing"

func TestSkyWrapsToSurfaceWidth(t *testing.T) {
	sky := LayerData{Offset: 0, Step: 2, Max: 400}
	sky.ScrollLeft()
	if sky.Offset != 400 {
		t.Fatalf("sky offset after wrap = %v, want 400", sky.Offset)
	}
	sky.ScrollLeft()
	if sky.Offset != 398 {
		t.Fatalf("sky offset = %v, want 398", sky.Offset)
	}
	sky.ScrollRight()
	sky.ScrollRight()
	if sky.Offset != 0 {
		t.Fatalf("sky offset after right wrap = %v, want 0", sky.Offset)
	}
}
