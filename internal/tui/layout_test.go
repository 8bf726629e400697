package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name        string
		width       int
		height      int
		lineWidth   int
		stackHeight int
	}{
		{name: "narrow", width: 80, height: 24, lineWidth: 78, stackHeight: 20},
		{name: "wide", width: 200, height: 40, lineWidth: 198, stackHeight: 36},
		{name: "tiny", width: 10, height: 3, lineWidth: minLineWidth, stackHeight: minStackHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.lineWidth != tc.lineWidth {
				t.Fatalf("line width mismatch: got %d want %d", layout.lineWidth, tc.lineWidth)
			}
			if layout.stackHeight != tc.stackHeight {
				t.Fatalf("stack height mismatch: got %d want %d", layout.stackHeight, tc.stackHeight)
			}
		})
	}
}

func TestPageLayoutVisible(t *testing.T) {
	layout := newPageLayout()
	layout.Update(80, 8)
	if first, hidden := layout.visible(4); first != 0 || hidden != 0 {
		t.Fatalf("all entries fit: first=%d hidden=%d", first, hidden)
	}
	if first, hidden := layout.visible(10); first != 7 || hidden != 7 {
		t.Fatalf("overflow: first=%d hidden=%d", first, hidden)
	}
}
