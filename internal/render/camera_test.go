package render

import "testing"

func TestCameraCenter(t *testing.T) {
	c := NewCamera(50, 40, 80, 20)
	sx, sy, ok := c.WorldToScreen(50, 40)
	if !ok {
		t.Fatal("centre cell should be visible")
	}
	if sx != 40 || sy != 10 {
		t.Errorf("centre maps to (%d,%d), want (40,10)", sx, sy)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(10, 10, 60, 20)
	for _, p := range [][2]int{{0, 0}, {10, 10}, {-4, 7}, {24, 19}} {
		sx, sy, _ := c.WorldToScreen(p[0], p[1])
		if x, z := c.ScreenToWorld(sx, sy); x != p[0] || z != p[1] {
			t.Errorf("round trip of %v gave (%d,%d)", p, x, z)
		}
	}
}

func TestCameraVisibility(t *testing.T) {
	c := &Camera{ViewWidth: 10, ViewHeight: 4}
	cases := []struct {
		x, z int
		want bool
	}{
		{0, 0, true},
		{4, 3, true},
		{5, 0, false}, // would start at column 10
		{0, 4, false},
		{-1, 0, false},
	}
	for _, tc := range cases {
		if _, _, ok := c.WorldToScreen(tc.x, tc.z); ok != tc.want {
			t.Errorf("WorldToScreen(%d,%d) visible=%v, want %v", tc.x, tc.z, ok, tc.want)
		}
	}
}

func TestCameraResizeKeepsCentre(t *testing.T) {
	c := NewCamera(30, 20, 80, 20)
	c.Resize(40, 10)
	sx, sy, ok := c.WorldToScreen(30, 20)
	if !ok || sx != 20 || sy != 5 {
		t.Errorf("after resize centre maps to (%d,%d,%v), want (20,5,true)", sx, sy, ok)
	}
}

func TestThemeAtWraps(t *testing.T) {
	n := len(Themes)
	if ThemeAt(n).Name != Themes[0].Name {
		t.Error("index n should wrap to the first theme")
	}
	if ThemeAt(-1).Name != Themes[n-1].Name {
		t.Error("index -1 should wrap to the last theme")
	}
}
