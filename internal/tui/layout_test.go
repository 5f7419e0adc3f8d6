package tui

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		tooSmall bool
		navW     int
		rightW   int
		bodyH    int
		widgetH  int
		logH     int
	}{
		{
			name:    "80x24 minimum viable",
			width:   80, height: 24,
			navW:    24, // 80*25/100=20 → clamped to 24
			rightW:  56,
			bodyH:   22,
			widgetH: 13, // 22*60/100 = 13
			logH:    9,
		},
		{
			name:    "120x40",
			width:   120, height: 40,
			navW:    30,
			rightW:  90,
			bodyH:   38,
			widgetH: 22, // 38*60/100 = 22
			logH:    16,
		},
		{
			name:    "200x60",
			width:   200, height: 60,
			navW:    35, // 200*25/100=50 → clamped to 35
			rightW:  165,
			bodyH:   58,
			widgetH: 34, // 58*60/100 = 34
			logH:    24,
		},
		{name: "79x24 too small (width)", width: 79, height: 24, tooSmall: true},
		{name: "80x23 too small (height)", width: 80, height: 23, tooSmall: true},
		{name: "0x0", width: 0, height: 0, tooSmall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height)
			if l.TooSmall != tt.tooSmall {
				t.Fatalf("TooSmall = %v, want %v", l.TooSmall, tt.tooSmall)
			}
			if tt.tooSmall {
				return
			}

			if l.Header.Width != tt.width || l.Header.Height != 1 || l.Header.Y != 0 {
				t.Errorf("Header = %+v", l.Header)
			}
			if l.Footer.Width != tt.width || l.Footer.Y != tt.height-1 {
				t.Errorf("Footer = %+v", l.Footer)
			}
			if l.Nav.Width != tt.navW || l.Nav.Height != tt.bodyH {
				t.Errorf("Nav = %+v, want %dx%d", l.Nav, tt.navW, tt.bodyH)
			}
			if l.Widget.Width != tt.rightW || l.Widget.Height != tt.widgetH {
				t.Errorf("Widget = %+v, want %dx%d", l.Widget, tt.rightW, tt.widgetH)
			}
			if l.Log.Width != tt.rightW || l.Log.Height != tt.logH {
				t.Errorf("Log = %+v, want %dx%d", l.Log, tt.rightW, tt.logH)
			}
			if l.Log.Y != l.Widget.Y+l.Widget.Height {
				t.Errorf("Log.Y = %d, want directly below widget (%d)", l.Log.Y, l.Widget.Y+l.Widget.Height)
			}
			if l.Widget.X != l.Nav.Width {
				t.Errorf("Widget.X = %d, want %d", l.Widget.X, l.Nav.Width)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 5, Width: 4, Height: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{13, 6, true},
		{14, 5, false},
		{10, 7, false},
		{9, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInnerDims(t *testing.T) {
	tests := []struct {
		r            Rect
		wantW, wantH int
	}{
		{Rect{Width: 56, Height: 13}, 54, 11},
		{Rect{Width: 2, Height: 2}, 1, 1},
		{Rect{}, 1, 1},
	}
	for _, tt := range tests {
		w, h := innerDims(tt.r)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("innerDims(%+v) = %dx%d, want %dx%d", tt.r, w, h, tt.wantW, tt.wantH)
		}
	}
}
