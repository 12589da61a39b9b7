package main

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

const fracEpsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < fracEpsilon
}

// TestNamedGapLocations checks the location table and the number of points
// each location produces (main arc, wrap-around arc, tail).
func TestNamedGapLocations(t *testing.T) {
	tests := []struct {
		name                  string
		start, gapEnd, reentr float64
		points                int
	}{
		{"left", 0.50, 0.40, 0.60, 51 + 40 + 21},
		{"top_left", 0.65, 0.50, 0.85, 36 + 50 + 36},
		{"top_right", 0.85, 0.75, 0.95, 16 + 75 + 21},
		{"top", 0.75, 0.65, 0.85, 26 + 65 + 21},
		{"right", 1.00, 0.90, 1.10, 1 + 90 + 21},
		{"bottom_right", 0.10, 0.05, 0.20, 91 + 5 + 16},
		{"bottom_left", 0.35, 0.25, 0.45, 66 + 25 + 21},
	}
	if len(tests) != len(GapLocationNames()) {
		t.Fatalf("table covers %d locations, GapLocationNames lists %d", len(tests), len(GapLocationNames()))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveGap(tt.name)
			want := gapFractions{tt.start, tt.gapEnd, tt.reentr}
			if got != want {
				t.Fatalf("resolveGap(%q) = %+v, want %+v", tt.name, got, want)
			}
			if got.GapEnd < 0 || got.GapEnd >= 1 {
				t.Errorf("gap end %v outside [0,1)", got.GapEnd)
			}
			points := GenerateEllipsePoints(300, 200, 15, tt.name)
			if len(points) != tt.points {
				t.Errorf("GenerateEllipsePoints(%q) produced %d points, want %d", tt.name, len(points), tt.points)
			}
		})
	}
}

// TestNumericGapWrapQuirks pins the historical wrap rules: a negative gap end
// becomes 1-gapEnd (landing above 1) instead of wrapping modulo 1.
func TestNumericGapWrapQuirks(t *testing.T) {
	tests := []struct {
		value                  any
		start, gapEnd, reentry float64
	}{
		{50.0, 0.50, 0.40, 0.60},
		{42, 0.42, 0.32, 0.52},
		{int64(10), 0.10, 0.0, 0.20},
		{5.0, 0.05, 1.05, 0.15},  // 1 - (0.05 - 0.10)
		{0.0, 0.0, 1.10, 0.10},   // 1 - (0 - 0.10)
		{95.0, 0.95, 0.85, 0.05}, // reentry shifted down by one
		{100.0, 1.0, 0.90, 0.10}, // 100 is not above 1.0 after scaling
		{json.Number("75"), 0.75, 0.65, 0.85},
	}
	for _, tt := range tests {
		got := resolveGap(tt.value)
		if !almostEqual(got.Start, tt.start) || !almostEqual(got.GapEnd, tt.gapEnd) || !almostEqual(got.Reentry, tt.reentry) {
			t.Errorf("resolveGap(%v) = %+v, want {%v %v %v}", tt.value, got, tt.start, tt.gapEnd, tt.reentry)
		}
		if !almostEqual(got.Start, toFloat(t, tt.value)/100) {
			t.Errorf("resolveGap(%v).Start = %v, want value/100", tt.value, got.Start)
		}
	}
}

func toFloat(t *testing.T, v any) float64 {
	t.Helper()
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			t.Fatalf("bad json.Number %q: %v", n, err)
		}
		return f
	}
	t.Fatalf("unsupported value type %T", v)
	return 0
}

func TestGapFallbacks(t *testing.T) {
	topLeft := gapLocations["top_left"]
	fallback85 := gapFractions{Start: 0.85, GapEnd: 0.85 - 0.10, Reentry: 0.85 + 0.10}

	tests := []struct {
		name  string
		value any
		want  gapFractions
	}{
		{"unknown name", "middle", topLeft},
		{"empty name", "", topLeft},
		{"nil", nil, topLeft},
		{"bool", true, topLeft},
		{"slice", []int{1}, topLeft},
		{"above 100", 150.0, fallback85},
		{"negative", -20, fallback85},
		{"NaN", math.NaN(), fallback85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveGap(tt.value)
			if !almostEqual(got.Start, tt.want.Start) || !almostEqual(got.GapEnd, tt.want.GapEnd) || !almostEqual(got.Reentry, tt.want.Reentry) {
				t.Errorf("resolveGap(%v) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGenerateEllipsePointsGeometry(t *testing.T) {
	const width, height, padding = 300.0, 200.0, 15.0
	points := GenerateEllipsePoints(width, height, padding, "top_left")
	if len(points) == 0 {
		t.Fatal("expected points, got none")
	}

	first := points[0]
	half := padding / 2
	if first.X < -half || first.X > width+half || first.Y < -half || first.Y > height+half {
		t.Errorf("first point %+v outside surface %vx%v (±%v)", first, width, height, half)
	}

	// rx = trunc(142.5), ry = trunc(92.5), center offset by half the padding
	rx, ry, xc, yc := 142.0, 92.0, 142.0+half, 92.0+half
	onEllipse := func(i int) float64 {
		dx, dy := (points[i].X-xc)/rx, (points[i].Y-yc)/ry
		return dx*dx + dy*dy
	}

	// 36 main-arc points + 50 wrap-around points lie on the ellipse
	for i := 0; i < 86; i++ {
		if d := onEllipse(i); math.Abs(d-1) > 1e-9 {
			t.Fatalf("point %d %+v is off the ellipse (normalized radius² %v)", i, points[i], d)
		}
	}
	// wrap-around arc starts at angle 0
	if math.Abs(points[36].X-(xc+rx)) > 1e-9 || math.Abs(points[36].Y-yc) > 1e-9 {
		t.Errorf("wrap-around arc starts at %+v, want (%v, %v)", points[36], xc+rx, yc)
	}
	// the tail grows outward point after point
	prev := onEllipse(85)
	for i := 86; i < len(points); i++ {
		d := onEllipse(i)
		if d <= 1 {
			t.Errorf("tail point %d %+v is not outside the ellipse", i, points[i])
		}
		if i > 86 && d <= prev {
			t.Errorf("tail point %d does not move outward (%v <= %v)", i, d, prev)
		}
		prev = d
	}
}

func TestGenerateEllipsePointsDeterministic(t *testing.T) {
	for _, gap := range []any{"top_left", "right", 42.0, "nowhere"} {
		a := GenerateEllipsePoints(320, 180, 15, gap)
		b := GenerateEllipsePoints(320, 180, 15, gap)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("GenerateEllipsePoints(%v) differs between calls", gap)
		}
	}
}

func TestEllipseBounds(t *testing.T) {
	points := GenerateEllipsePoints(300, 200, 15, "left")
	b := ellipseBounds(points)
	for _, p := range points {
		if p.X < b.Min.X || p.X > b.Max.X || p.Y < b.Min.Y || p.Y > b.Max.Y {
			t.Fatalf("point %+v outside bounds %+v", p, b)
		}
	}
	if b.Width() <= 0 || b.Height() <= 0 {
		t.Errorf("degenerate bounds %+v", b)
	}
}
