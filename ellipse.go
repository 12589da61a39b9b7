package main

import (
	"encoding/json"
	"math"

	"github.com/jbeda/geom"
)

// pointsPerRevolution is the number of angular steps in one full ellipse.
const pointsPerRevolution = 100

const defaultGapLocation = "top_left"

// gapFractions locates the gap as fractions of one revolution: the main arc
// starts at Start, runs through 0 to GapEnd, and the tapered tail runs from
// GapEnd to Reentry.
type gapFractions struct {
	Start   float64 `json:"start"`
	GapEnd  float64 `json:"gap_end"`
	Reentry float64 `json:"reentry"`
}

// Named gap locations. "right" deliberately reenters past 1.0.
var gapLocations = map[string]gapFractions{
	"left":         {0.50, 0.40, 0.60},
	"top_left":     {0.65, 0.50, 0.85},
	"top_right":    {0.85, 0.75, 0.95},
	"top":          {0.75, 0.65, 0.85},
	"right":        {1.0, 0.90, 1.10},
	"bottom_right": {0.10, 0.05, 0.20},
	"bottom_left":  {0.35, 0.25, 0.45},
}

// GapLocationNames lists the accepted symbolic gap positions.
func GapLocationNames() []string {
	return []string{"left", "top_left", "top_right", "top", "right", "bottom_right", "bottom_left"}
}

// --- Gap Resolution ---

// resolveGap turns a location name or a percentage into gap fractions.
// Bad input never fails: it is logged and replaced by a default.
func resolveGap(location any) gapFractions {
	switch v := location.(type) {
	case string:
		return resolveGapName(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			logger().Warn("bad gap location, using default", "location", v.String(), "default", defaultGapLocation)
			return gapLocations[defaultGapLocation]
		}
		return resolveGapPercent(f)
	case float64:
		return resolveGapPercent(v)
	case float32:
		return resolveGapPercent(float64(v))
	case int:
		return resolveGapPercent(float64(v))
	case int64:
		return resolveGapPercent(float64(v))
	case int32:
		return resolveGapPercent(float64(v))
	case uint:
		return resolveGapPercent(float64(v))
	case uint64:
		return resolveGapPercent(float64(v))
	case uint32:
		return resolveGapPercent(float64(v))
	default:
		logger().Warn("bad gap location type, using default", "location", location, "default", defaultGapLocation)
		return gapLocations[defaultGapLocation]
	}
}

func resolveGapName(name string) gapFractions {
	fr, ok := gapLocations[name]
	if !ok {
		logger().Warn("unknown gap location, using default", "location", name, "default", defaultGapLocation)
		return gapLocations[defaultGapLocation]
	}
	return fr
}

// resolveGapPercent keeps the historical wrap rules: a negative gap end is
// mirrored as 1-gapEnd (which lands above 1), while an overflowing reentry is
// shifted down by one.
func resolveGapPercent(value float64) gapFractions {
	start := value / 100
	if start > 1.0 || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		logger().Warn("bad gap location, specify a value between 0% and 100%; switching to 85%", "location", value)
		start = 0.85
	}

	gapEnd := start - 0.10
	if gapEnd < 0 {
		gapEnd = 1.0 - gapEnd
	}
	reentry := start + 0.10
	if reentry > 1.0 {
		reentry = reentry - 1.0
	}
	return gapFractions{Start: start, GapEnd: gapEnd, Reentry: reentry}
}

// --- Point Generation ---

func ellipsePoint(cx, cy, rx, ry, angle float64) geom.Coord {
	return geom.Coord{X: cx + rx*math.Cos(angle), Y: cy + ry*math.Sin(angle)}
}

// GenerateEllipsePoints traces an ellipse inscribed in a width x height surface
// inset by padding, leaving a gap at the given location. The output is ordered
// for drawing: the arc from the gap's start to the end of the revolution, the
// wrap-around arc from angle 0 to the gap end, then a tail whose radius grows
// by padding over the reentry span.
//
// width and height must exceed 2*padding; radii are not validated.
func GenerateEllipsePoints(width, height, padding float64, gapPoint any) []geom.Coord {
	rx := math.Trunc((width - padding) / 2)
	ry := math.Trunc((height - padding) / 2)
	xc := rx + padding/2
	yc := ry + padding/2

	gap := resolveGap(gapPoint)
	step := 2 * math.Pi / pointsPerRevolution

	points := make([]geom.Coord, 0, pointsPerRevolution+pointsPerRevolution/2)

	for i := gap.Start * pointsPerRevolution; i <= pointsPerRevolution; i++ {
		points = append(points, ellipsePoint(xc, yc, rx, ry, i*step))
	}

	for i := 0.0; i < gap.GapEnd*pointsPerRevolution; i++ {
		points = append(points, ellipsePoint(xc, yc, rx, ry, i*step))
	}

	var repairSteps float64
	if gap.Reentry > gap.GapEnd {
		repairSteps = (gap.Reentry - gap.GapEnd) * pointsPerRevolution
	} else {
		repairSteps = (1 - gap.GapEnd + gap.Reentry) * pointsPerRevolution
	}
	radiusStep := padding / repairSteps
	for i, add := gap.GapEnd*pointsPerRevolution, radiusStep; i <= gap.Reentry*pointsPerRevolution; i, add = i+1, add+radiusStep {
		points = append(points, ellipsePoint(xc, yc, rx+add, ry+add, i*step))
	}

	return points
}

// ellipseBounds returns the bounding rectangle of a point sequence.
func ellipseBounds(points []geom.Coord) geom.Rect {
	if len(points) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}
