package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/jbeda/geom"
)

// --- SVG Surface ---

// svgSurface is a Surface that records the current frame as SVG markup. Each
// Stroke or Fill emits one <path> element from the path built since the last
// BeginPath; Clear drops everything drawn so far.
type svgSurface struct {
	width, height int

	path     strings.Builder
	elements []string

	stroke      RGBA
	strokeWidth float64
	fill        RGBA
}

func newSVGSurface(width, height int) *svgSurface {
	return &svgSurface{width: width, height: height}
}

func (s *svgSurface) Clear(region geom.Rect) {
	s.elements = s.elements[:0]
	s.path.Reset()
}

func (s *svgSurface) BeginPath() {
	s.path.Reset()
}

func (s *svgSurface) MoveTo(p geom.Coord) {
	if s.path.Len() > 0 {
		s.path.WriteByte(' ')
	}
	fmt.Fprintf(&s.path, "M%s,%s", svgNum(p.X), svgNum(p.Y))
}

func (s *svgSurface) CurveTo(c1, c2, end geom.Coord) {
	fmt.Fprintf(&s.path, " C%s,%s %s,%s %s,%s",
		svgNum(c1.X), svgNum(c1.Y), svgNum(c2.X), svgNum(c2.Y), svgNum(end.X), svgNum(end.Y))
}

func (s *svgSurface) SetStrokeStyle(c RGBA, width float64) {
	s.stroke = c
	s.strokeWidth = width
}

func (s *svgSurface) SetFillStyle(c RGBA) {
	s.fill = c
}

func (s *svgSurface) Stroke() {
	if s.path.Len() == 0 {
		return
	}
	s.elements = append(s.elements, fmt.Sprintf(
		`<path d="%s" fill="none" stroke="rgb(%d,%d,%d)" stroke-opacity="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`,
		s.path.String(), s.stroke.R, s.stroke.G, s.stroke.B, formatAlpha(s.stroke.A), svgNum(s.strokeWidth)))
}

func (s *svgSurface) Fill() {
	if s.path.Len() == 0 {
		return
	}
	s.elements = append(s.elements, fmt.Sprintf(
		`<path d="%s" fill="rgb(%d,%d,%d)" fill-opacity="%s" stroke="none"/>`,
		s.path.String(), s.fill.R, s.fill.G, s.fill.B, formatAlpha(s.fill.A)))
}

// String returns the current frame as a standalone SVG document.
func (s *svgSurface) String() string {
	var svgBuilder strings.Builder
	svgBuilder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		s.width, s.height, s.width, s.height))
	svgBuilder.WriteString("\n")
	for _, el := range s.elements {
		svgBuilder.WriteString("  ")
		svgBuilder.WriteString(el)
		svgBuilder.WriteString("\n")
	}
	svgBuilder.WriteString("</svg>\n")
	return svgBuilder.String()
}

// svgNum formats coordinates with two decimals, trimming useless zeros.
func svgNum(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// --- SVG Generation ---

// snapshotSVG renders the trace as it looks at time "at" after the animation
// started. The animation is driven offline with two frames: the starting frame
// and the one at "at".
func snapshotSVG(points []geom.Coord, style StyleSpec, width, height int, at time.Duration) string {
	surface := newSVGSurface(width, height)
	scheduler := NewSteppedScheduler(0, at)
	tracer := NewTracer(surface, float64(width), float64(height), scheduler)
	tracer.Start(points, style, nil, nil)
	scheduler.Run(2)
	tracer.Stop()
	return surface.String()
}

// GenerateSVG renders the fully traced ellipse around target as an SVG
// document.
func GenerateSVG(target Target, opts Options) (string, error) {
	plan, err := planTrace(target, opts)
	if err != nil {
		return "", err
	}
	return snapshotSVG(plan.points, plan.style, plan.width, plan.height, plan.style.Duration), nil
}
