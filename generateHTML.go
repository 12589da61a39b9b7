// generateHTML.go
package main

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// generateHTML creates a self-contained page that replays the trace on a
// canvas with requestAnimationFrame, positioned over a placeholder box the
// size of the target.
func generateHTML(target Target, opts Options) (string, error) { // NOSONAR
	plan, err := planTrace(target, opts)
	if err != nil {
		return "", err
	}
	p := resolvePaint(plan.style)
	if !p.strokeOK {
		return "", fmt.Errorf("invalid stroke color %q", plan.style.StrokeColor)
	}

	pointsJSON, err := json.Marshal(plan.points)
	if err != nil {
		return "", fmt.Errorf("failed to encode points: %w", err)
	}
	fillStyle := ""
	if p.fillOK {
		fillStyle = p.fill.String()
	}
	styleJSON, err := json.Marshal(map[string]any{
		"stroke":   p.stroke.String(),
		"width":    plan.style.StrokeWidth,
		"fill":     fillStyle,
		"duration": plan.style.Duration.Milliseconds(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode style: %w", err)
	}

	var htmlBuilder strings.Builder

	// --- Basic HTML Structure ---
	htmlBuilder.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<title>Trace</title>\n")
	htmlBuilder.WriteString("<style>\n")
	htmlBuilder.WriteString("body { margin: 0; padding: 40px; font-family: Arial, sans-serif; }\n")
	htmlBuilder.WriteString(".trace-container { position: relative; }\n")
	htmlBuilder.WriteString(fmt.Sprintf(".trace-target { position: absolute; left: %spx; top: %spx; width: %.0fpx; height: %.0fpx; border: 1px dashed #ccc; box-sizing: border-box; }\n",
		svgNum(opts.CanvasPadding/2), svgNum(opts.CanvasPadding/2), target.Width, target.Height))
	htmlBuilder.WriteString(".trace-canvas { position: absolute; left: 0; top: 0; }\n")
	htmlBuilder.WriteString("</style>\n</head>\n<body>\n")

	// --- Canvas ---
	htmlBuilder.WriteString(fmt.Sprintf("<div class=\"trace-container\" style=\"width: %dpx; height: %dpx;\">\n", plan.width, plan.height))
	htmlBuilder.WriteString("  <div class=\"trace-target\"></div>\n")
	htmlBuilder.WriteString(fmt.Sprintf("  <canvas id=\"trace\" class=\"trace-canvas\" width=\"%d\" height=\"%d\" title=\"%s\"></canvas>\n",
		plan.width, plan.height, html.EscapeString(fmt.Sprint(opts.GapPoint))))
	htmlBuilder.WriteString("</div>\n")

	// --- Animation Script ---
	htmlBuilder.WriteString("<script>\n")
	htmlBuilder.WriteString(fmt.Sprintf("const points = %s;\n", pointsJSON))
	htmlBuilder.WriteString(fmt.Sprintf("const style = %s;\n", styleJSON))
	htmlBuilder.WriteString(traceScript)
	htmlBuilder.WriteString("</script>\n</body>\n</html>\n")

	return htmlBuilder.String(), nil
}

// traceScript mirrors Animation.frame/draw for the browser.
const traceScript = `const canvas = document.getElementById('trace');
const ctx = canvas.getContext('2d');
let start = null;
function frame(ts) {
  if (start === null) start = ts;
  const elapsed = ts - start;
  const progress = Math.min(elapsed / style.duration, 1);
  const revealed = Math.floor(progress * points.length);
  ctx.clearRect(0, 0, canvas.width, canvas.height);
  ctx.beginPath();
  for (let i = 0; i < revealed - 1; i++) {
    if (i === 0) { ctx.moveTo(points[0].X, points[0].Y); continue; }
    const a = points[i - 1], b = points[i], c = points[i + 1];
    ctx.bezierCurveTo(a.X, a.Y, b.X, b.Y, c.X, c.Y);
  }
  ctx.strokeStyle = style.stroke;
  ctx.lineWidth = style.width;
  if (style.fill) { ctx.fillStyle = style.fill; ctx.fill(); }
  ctx.stroke();
  if (elapsed < style.duration) {
    requestAnimationFrame(frame);
  } else {
    document.body.dataset.traced = 'done';
  }
}
requestAnimationFrame(frame);
`
