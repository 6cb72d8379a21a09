package core

// LineMetrics describes how lines are laid out on the rendering surface.
type LineMetrics struct {
	TopPadding float64 // Space above the first line
	LineHeight float64 // Height of one line
	ScrollTop  float64 // Current vertical scroll offset
}

// DefaultLineMetrics matches a surface with 16px of top padding and
// 20px lines.
var DefaultLineMetrics = LineMetrics{
	TopPadding: 16,
	LineHeight: 20,
}

// TerminalLineMetrics lays lines out one per row with no padding.
func TerminalLineMetrics(scrollTop int) LineMetrics {
	return LineMetrics{LineHeight: 1, ScrollTop: float64(scrollTop)}
}

// CursorBand locates the highlight band of the caret's line.
type CursorBand struct {
	Line   int // Zero-indexed line of the caret
	Top    float64
	Height float64
}

// CursorLine projects the caret's line onto the surface. It must be
// recomputed on every caret move, content change and scroll.
func CursorLine(text []rune, caret int, metrics LineMetrics) CursorBand {
	line := ActiveLine(text, caret) - 1
	return CursorBand{
		Line:   line,
		Top:    metrics.TopPadding + float64(line)*metrics.LineHeight - metrics.ScrollTop,
		Height: metrics.LineHeight,
	}
}
