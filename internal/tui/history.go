package tui

import "github.com/guptarohit/asciigraph"

// History is a fixed-capacity ring of recent metric samples, rendered
// as an asciigraph sparkline-style plot.
type History struct {
	capacity int
	values   []float64
}

func NewHistory(capacity int) *History {
	return &History{capacity: capacity, values: make([]float64, 0, capacity)}
}

// Push appends a sample, dropping the oldest once capacity is reached.
func (h *History) Push(v float64) {
	h.values = append(h.values, v)
	if len(h.values) > h.capacity {
		h.values = h.values[len(h.values)-h.capacity:]
	}
}

// Render draws the current history as a small ASCII line chart.
func (h *History) Render(caption string) string {
	if len(h.values) < 2 {
		return subtleStyle.Render(caption + ": (not enough data yet)")
	}
	return asciigraph.Plot(h.values,
		asciigraph.Height(6),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
