package ui

import (
	"github.com/charmbracelet/bubbles/progress"
)

// RenderGauge draws a bar showing where value sits within [min, max].
// Values outside the range are pinned to the ends.
func RenderGauge(value, min, max, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(PrimaryColor)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	return bar.ViewAs(GaugeFraction(value, min, max))
}

// GaugeFraction returns value's position in [min, max] as 0..1.
func GaugeFraction(value, min, max int) float64 {
	if max <= min {
		return 1
	}
	f := (float64(value) - float64(min)) / (float64(max) - float64(min))
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
