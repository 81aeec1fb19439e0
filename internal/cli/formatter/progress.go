package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCapacityBar renders a sprint utilization bar like [████░░░░] 45%.
// Low utilization is green; the bar turns yellow above 80% and red when the
// sprint is over capacity. Utilization past 100% still fills the whole bar.
func RenderCapacityBar(utilization float64, width int) string {
	if utilization < 0 {
		utilization = 0
	}
	if width < 2 {
		width = 2
	}

	filled := int(utilization * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if utilization > 1 {
		style = StyleRed
	} else if utilization > 0.8 {
		style = StyleYellow
	}

	pctStr := fmt.Sprintf("%3.0f%%", utilization*100)
	return fmt.Sprintf("[%s] %s", style.Render(bar), pctStr)
}
