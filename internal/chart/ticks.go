package chart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// stepTicks places a labelled major tick on every multiple of Step and
// Minor-1 unlabelled ticks between neighbouring majors.
type stepTicks struct {
	Step  float64
	Minor int
}

func (t stepTicks) Ticks(min, max float64) []plot.Tick {
	if !(t.Step > 0) || min > max {
		return nil
	}

	var ticks []plot.Tick
	first := int(math.Ceil(min / t.Step))
	last := int(math.Floor(max / t.Step))
	for i := first; i <= last; i++ {
		v := float64(i) * t.Step
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
	}

	if t.Minor < 2 {
		return ticks
	}
	sub := t.Step / float64(t.Minor)
	for i := first - 1; i <= last; i++ {
		for j := 1; j < t.Minor; j++ {
			v := float64(i)*t.Step + float64(j)*sub
			if v < min || v > max {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// integers print without a fractional part
func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
