package matrix

import "math"

// Stats holds min/max/mean for one column of the sweep.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Summary aggregates a completed sweep: scenario counts, the best cell for
// the rental strategy, and per-column statistics.
type Summary struct {
	Total           int
	RentalWins      int
	Best            GridCell
	RentalExcess    Stats
	SellExcess      Stats
	RentalAdvantage Stats
}

// Summarize computes the summary over the sweep output. An empty sweep
// yields a zero Summary.
func Summarize(cells []GridCell) Summary {
	if len(cells) == 0 {
		return Summary{}
	}

	summary := Summary{
		Total: len(cells),
		Best:  cells[0],
		RentalExcess: Stats{
			Min: math.Inf(1),
			Max: math.Inf(-1),
		},
		SellExcess: Stats{
			Min: math.Inf(1),
			Max: math.Inf(-1),
		},
		RentalAdvantage: Stats{
			Min: math.Inf(1),
			Max: math.Inf(-1),
		},
	}

	for _, cell := range cells {
		if cell.RentalAdvantage > 0 {
			summary.RentalWins++
		}
		if cell.RentalAdvantage > summary.Best.RentalAdvantage {
			summary.Best = cell
		}
		accumulate(&summary.RentalExcess, cell.RentalMonthlyExcess)
		accumulate(&summary.SellExcess, cell.SellMonthlyExcess)
		accumulate(&summary.RentalAdvantage, cell.RentalAdvantage)
	}

	n := float64(len(cells))
	summary.RentalExcess.Mean /= n
	summary.SellExcess.Mean /= n
	summary.RentalAdvantage.Mean /= n
	return summary
}

func accumulate(stats *Stats, value float64) {
	if value < stats.Min {
		stats.Min = value
	}
	if value > stats.Max {
		stats.Max = value
	}
	stats.Mean += value
}
