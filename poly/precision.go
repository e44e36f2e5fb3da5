package poly

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/polyops/utils"
)

// PrecisionStats stores statistics about the coefficient-wise distance
// between a reference polynomial and a computed one.
// Deltas are absolute differences; precisions are -log2 of the deltas,
// so an exact coefficient has +Inf bits of precision.
type PrecisionStats struct {
	MinDelta    float64
	MaxDelta    float64
	MeanDelta   float64
	MedianDelta float64
	STDDelta    float64

	MinPrecision    float64
	MaxPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────┬────────┐
│         │ DELTA    │ LOG2   │
├─────────┼──────────┼────────┤
│MIN      │ %8.2e │ %6.2f │
│MAX      │ %8.2e │ %6.2f │
│AVG      │ %8.2e │ %6.2f │
│MED      │ %8.2e │ %6.2f │
└─────────┴──────────┴────────┘
Err STD : %8.2e
`,
		prec.MinDelta, prec.MaxPrecision,
		prec.MaxDelta, prec.MinPrecision,
		prec.MeanDelta, prec.MeanPrecision,
		prec.MedianDelta, prec.MedianPrecision,
		prec.STDDelta)
}

// GetPrecisionStats compares have against want coefficient by coefficient.
// When the lengths differ, the missing coefficients of the shorter
// polynomial are taken as zero.
func GetPrecisionStats(want, have *Polynomial) (prec PrecisionStats, err error) {

	if err = checkOperands(want, have); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	n := utils.Max(want.Len(), have.Len())

	deltas := make([]float64, n)
	precs := make([]float64, n)

	for i := range deltas {
		deltas[i] = math.Abs(want.Coefficient(i) - have.Coefficient(i))
		precs[i] = -math.Log2(deltas[i])
	}

	if prec.MinDelta, err = stats.Min(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MaxDelta, err = stats.Max(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MeanDelta, err = stats.Mean(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MedianDelta, err = stats.Median(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.STDDelta, err = stats.StandardDeviation(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	prec.MinPrecision = -math.Log2(prec.MaxDelta)
	prec.MaxPrecision = -math.Log2(prec.MinDelta)
	prec.MeanPrecision = -math.Log2(prec.MeanDelta)

	if prec.MedianPrecision, err = stats.Median(precs); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	return prec, nil
}
