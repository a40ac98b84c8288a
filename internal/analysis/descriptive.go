package analysis

import (
	"strconv"

	"gotrial/domain/condition"
	"gotrial/models"

	"github.com/montanaflynn/stats"
)

// Descriptives summarizes one cell of numeric responses.
type Descriptives struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Describe computes descriptive statistics for a set of values.
func Describe(values []float64) Descriptives {
	if len(values) == 0 {
		return Descriptives{}
	}

	mean, _ := stats.Mean(values)
	stdDev, _ := stats.StandardDeviation(values)
	median, _ := stats.Median(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	return Descriptives{
		N:      len(values),
		Mean:   round(mean, 3),
		StdDev: round(stdDev, 3),
		Median: median,
		Min:    min,
		Max:    max,
	}
}

// GroupBySource partitions the numeric responses by the content source the
// participant saw. Free-text answers are not numeric and drop out here.
func GroupBySource(responses []models.TestResponse) map[condition.ContentSource][]float64 {
	groups := make(map[condition.ContentSource][]float64)
	for _, resp := range responses {
		value, err := strconv.ParseFloat(resp.ResponseValue, 64)
		if err != nil {
			continue
		}
		groups[resp.ContentSource] = append(groups[resp.ContentSource], value)
	}
	return groups
}

// GroupByLength partitions the numeric responses by assigned content length.
func GroupByLength(responses []models.TestResponse) map[condition.ContentLength][]float64 {
	groups := make(map[condition.ContentLength][]float64)
	for _, resp := range responses {
		value, err := strconv.ParseFloat(resp.ResponseValue, 64)
		if err != nil {
			continue
		}
		groups[resp.ContentLength] = append(groups[resp.ContentLength], value)
	}
	return groups
}

func round(v float64, places int) float64 {
	r, _ := stats.Round(v, places)
	return r
}
