package analysis

import (
	"math"

	"gotrial/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ANOVAResult holds a one-way ANOVA over the condition groups.
type ANOVAResult struct {
	FStatistic  float64 `json:"fStatistic"`
	PValue      float64 `json:"pValue"`
	DFBetween   int     `json:"dfBetween"`
	DFWithin    int     `json:"dfWithin"`
	SSBetween   float64 `json:"ssBetween"`
	SSWithin    float64 `json:"ssWithin"`
	EtaSquared  float64 `json:"etaSquared"`
	Significant bool    `json:"significant"`
}

// OneWayANOVA tests whether the group means differ. Groups with fewer than
// two observations are excluded; at least two usable groups are required.
func OneWayANOVA(groups [][]float64) (*ANOVAResult, error) {
	var usable [][]float64
	for _, g := range groups {
		if len(g) >= 2 {
			usable = append(usable, g)
		}
	}
	if len(usable) < 2 {
		return nil, errors.ValidationError("one-way ANOVA requires at least two groups with two or more observations")
	}

	totalN := 0
	var all []float64
	for _, g := range usable {
		totalN += len(g)
		all = append(all, g...)
	}

	grandMean, _ := stats.Mean(all)

	ssBetween := 0.0
	ssWithin := 0.0
	for _, g := range usable {
		groupMean, _ := stats.Mean(g)
		ssBetween += float64(len(g)) * (groupMean - grandMean) * (groupMean - grandMean)
		for _, v := range g {
			ssWithin += (v - groupMean) * (v - groupMean)
		}
	}

	dfBetween := len(usable) - 1
	dfWithin := totalN - len(usable)
	if dfWithin <= 0 {
		return nil, errors.ValidationError("one-way ANOVA has no within-group degrees of freedom")
	}

	msBetween := ssBetween / float64(dfBetween)
	msWithin := ssWithin / float64(dfWithin)

	if msWithin == 0 {
		// All groups are internally constant. Identical means give F of
		// zero, any separation is an exact effect.
		if ssBetween == 0 {
			return &ANOVAResult{
				DFBetween: dfBetween,
				DFWithin:  dfWithin,
				PValue:    1.0,
			}, nil
		}
		return &ANOVAResult{
			FStatistic:  math.Inf(1),
			DFBetween:   dfBetween,
			DFWithin:    dfWithin,
			SSBetween:   ssBetween,
			EtaSquared:  1.0,
			Significant: true,
		}, nil
	}

	f := msBetween / msWithin
	fDist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}
	pValue := 1 - fDist.CDF(f)
	if pValue < 0 {
		pValue = 0
	}

	etaSquared := 0.0
	if ssBetween+ssWithin > 0 {
		etaSquared = ssBetween / (ssBetween + ssWithin)
	}

	return &ANOVAResult{
		FStatistic:  f,
		PValue:      pValue,
		DFBetween:   dfBetween,
		DFWithin:    dfWithin,
		SSBetween:   ssBetween,
		SSWithin:    ssWithin,
		EtaSquared:  etaSquared,
		Significant: pValue < 0.05,
	}, nil
}
