// Package solver enumerates resistor pairs from a standard value series and
// selects the divider that best approximates the requested output voltage.
package solver

import (
	"fmt"
	"math"
	"sort"

	"github.com/iwvelando/resistor-divider/pkg/constants"
	"github.com/iwvelando/resistor-divider/pkg/eseries"
	"github.com/iwvelando/resistor-divider/pkg/mathutil"
	"go.uber.org/zap"
)

// Request holds the divider parameters and search options.
type Request struct {
	Vin         float64
	VoutTarget  float64
	Pmax        float64
	Series      string
	MinExponent int
	MaxExponent int
	MaxResults  int
}

// Candidate is one resistor pair that satisfies the power constraint.
type Candidate struct {
	R1           float64
	R2           float64
	Vout         float64
	AbsError     float64
	PercentError float64
	Power        float64 // total divider dissipation Vin^2/(R1+R2)
	PowerR1      float64
	PowerR2      float64
}

// Result holds the best pair along with the shortlist of candidates whose
// error stays within one series value step.
type Result struct {
	Best                 Candidate
	Candidates           []Candidate
	Series               string
	SearchedPairs        int
	FeasiblePairs        int
	StepTolerancePercent float64
}

// resistance is a series value tagged with its mantissa index and decade
// exponent so that ratio-equivalent pairs can be recognized.
type resistance struct {
	ohms float64
	mi   int
	exp  int
}

// ratioKey identifies a pair up to decade scaling. Pairs with the same key
// produce the same output voltage.
type ratioKey struct {
	m1, m2, expDiff int
}

// Solve runs the exhaustive pair search for the given request.
func Solve(logger *zap.Logger, req Request) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	series, err := eseries.ForName(req.Series)
	if err != nil {
		return nil, &InvalidInputError{Field: "series", Reason: err.Error()}
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = constants.DefaultMaxResults
	}

	values := candidateResistances(series, req.MinExponent, req.MaxExponent)
	stepTol := series.StepTolerancePercent()
	logger.Debug("generated search space",
		zap.String("op", "solver.Solve"),
		zap.String("series", series.Name),
		zap.Int("values", len(values)),
		zap.Int("pairs", len(values)*len(values)),
	)

	type scored struct {
		Candidate
		key ratioKey
	}

	var (
		best      Candidate
		haveBest  bool
		shortlist []scored
		feasible  int
	)
	for _, r1 := range values {
		for _, r2 := range values {
			sum := r1.ohms + r2.ohms
			power := req.Vin * req.Vin / sum
			if power > req.Pmax+constants.PowerTolerance {
				continue
			}
			feasible++

			vout := req.Vin * r2.ohms / sum
			drop := req.Vin - vout
			cand := Candidate{
				R1:           r1.ohms,
				R2:           r2.ohms,
				Vout:         vout,
				AbsError:     math.Abs(vout - req.VoutTarget),
				PercentError: mathutil.PercentError(vout, req.VoutTarget),
				Power:        power,
				PowerR1:      drop * drop / r1.ohms,
				PowerR2:      vout * vout / r2.ohms,
			}
			if !haveBest || better(cand, best) {
				best = cand
				haveBest = true
			}
			if cand.PercentError <= stepTol+constants.FloatTolerance {
				shortlist = append(shortlist, scored{
					Candidate: cand,
					key:       ratioKey{m1: r1.mi, m2: r2.mi, expDiff: r1.exp - r2.exp},
				})
			}
		}
	}
	logger.Debug("search complete",
		zap.String("op", "solver.Solve"),
		zap.Int("feasiblePairs", feasible),
		zap.Int("shortlisted", len(shortlist)),
	)

	if !haveBest {
		return nil, &NoSolutionError{Series: series.Name, Pmax: req.Pmax}
	}

	sort.Slice(shortlist, func(i, j int) bool {
		a, b := shortlist[i], shortlist[j]
		if a.PercentError != b.PercentError {
			return a.PercentError < b.PercentError
		}
		if a.Power != b.Power {
			return a.Power < b.Power
		}
		if a.R1 != b.R1 {
			return a.R1 < b.R1
		}
		return a.R2 < b.R2
	})

	// Decade-scaled copies of a pair share a ratio key; the sort placed the
	// lowest-power copy first, so keep that one.
	seen := make(map[ratioKey]bool, len(shortlist))
	candidates := make([]Candidate, 0, maxResults)
	for _, sc := range shortlist {
		if seen[sc.key] {
			continue
		}
		seen[sc.key] = true
		candidates = append(candidates, sc.Candidate)
		if len(candidates) == maxResults {
			break
		}
	}

	return &Result{
		Best:                 best,
		Candidates:           candidates,
		Series:               series.Name,
		SearchedPairs:        len(values) * len(values),
		FeasiblePairs:        feasible,
		StepTolerancePercent: stepTol,
	}, nil
}

// validate rejects requests outside the solvable domain. The negated
// comparisons also catch NaN parameters.
func (req Request) validate() error {
	if !(req.Vin > 0) {
		return &InvalidInputError{Field: "vin", Reason: fmt.Sprintf("must be positive, got %g", req.Vin)}
	}
	if !(req.VoutTarget > 0) || !(req.VoutTarget < req.Vin) {
		return &InvalidInputError{Field: "vout", Reason: fmt.Sprintf("must lie strictly between 0 and vin (%g), got %g", req.Vin, req.VoutTarget)}
	}
	if !(req.Pmax > 0) {
		return &InvalidInputError{Field: "pmax", Reason: fmt.Sprintf("must be positive, got %g", req.Pmax)}
	}
	if req.MinExponent > req.MaxExponent {
		return &InvalidInputError{Field: "decades", Reason: fmt.Sprintf("min exponent %d exceeds max exponent %d", req.MinExponent, req.MaxExponent)}
	}
	return nil
}

// better reports whether a beats b: lower error, ties broken by lower power,
// then by lower R1 for deterministic output.
func better(a, b Candidate) bool {
	if !mathutil.WithinTolerance(a.AbsError, b.AbsError, constants.FloatTolerance) {
		return a.AbsError < b.AbsError
	}
	if !mathutil.WithinTolerance(a.Power, b.Power, constants.PowerTolerance) {
		return a.Power < b.Power
	}
	return a.R1 < b.R1
}

func candidateResistances(series eseries.Series, minExp, maxExp int) []resistance {
	mants := series.Mantissas()
	values := make([]resistance, 0, len(mants)*(maxExp-minExp+1))
	for exp := minExp; exp <= maxExp; exp++ {
		scale := math.Pow(10, float64(exp))
		for mi, m := range mants {
			values = append(values, resistance{ohms: m * scale, mi: mi, exp: exp})
		}
	}
	return values
}
