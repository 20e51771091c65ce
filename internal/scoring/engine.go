package scoring

import "math"

const (
	MinAnswer     = 1
	MaxAnswer     = 5
	NeutralAnswer = 3

	// SaturationMargin is the largest dichotomy margin an 8-question axis can reach.
	SaturationMargin = 16.0
	BlendCoefficient = 1.2
	MaxScore         = 10.0
)

// Question is a scorable statement. Weight is +1 or -1.
type Question struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	Axis   AxisKey `json:"axis"`
	Weight int     `json:"weight"`
}

// Answers maps question id to a Likert value in [1,5]. Unanswered ids are absent.
type Answers map[string]int

// Margins holds one signed total per axis, all twelve keys present.
type Margins map[AxisKey]float64

// FactorValues holds one value per factor axis.
type FactorValues map[AxisKey]float64

// Contribution maps one answer and weight to a signed step.
func Contribution(answer, weight int) int {
	var step int
	switch base := answer - NeutralAnswer; {
	case base <= -2:
		step = -2
	case base == -1:
		step = -1
	case base == 0:
		step = 0
	case base == 1:
		step = 1
	default:
		step = 2
	}
	return step * weight
}

// NewMargins returns zeroed margins for every axis.
func NewMargins() Margins {
	m := make(Margins, len(Dichotomies)+len(Factors))
	for _, k := range AxisKeys() {
		m[k] = 0
	}
	return m
}

// Aggregate folds the answered questions of the working set into per-axis margins.
func Aggregate(questions []Question, answers Answers) Margins {
	margins := NewMargins()
	for _, q := range questions {
		a, ok := answers[q.ID]
		if !ok {
			continue
		}
		if _, known := margins[q.Axis]; !known {
			continue
		}
		margins[q.Axis] += float64(Contribution(a, q.Weight))
	}
	return margins
}

// AxisStrength describes how decided one dichotomy is.
type AxisStrength struct {
	Axis   AxisKey `json:"axis"`
	Pole   Pole    `json:"pole"`
	Margin float64 `json:"margin"`
	Label  string  `json:"label"`
}

// TypeResult is the four-letter code plus per-axis strengths in code order.
type TypeResult struct {
	Code      string         `json:"code"`
	Strengths []AxisStrength `json:"strengths"`
}

const (
	StrengthVeryStrong = "very strong"
	StrengthStrong     = "strong"
	StrengthModerate   = "moderate"
	StrengthSlight     = "slight"
)

// StrengthLabel buckets |margin|.
func StrengthLabel(margin float64) string {
	abs := math.Abs(margin)
	switch {
	case abs >= 10:
		return StrengthVeryStrong
	case abs >= 6:
		return StrengthStrong
	case abs >= 3:
		return StrengthModerate
	default:
		return StrengthSlight
	}
}

// Classify derives the type code. A zero margin resolves to the agree pole.
func Classify(margins Margins) TypeResult {
	res := TypeResult{Strengths: make([]AxisStrength, 0, len(Dichotomies))}
	code := make([]byte, 0, len(Dichotomies))
	for _, d := range Dichotomies {
		m := margins[d.Key]
		pole := d.PoleFor(m)
		code = append(code, string(pole)...)
		res.Strengths = append(res.Strengths, AxisStrength{
			Axis:   d.Key,
			Pole:   pole,
			Margin: m,
			Label:  StrengthLabel(m),
		})
	}
	res.Code = string(code)
	return res
}

// Normalize converts factor margins into a percentage mix and a 0-10 base score.
// With no factor signal every value is zero.
func Normalize(margins Margins) (mix, base FactorValues) {
	mix = make(FactorValues, len(Factors))
	base = make(FactorValues, len(Factors))

	var total float64
	for _, f := range Factors {
		total += math.Abs(margins[f.Key])
	}
	for _, f := range Factors {
		if total == 0 {
			mix[f.Key] = 0
			base[f.Key] = 0
			continue
		}
		pct := Round1(math.Abs(margins[f.Key]) / total * 100)
		mix[f.Key] = pct
		base[f.Key] = Round1(pct / 10)
	}
	return mix, base
}

// Influence is one weighted edge from a pole to a factor.
type Influence struct {
	Factor AxisKey
	Weight float64
}

// InfluenceTable lists, per pole, the factors its leaning pushes up.
var InfluenceTable = map[Pole][]Influence{
	PoleE: {{AxisLiquidity, 0.8}, {AxisMomentum, 0.7}, {AxisGrowth, 0.3}},
	PoleI: {{AxisQuality, 0.6}, {AxisLowVol, 0.6}, {AxisValue, 0.4}},
	PoleS: {{AxisValue, 0.6}, {AxisDividend, 0.6}, {AxisQuality, 0.4}},
	PoleN: {{AxisGrowth, 0.8}, {AxisSize, 0.5}, {AxisMomentum, 0.4}},
	PoleT: {{AxisQuality, 0.5}, {AxisValue, 0.5}, {AxisMomentum, 0.3}},
	PoleF: {{AxisDividend, 0.5}, {AxisLowVol, 0.5}, {AxisSize, 0.3}},
	PoleJ: {{AxisLowVol, 0.6}, {AxisDividend, 0.5}, {AxisQuality, 0.4}},
	PoleP: {{AxisMomentum, 0.6}, {AxisLiquidity, 0.5}, {AxisGrowth, 0.5}},
}

// AxisIntensity is min(16, |margin|) / 16.
func AxisIntensity(margin float64) float64 {
	return math.Min(SaturationMargin, math.Abs(margin)) / SaturationMargin
}

// Blend seeds from the base scores, adds the influence of every favoured pole,
// then clamps to [0,10] and rounds.
func Blend(base FactorValues, margins Margins) FactorValues {
	acc := make(FactorValues, len(Factors))
	for _, f := range Factors {
		acc[f.Key] = base[f.Key]
	}

	for _, d := range Dichotomies {
		m := margins[d.Key]
		strength := AxisIntensity(m)
		for _, inf := range InfluenceTable[d.PoleFor(m)] {
			acc[inf.Factor] += inf.Weight * strength * BlendCoefficient
		}
	}

	for _, f := range Factors {
		acc[f.Key] = Round1(clamp(acc[f.Key], 0, MaxScore))
	}
	return acc
}

// Result is the full engine output for one answer mapping.
type Result struct {
	Margins  Margins      `json:"margins"`
	Type     TypeResult   `json:"type"`
	Mix      FactorValues `json:"mix"`
	Base     FactorValues `json:"base"`
	Blended  FactorValues `json:"blended"`
	Answered int          `json:"answered"`
	Total    int          `json:"total"`
}

// Scores picks the blended or unblended factor scores.
func (r Result) Scores(blend bool) FactorValues {
	if blend {
		return r.Blended
	}
	return r.Base
}

// Evaluate runs the whole pipeline over the working set.
func Evaluate(questions []Question, answers Answers) Result {
	margins := Aggregate(questions, answers)
	mix, base := Normalize(margins)

	answered := 0
	for _, q := range questions {
		if _, ok := answers[q.ID]; ok {
			answered++
		}
	}

	return Result{
		Margins:  margins,
		Type:     Classify(margins),
		Mix:      mix,
		Base:     base,
		Blended:  Blend(base, margins),
		Answered: answered,
		Total:    len(questions),
	}
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
