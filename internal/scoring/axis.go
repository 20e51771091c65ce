package scoring

// AxisKey identifies one of the twelve scored axes.
type AxisKey string

const (
	AxisEI AxisKey = "EI"
	AxisSN AxisKey = "SN"
	AxisTF AxisKey = "TF"
	AxisJP AxisKey = "JP"

	AxisValue     AxisKey = "VALUE"
	AxisGrowth    AxisKey = "GROWTH"
	AxisMomentum  AxisKey = "MOMENTUM"
	AxisQuality   AxisKey = "QUALITY"
	AxisLowVol    AxisKey = "LOWVOL"
	AxisSize      AxisKey = "SIZE"
	AxisDividend  AxisKey = "DIVIDEND"
	AxisLiquidity AxisKey = "LIQUIDITY"
)

// Family discriminates bipolar dichotomies from unipolar factors.
type Family uint8

const (
	FamilyDichotomy Family = iota + 1
	FamilyFactor
)

func (f Family) String() string {
	switch f {
	case FamilyDichotomy:
		return "dichotomy"
	case FamilyFactor:
		return "factor"
	default:
		return "unknown"
	}
}

// Pole is one letter of the four-letter type code.
type Pole string

const (
	PoleE Pole = "E"
	PoleI Pole = "I"
	PoleS Pole = "S"
	PoleN Pole = "N"
	PoleT Pole = "T"
	PoleF Pole = "F"
	PoleJ Pole = "J"
	PoleP Pole = "P"
)

// Axis is implemented by Dichotomy and Factor only.
type Axis interface {
	AxisKey() AxisKey
	Family() Family
	isAxis()
}

// Dichotomy is a bipolar axis. Agree is the pole a weight of +1 supports and
// the pole picked when the margin is zero or positive.
type Dichotomy struct {
	Key      AxisKey
	Name     string
	Agree    Pole
	Disagree Pole
}

func (d Dichotomy) AxisKey() AxisKey { return d.Key }
func (d Dichotomy) Family() Family   { return FamilyDichotomy }
func (Dichotomy) isAxis()            {}

// PoleFor returns the favoured pole for a margin.
func (d Dichotomy) PoleFor(margin float64) Pole {
	if margin >= 0 {
		return d.Agree
	}
	return d.Disagree
}

// Factor is a unipolar style axis.
type Factor struct {
	Key  AxisKey
	Name string
}

func (f Factor) AxisKey() AxisKey { return f.Key }
func (f Factor) Family() Family   { return FamilyFactor }
func (Factor) isAxis()            {}

// Dichotomies in type-code order.
var Dichotomies = [4]Dichotomy{
	{Key: AxisEI, Name: "Extraversion / Introversion", Agree: PoleE, Disagree: PoleI},
	{Key: AxisSN, Name: "Sensing / Intuition", Agree: PoleS, Disagree: PoleN},
	{Key: AxisTF, Name: "Thinking / Feeling", Agree: PoleT, Disagree: PoleF},
	{Key: AxisJP, Name: "Judging / Perceiving", Agree: PoleJ, Disagree: PoleP},
}

// Factors in report order.
var Factors = [8]Factor{
	{Key: AxisValue, Name: "Value"},
	{Key: AxisGrowth, Name: "Growth"},
	{Key: AxisMomentum, Name: "Momentum"},
	{Key: AxisQuality, Name: "Quality"},
	{Key: AxisLowVol, Name: "Low Volatility"},
	{Key: AxisSize, Name: "Size"},
	{Key: AxisDividend, Name: "Dividend"},
	{Key: AxisLiquidity, Name: "Liquidity"},
}

var axisIndex = func() map[AxisKey]Axis {
	m := make(map[AxisKey]Axis, len(Dichotomies)+len(Factors))
	for _, d := range Dichotomies {
		m[d.Key] = d
	}
	for _, f := range Factors {
		m[f.Key] = f
	}
	return m
}()

// LookupAxis resolves a key to its axis variant.
func LookupAxis(key AxisKey) (Axis, bool) {
	a, ok := axisIndex[key]
	return a, ok
}

// AxisKeys returns all twelve keys, dichotomies first.
func AxisKeys() []AxisKey {
	keys := make([]AxisKey, 0, len(Dichotomies)+len(Factors))
	for _, d := range Dichotomies {
		keys = append(keys, d.Key)
	}
	for _, f := range Factors {
		keys = append(keys, f.Key)
	}
	return keys
}
