package rank

// Measure selects the importance formula applied to the per-attribute
// entropy pair. With class entropy H(C), attribute entropy H(A) and joint
// entropy H(A,C):
//
//	InfoGain:  H(C) + H(A) - H(A,C)
//	GainRatio: InfoGain / H(A)
//	SymUncert: 2*InfoGain / (H(A) + H(C))
//
// The normalized measures divide by an attribute-dependent denominator and
// are not finite when it is zero (a constant attribute, or a constant
// attribute paired with a constant class). Such values are surfaced as-is,
// never clamped or substituted; see Result.Advisories. Floating-point
// rounding may likewise yield a tiny negative InfoGain for a perfectly
// predictive attribute, which is accepted.
type Measure int

const (
	InfoGain Measure = iota
	GainRatio
	SymUncert
)

// String returns the measure name as used by the reference interfaces.
func (m Measure) String() string {
	switch m {
	case InfoGain:
		return "infogain"
	case GainRatio:
		return "gainratio"
	case SymUncert:
		return "symuncert"
	default:
		return "unknown"
	}
}

func (m Measure) valid() bool {
	return m >= InfoGain && m <= SymUncert
}

// score combines the class entropy hc with one attribute's marginal
// entropy ha and joint entropy hac.
func (m Measure) score(hc, ha, hac float64) float64 {
	ig := hc + ha - hac
	switch m {
	case GainRatio:
		return ig / ha
	case SymUncert:
		return 2 * ig / (ha + hc)
	default:
		return ig
	}
}
