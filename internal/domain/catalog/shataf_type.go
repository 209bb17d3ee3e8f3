package catalog

// PricingMode is the capability tag carried by every cutting style. It
// decides how the cutting price of a line is obtained.
type PricingMode string

const (
	// PricingModeManualInput means the operator supplies the cutting price
	PricingModeManualInput PricingMode = "MANUAL_INPUT"
	// PricingModeAreaBased means the style is priced per square meter of glass
	PricingModeAreaBased PricingMode = "AREA_BASED"
	// PricingModeFormulaBased means the style is priced per meter of computed cut length
	PricingModeFormulaBased PricingMode = "FORMULA_BASED"
)

// IsValid checks if the pricing mode is a known capability
func (m PricingMode) IsValid() bool {
	switch m {
	case PricingModeManualInput, PricingModeAreaBased, PricingModeFormulaBased:
		return true
	}
	return false
}

// ShatafType is the closed enumeration of cutting/edge-finishing styles.
// Every variant maps to exactly one PricingMode; adding a style forces a
// decision in Mode below.
type ShatafType string

const (
	ShatafLaser      ShatafType = "LASER"       // laser edge, operator-priced
	ShatafMotashafat ShatafType = "MOTASHAFAT"  // chamfered edge, operator-priced
	ShatafSanding    ShatafType = "SANDING"     // sanded face, priced per m2
	ShatafGharaz     ShatafType = "GHARAZ"      // drilled pattern, priced per m2
	ShatafKharazan   ShatafType = "KHARAZAN"    // beveled edge, priced per cut meter
	ShatafNormal     ShatafType = "NORMAL"      // plain polished edge, priced per cut meter
	ShatafDouble     ShatafType = "DOUBLE"      // double polished edge, priced per cut meter
	ShatafWheelCut   ShatafType = "WHEEL_CUT"   // circular wheel cut, priced per cut meter
)

// AllShatafTypes lists every cutting style in display order
func AllShatafTypes() []ShatafType {
	return []ShatafType{
		ShatafLaser, ShatafMotashafat,
		ShatafSanding, ShatafGharaz,
		ShatafKharazan, ShatafNormal, ShatafDouble, ShatafWheelCut,
	}
}

// IsValid checks if the style is a known cutting style
func (s ShatafType) IsValid() bool {
	switch s {
	case ShatafLaser, ShatafMotashafat, ShatafSanding, ShatafGharaz,
		ShatafKharazan, ShatafNormal, ShatafDouble, ShatafWheelCut:
		return true
	}
	return false
}

// String returns the string representation of the style
func (s ShatafType) String() string {
	return string(s)
}

// Mode returns the pricing-mode capability of the style. Unknown styles
// return an empty mode, which the pricing dispatch rejects.
func (s ShatafType) Mode() PricingMode {
	switch s {
	case ShatafLaser, ShatafMotashafat:
		return PricingModeManualInput
	case ShatafSanding, ShatafGharaz:
		return PricingModeAreaBased
	case ShatafKharazan, ShatafNormal, ShatafDouble, ShatafWheelCut:
		return PricingModeFormulaBased
	}
	return ""
}

// RequiresRate returns true if pricing the style needs a rate-table lookup
func (s ShatafType) RequiresRate() bool {
	mode := s.Mode()
	return mode == PricingModeAreaBased || mode == PricingModeFormulaBased
}

// RequiresManualPrice returns true if the operator must supply the price
func (s ShatafType) RequiresManualPrice() bool {
	return s.Mode() == PricingModeManualInput
}
