package pricing

import "esquadrias_xpto/internal/domain/entities"

// Prices are decimal BRL amounts (float64 end-to-end, like the rest of the
// service). The width tier splits at 89 cm inclusive; janela has a single
// flat base regardless of width.
const (
	widthTierThresholdCM = 89

	completeDoorNarrowBase = 480
	completeDoorWideBase   = 1000
	doorLeafNarrowBase     = 200
	doorLeafWideBase       = 800
	windowBase             = 1200

	// Area surcharge: 100 BRL per m². Dimensions arrive in centimeters.
	areaRatePerSquareMeter = 100

	installationSurcharge = 120
	lockSurcharge         = 75
	hingeSurcharge        = 75
)

// Spec is the subset of a quote that the price depends on.
type Spec struct {
	Type              entities.ProductType
	HeightCM          float64
	WidthCM           float64
	NeedsInstallation bool
	LockIncluded      bool
	HingeIncluded     bool
}

// Base returns the table price for a product type at the given width, or 0
// when the type is empty or unknown.
func Base(t entities.ProductType, widthCM float64) float64 {
	narrow := widthCM <= widthTierThresholdCM
	switch t {
	case entities.ProductCompleteDoor:
		if narrow {
			return completeDoorNarrowBase
		}
		return completeDoorWideBase
	case entities.ProductDoorLeaf:
		if narrow {
			return doorLeafNarrowBase
		}
		return doorLeafWideBase
	case entities.ProductWindow:
		return windowBase
	}
	return 0
}

// Total computes the full quote price: base table price, area surcharge
// (height × width at 100 BRL/m²) and the option surcharges. Installation
// applies to every type; lock and hinge only to folha_de_porta.
//
// An empty or unknown type prices to 0 with no surcharges, so clearing the
// type on the form resets the displayed total.
func Total(s Spec) float64 {
	base := Base(s.Type, s.WidthCM)
	if base == 0 {
		return 0
	}

	total := base + s.HeightCM*s.WidthCM/10000*areaRatePerSquareMeter

	if s.NeedsInstallation {
		total += installationSurcharge
	}
	if s.Type == entities.ProductDoorLeaf {
		if s.LockIncluded {
			total += lockSurcharge
		}
		if s.HingeIncluded {
			total += hingeSurcharge
		}
	}
	return total
}
