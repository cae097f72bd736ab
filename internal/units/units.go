// Package units converts quantities between compatible units of measure.
// Three families are supported: volume (base ml), mass (base g) and count
// (base each). Bar stock is overwhelmingly liquid, so "oz" means fluid
// ounce here; dry weight uses g/kg/lb.
package units

import (
	"fmt"
	"strings"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

type family string

const (
	familyVolume family = "volume"
	familyMass   family = "mass"
	familyCount  family = "count"
)

type unitDef struct {
	family family
	toBase float64
}

var unitTable = map[string]unitDef{
	// volume (base = ml)
	"ml":    {family: familyVolume, toBase: 1},
	"cl":    {family: familyVolume, toBase: 10},
	"l":     {family: familyVolume, toBase: 1000},
	"oz":    {family: familyVolume, toBase: 29.5735295625},
	"fl-oz": {family: familyVolume, toBase: 29.5735295625},
	"tsp":   {family: familyVolume, toBase: 4.92892159375},
	"tbsp":  {family: familyVolume, toBase: 14.78676478125},
	"cup":   {family: familyVolume, toBase: 236.5882365},
	"pt":    {family: familyVolume, toBase: 473.176473},
	"qt":    {family: familyVolume, toBase: 946.352946},
	"gal":   {family: familyVolume, toBase: 3785.411784},
	"dash":  {family: familyVolume, toBase: 0.92},
	"splash": {
		family: familyVolume,
		toBase: 5.0,
	},

	// mass (base = g)
	"mg": {family: familyMass, toBase: 0.001},
	"g":  {family: familyMass, toBase: 1},
	"kg": {family: familyMass, toBase: 1000},
	"lb": {family: familyMass, toBase: 453.59237},

	// count (base = each)
	"each":  {family: familyCount, toBase: 1},
	"unit":  {family: familyCount, toBase: 1},
	"count": {family: familyCount, toBase: 1},
	"piece": {family: familyCount, toBase: 1},
	"dozen": {family: familyCount, toBase: 12},
}

// aliases maps common spelling variants onto table keys
var aliases = map[string]string{
	"milliliter":  "ml",
	"milliliters": "ml",
	"liter":       "l",
	"liters":      "l",
	"litre":       "l",
	"litres":      "l",
	"ounce":       "oz",
	"ounces":      "oz",
	"fl oz":       "fl-oz",
	"floz":        "fl-oz",
	"fluid ounce": "fl-oz",
	"gram":        "g",
	"grams":       "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"lbs":         "lb",
	"pound":       "lb",
	"pounds":      "lb",
	"ea":          "each",
	"pc":          "piece",
	"pcs":         "piece",
	"units":       "unit",
	"pieces":      "piece",
	"teaspoon":    "tsp",
	"tablespoon":  "tbsp",
	"cups":        "cup",
	"quart":       "qt",
	"gallon":      "gal",
	"pint":        "pt",
}

// Normalize canonicalizes a unit name (lowercased, trimmed, alias-resolved).
// The returned name is not guaranteed to be a known unit.
func Normalize(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := aliases[u]; ok {
		return canonical
	}
	return u
}

// Convert converts a quantity between two units of the same measurement
// family. Same-unit conversion is the identity and succeeds even for units
// the table does not know. Unknown units return domain.ErrUnknownUnit and
// cross-family conversions return domain.ErrIncompatibleUnits; callers
// decide whether to surface or degrade.
func Convert(quantity float64, fromUnit, toUnit string) (float64, error) {
	from := Normalize(fromUnit)
	to := Normalize(toUnit)

	if from == to {
		return quantity, nil
	}

	fromDef, ok := unitTable[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, fromUnit)
	}
	toDef, ok := unitTable[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, toUnit)
	}

	if fromDef.family != toDef.family {
		return 0, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			domain.ErrIncompatibleUnits, from, fromDef.family, to, toDef.family)
	}

	return quantity * fromDef.toBase / toDef.toBase, nil
}
