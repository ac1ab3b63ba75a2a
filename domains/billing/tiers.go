package billing

import (
	"fmt"

	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
)

type TierName string

const (
	TierBasic         TierName = "basic"
	TierComprehensive TierName = "comprehensive"
	TierBatch         TierName = "batch"
	TierComplicated   TierName = "complicated"
)

// Tier is a named service level: per-document price (USD) and description.
type Tier struct {
	Name        TierName `json:"-"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
}

var tierOrder = []TierName{TierBasic, TierComprehensive, TierBatch, TierComplicated}

var tiers = map[TierName]Tier{
	TierBasic: {
		Name:        TierBasic,
		Price:       0.10,
		Description: "Basic SOAP analysis - vital signs, medications, basic conditions",
	},
	TierComprehensive: {
		Name:        TierComprehensive,
		Price:       0.50,
		Description: "Full medical record analysis - detailed insights, recommendations",
	},
	TierBatch: {
		Name:        TierBatch,
		Price:       0.05,
		Description: "Bulk processing per document - optimized for multiple files",
	},
	TierComplicated: {
		Name:        TierComplicated,
		Price:       0.75,
		Description: "Multi-step clinical reasoning with quality assurance and specialist-level analysis",
	},
}

// TierNames returns the valid tier names in catalog order.
func TierNames() []string {
	names := make([]string, len(tierOrder))
	for i, n := range tierOrder {
		names[i] = string(n)
	}
	return names
}

// Tiers returns a copy of the catalog keyed by tier name.
func Tiers() map[string]Tier {
	out := make(map[string]Tier, len(tiers))
	for name, t := range tiers {
		out[string(name)] = t
	}
	return out
}

// LookupTier resolves name against the catalog. Unknown names are a validation
// error listing the valid tiers, never a default.
func LookupTier(name string) (Tier, error) {
	t, ok := tiers[TierName(name)]
	if !ok {
		return Tier{}, InvalidTierError(name)
	}
	return t, nil
}

// InvalidTierError builds the validation error returned for an unknown tier.
func InvalidTierError(name string) pkgError.DetailedError {
	valid := TierNames()
	msg := fmt.Sprintf("Invalid analysis type %q. Available types: %v", name, valid)
	return pkgError.WithDetails(pkgError.ValidationError(msg), map[string]any{
		"valid_tiers": valid,
	})
}
