package catalog

import (
	"context"

	"github.com/AzielCF/az-medical-mcp/domains/billing"
)

type ServiceCatalog struct {
	Name                   string                  `json:"name"`
	Version                string                  `json:"version"`
	Description            string                  `json:"description"`
	BillingTiers           map[string]billing.Tier `json:"billing_tiers"`
	Features               map[string][]string     `json:"features"`
	SupportedDocumentTypes []string                `json:"supported_document_types"`
	Compliance             []string                `json:"compliance"`
}

// Services is the static description returned by get_available_services.
type Services struct {
	ServiceCatalog ServiceCatalog    `json:"service_catalog"`
	SampleUsage    map[string]string `json:"sample_usage"`
}

type ICatalogUsecase interface {
	Services(ctx context.Context) Services
}
