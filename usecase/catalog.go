package usecase

import (
	"context"

	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	domainCatalog "github.com/AzielCF/az-medical-mcp/domains/catalog"
)

type catalogService struct {
	version string
}

func NewCatalogService(version string) domainCatalog.ICatalogUsecase {
	return &catalogService{version: version}
}

func (service *catalogService) Services(_ context.Context) domainCatalog.Services {
	return domainCatalog.Services{
		ServiceCatalog: domainCatalog.ServiceCatalog{
			Name:         "Medical Document Analysis Service",
			Version:      service.version,
			Description:  "AI-powered medical document analysis and information extraction",
			BillingTiers: domainBilling.Tiers(),
			Features: map[string][]string{
				string(domainBilling.TierBasic): {
					"Vital signs extraction",
					"Medication identification",
					"Basic condition recognition",
					"SOAP note parsing",
				},
				string(domainBilling.TierComprehensive): {
					"All basic features",
					"Detailed clinical insights",
					"Risk factor analysis",
					"Treatment recommendations",
					"Follow-up scheduling suggestions",
				},
				string(domainBilling.TierBatch): {
					"Bulk document processing",
					"Volume discounts",
					"Batch reporting",
					"API integration support",
				},
				string(domainBilling.TierComplicated): domainAnalysis.Features(string(domainBilling.TierComplicated)),
			},
			SupportedDocumentTypes: []string{
				"SOAP notes",
				"Lab reports",
				"Prescription summaries",
				"Patient histories",
				"Discharge summaries",
			},
			Compliance: []string{
				"HIPAA compliant processing",
				"PHI data protection",
				"Audit trail logging",
			},
		},
		SampleUsage: map[string]string{
			"analyze_document": "analyze_medical_document('Patient presents with...', 'comprehensive')",
			"get_patient_info": "get_patient_summary('patient_001')",
			"calculate_costs":  "calculate_billing('basic', 5, 'premium')",
			"paid_analysis":    "process_paid_analysis('pi_...', 'Patient presents with...')",
		},
	}
}
