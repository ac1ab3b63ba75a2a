package analysis

import (
	"fmt"

	"github.com/AzielCF/az-medical-mcp/domains/billing"
)

const (
	// Temperature is kept low for extraction accuracy.
	Temperature = 0.1

	defaultMaxTokens  = 1000
	extendedMaxTokens = 4096
)

const basicPrompt = `You are a medical AI assistant specializing in basic medical document analysis.

Analyze the provided medical document and extract:
1. **Vital Signs**: blood pressure, heart rate, temperature, respiratory rate, oxygen saturation
2. **Medications**: names, dosages, frequencies
3. **Medical Conditions**: diagnoses, conditions, symptoms
4. **Basic Assessment**: primary concerns and chief complaints

Return the analysis as structured JSON with one key per category.
Favor accuracy and completeness of the basic medical information.`

const comprehensivePrompt = `You are an expert medical AI assistant providing comprehensive clinical analysis.

Perform a thorough analysis of the medical document covering:
1. **Complete Data Extraction**: all vital signs, medications, conditions, lab results
2. **Clinical Assessment**: chief complaint, history of present illness, risk factors
3. **Treatment Analysis**: current medications, dosages, treatment plans
4. **Risk Stratification**: potential complications and risk factors
5. **Clinical Recommendations**: evidence-based suggestions for care optimization
6. **Follow-up Requirements**: monitoring, tests or specialist referrals
7. **Quality Assessment**: data completeness, critical values, urgent findings

Return detailed clinical insights with medical reasoning as structured JSON,
one key per category.`

const complicatedPrompt = `You are a specialist medical AI performing advanced clinical analysis.

WORKFLOW (5 steps):
1. VALIDATE: document type, completeness score (1-10), missing data
2. EXTRACT: vitals, medications, conditions, labs, procedures with context
3. ANALYZE: chief complaint, differentials, risk stratification, comorbidities
4. VERIFY: critical values, drug interactions, guideline adherence
5. RECOMMEND: immediate actions, follow-up, monitoring, referrals

OUTPUT: JSON with the sections document_assessment, clinical_data,
reasoning_analysis, quality_assurance, recommendations, metadata.

Focus on clinical accuracy and actionable insights.`

const batchPrompt = `You are a medical AI assistant optimized for high-volume batch processing.

Extract the key medical information efficiently:
1. **Essential Data**: vital signs, medications, primary conditions
2. **Critical Flags**: urgent findings requiring immediate attention
3. **Summary Statistics**: document type, completeness score
4. **Batch Metrics**: processing efficiency and quality indicators

Keep the analysis concise but complete, as compact structured JSON.`

var systemPrompts = map[billing.TierName]string{
	billing.TierBasic:         basicPrompt,
	billing.TierComprehensive: comprehensivePrompt,
	billing.TierComplicated:   complicatedPrompt,
	billing.TierBatch:         batchPrompt,
}

// SystemPrompt returns the fixed instruction template for tier.
func SystemPrompt(tier string) (string, error) {
	p, ok := systemPrompts[billing.TierName(tier)]
	if !ok {
		return "", billing.InvalidTierError(tier)
	}
	return p, nil
}

// UserPrompt wraps the document text in the delimiters the templates refer to.
func UserPrompt(document string) string {
	return fmt.Sprintf(`Please analyze the following medical document and provide a structured analysis:

=== MEDICAL DOCUMENT ===
%s
=== END DOCUMENT ===

Provide your analysis in JSON format with appropriate medical categories and extracted information.`, document)
}

// MaxTokens is the output token budget for tier.
func MaxTokens(tier string) int {
	switch billing.TierName(tier) {
	case billing.TierComprehensive, billing.TierComplicated:
		return extendedMaxTokens
	default:
		return defaultMaxTokens
	}
}

var (
	comprehensiveFeatures = []string{
		"Complete data extraction",
		"Clinical assessment",
		"Risk stratification",
		"Treatment recommendations",
		"Follow-up planning",
	}
	complicatedFeatures = []string{
		"Multi-step clinical reasoning",
		"Specialist-level analysis",
		"Quality assurance validation",
		"Evidence-based recommendations",
		"Clinical decision support",
		"Risk stratification",
		"Medication interaction analysis",
		"Guideline adherence assessment",
	}
)

// Features lists the analysis features advertised on results for tier, if any.
func Features(tier string) []string {
	switch billing.TierName(tier) {
	case billing.TierComprehensive:
		return append([]string(nil), comprehensiveFeatures...)
	case billing.TierComplicated:
		return append([]string(nil), complicatedFeatures...)
	default:
		return nil
	}
}
