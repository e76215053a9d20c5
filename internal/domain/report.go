package domain

// ObjectivityAssessment enumerates the five ordinal buckets a score falls into.
type ObjectivityAssessment string

const (
	AssessmentVeryLow  ObjectivityAssessment = "Very Low"
	AssessmentLow      ObjectivityAssessment = "Low"
	AssessmentModerate ObjectivityAssessment = "Moderate"
	AssessmentHigh     ObjectivityAssessment = "High"
	AssessmentVeryHigh ObjectivityAssessment = "Very High"
)

// ObjectivityLevel is derived locally from the numeric score; only Confidence
// may originate from the model.
type ObjectivityLevel struct {
	Assessment ObjectivityAssessment `json:"assessment"`
	Range      string                `json:"range"`
	Confidence string                `json:"confidence"`
	Definition string                `json:"definitions"`
}

// SubjectiveClaim is one instance of biased language found in the article.
type SubjectiveClaim struct {
	Severity    string `json:"severity"`
	Quote       string `json:"quote"`
	Translation string `json:"translation,omitempty"`
	Analysis    string `json:"analysis,omitempty"`
}

// Omission is a fact or perspective present in external context but missing
// from the article. Relevance/Intentionality/Justification are filled only
// when the comparison stage supplies them.
type Omission struct {
	Description    string `json:"description"`
	SourceURL      string `json:"source_url,omitempty"`
	Relevance      string `json:"relevance,omitempty"`
	Intentionality string `json:"intentionality,omitempty"`
	Justification  string `json:"justification,omitempty"`
}

// EditorialProximity classifies the article against a small set of media
// archetypes (e.g. State-Aligned/Official, Business-Institutional).
type EditorialProximity struct {
	Archetype      string   `json:"archetype"`
	ExampleOutlets []string `json:"example_outlets,omitempty"`
	SharedTraits   []string `json:"shared_traits,omitempty"`
}

// ScoreBreakdown carries the three penalty-scaled sub-scores, each 0-100.
type ScoreBreakdown struct {
	Completeness float64 `json:"completeness"`
	Neutrality   float64 `json:"neutrality"`
	Factuality   float64 `json:"factuality"`
}

// Report is the aggregate returned to callers. Immutable after return.
type Report struct {
	RunID   string `json:"run_id"`
	Locator string `json:"locator,omitempty"`

	IdeologicalDimensions map[string]string            `json:"ideological_dimensions"`
	NarrativeAlignment    []string                     `json:"narrative_alignment"`
	SubjectiveClaims      map[string][]SubjectiveClaim `json:"subjective_claims"`
	NotableOmissions      []Omission                   `json:"notable_omissions"`
	Claims                []Claim                      `json:"claims"`
	EditorialProximity    EditorialProximity           `json:"editorial_proximity"`

	Score            float64          `json:"score"`
	AdjustedScore    *float64         `json:"adjusted_score,omitempty"`
	ScoreBreakdown   *ScoreBreakdown  `json:"score_breakdown,omitempty"`
	ScoreExplanation string           `json:"score_explanation,omitempty"`
	ReaderRisk       string           `json:"reader_risk,omitempty"`
	ObjectivityLevel ObjectivityLevel `json:"objectivity_level"`
}
