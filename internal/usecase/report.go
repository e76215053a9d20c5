package usecase

import (
	"encoding/json"
	"strings"

	"BiasDetector/internal/config"
	"BiasDetector/internal/domain"
)

// assembleReport merges the synthesis output and the normalizer into the
// final report. Missing or mistyped fields default; the assembler never
// fails a run over report shape.
func assembleReport(runID, locator, text string, synth StageResult, scoring config.ScoringStrategy) *domain.Report {
	claims := claimsFrom(synth.List("claims"))
	subjective := subjectiveFrom(synth.Object("subjective_claims"))

	report := &domain.Report{
		RunID:                 runID,
		Locator:               locator,
		IdeologicalDimensions: dimensionsFrom(synth.Object("ideological_dimensions")),
		NarrativeAlignment:    synth.Strings("narrative_alignment"),
		SubjectiveClaims:      subjective,
		NotableOmissions:      omissionsFrom(synth.List("notable_omissions")),
		Claims:                claims,
		EditorialProximity:    proximityFrom(synth.Object("editorial_proximity")),
		Score:                 synth.Float("score", defaultScore),
		ScoreExplanation:      synth.Str("score_explanation"),
		ReaderRisk:            synth.Str("reader_risk"),
	}

	if breakdown, ok := breakdownFrom(synth.Object("score_breakdown")); ok {
		report.ScoreBreakdown = &breakdown
	}

	confidence := StageResult(synth.Object("objectivity_level")).Str("confidence")

	if scoring == config.ScoringLexical {
		lexical := ComputeLexicalScore(claims, subjective)
		report.Score = lexical.Score
		report.ScoreExplanation = lexical.Explanation
		if strings.TrimSpace(confidence) == "" {
			signals := len(claims)
			for _, items := range subjective {
				signals += len(items)
			}
			confidence = lexicalConfidence(len(text), signals)
		}
	} else if adjusted, ok := synth.FloatOK("adjusted_score"); ok {
		// Genre weighting may tighten the score, never loosen it.
		if adjusted > report.Score {
			adjusted = report.Score
		}
		report.AdjustedScore = &adjusted
	}

	report.ObjectivityLevel = NormalizeLevel(report.Score, confidence)
	return report
}

func dimensionsFrom(obj map[string]any) map[string]string {
	out := make(map[string]string, len(obj))
	for key, value := range obj {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}

func subjectiveFrom(obj map[string]any) map[string][]domain.SubjectiveClaim {
	out := make(map[string][]domain.SubjectiveClaim, len(obj))
	for technique, value := range obj {
		items, ok := value.([]any)
		if !ok {
			continue
		}
		claims := make([]domain.SubjectiveClaim, 0, len(items))
		for _, item := range items {
			claims = append(claims, subjectiveClaimFrom(item))
		}
		out[technique] = claims
	}
	return out
}

func subjectiveClaimFrom(item any) domain.SubjectiveClaim {
	switch v := item.(type) {
	case map[string]any:
		res := StageResult(v)
		return domain.SubjectiveClaim{
			Severity:    severityOrMild(res.Str("severity")),
			Quote:       res.Str("quote"),
			Translation: res.Str("translation"),
			Analysis:    res.Str("analysis"),
		}
	case string:
		severity, quote := splitSeverityMarker(v)
		return domain.SubjectiveClaim{Severity: severity, Quote: quote}
	default:
		return domain.SubjectiveClaim{Severity: "Mild"}
	}
}

// splitSeverityMarker handles the string fallback shape "[Severe] quote".
func splitSeverityMarker(raw string) (severity, quote string) {
	lower := strings.ToLower(raw)
	for _, label := range []string{"Severe", "Moderate", "Mild"} {
		marker := "[" + strings.ToLower(label) + "]"
		if idx := strings.Index(lower, marker); idx >= 0 {
			cleaned := raw[:idx] + raw[idx+len(marker):]
			return label, strings.TrimSpace(cleaned)
		}
	}
	return "Mild", strings.TrimSpace(raw)
}

func severityOrMild(severity string) string {
	if strings.TrimSpace(severity) == "" {
		return "Mild"
	}
	return severity
}

func omissionsFrom(items []any) []domain.Omission {
	out := make([]domain.Omission, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, domain.Omission{Description: v})
		case map[string]any:
			res := StageResult(v)
			description := res.Str("description")
			if description == "" {
				description = res.Str("omission")
			}
			out = append(out, domain.Omission{
				Description:    description,
				SourceURL:      res.Str("source_url"),
				Relevance:      res.Str("relevance"),
				Intentionality: res.Str("intentionality"),
				Justification:  res.Str("justification"),
			})
		}
	}
	return out
}

// claimsFrom accepts both claim shapes: bare strings from early extraction
// and verification objects from the comparison stage.
func claimsFrom(items []any) []domain.Claim {
	out := make([]domain.Claim, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var claim domain.Claim
		if err := json.Unmarshal(raw, &claim); err != nil {
			continue
		}
		if claim.Text != "" {
			out = append(out, claim)
		}
	}
	return out
}

func proximityFrom(obj map[string]any) domain.EditorialProximity {
	res := StageResult(obj)
	return domain.EditorialProximity{
		Archetype:      res.Str("archetype"),
		ExampleOutlets: res.Strings("example_outlets"),
		SharedTraits:   res.Strings("shared_traits"),
	}
}

func breakdownFrom(obj map[string]any) (domain.ScoreBreakdown, bool) {
	if len(obj) == 0 {
		return domain.ScoreBreakdown{}, false
	}
	res := StageResult(obj)
	return domain.ScoreBreakdown{
		Completeness: res.Float("completeness", 0),
		Neutrality:   res.Float("neutrality", 0),
		Factuality:   res.Float("factuality", 0),
	}, true
}
