package usecase

import (
	"fmt"
	"strings"

	"BiasDetector/internal/domain"
)

const (
	// defaultScore is the neutral midpoint used when the synthesis stage
	// omits its score or the field is unparseable.
	defaultScore = 50.0
	// defaultConfidence fills in when the model supplies none.
	defaultConfidence = "Medium"
)

// NormalizeLevel derives the ObjectivityLevel from the numeric score.
// Assessment, range and definition are always recomputed locally; the model
// is not trusted for categorical consistency. Confidence is the exception:
// preserved verbatim when present, defaulting otherwise.
func NormalizeLevel(score float64, confidence string) domain.ObjectivityLevel {
	assessment, rangeLabel, definition := bucketScore(score)
	if strings.TrimSpace(confidence) == "" {
		confidence = defaultConfidence
	}
	return domain.ObjectivityLevel{
		Assessment: assessment,
		Range:      rangeLabel,
		Confidence: confidence,
		Definition: definition,
	}
}

// bucketScore maps the 0-100 score into the five ordinal buckets with
// inclusive upper bounds at 20/40/60/80.
func bucketScore(s float64) (domain.ObjectivityAssessment, string, string) {
	switch {
	case s <= 20:
		return domain.AssessmentVeryLow, "0 – 20",
			"Dominated by rhetoric, emotive framing, and evaluative language"
	case s <= 40:
		return domain.AssessmentLow, "21 – 40",
			"Frequent subjective framing; facts are present but subordinated"
	case s <= 60:
		return domain.AssessmentModerate, "41 – 60",
			"Mix of factual reporting and interpretative language"
	case s <= 80:
		return domain.AssessmentHigh, "61 – 80",
			"Largely factual with limited rhetorical framing"
	default:
		return domain.AssessmentVeryHigh, "81 – 100",
			"Primarily descriptive; minimal evaluative or emotive language"
	}
}

// LexicalScore is the locally computed alternative to the model's
// self-reported score.
type LexicalScore struct {
	Score       float64
	Wf          int
	WsWeighted  float64
	Explanation string
}

// ComputeLexicalScore applies score = Wf / (Wf + Σ(wc(quote) × intensity)) × 100,
// where Wf is the total word count across factual-claim texts and intensity
// weights quote severity. A zero denominator (empty article, no claims)
// yields exactly 0.0.
func ComputeLexicalScore(claims []domain.Claim, subjective map[string][]domain.SubjectiveClaim) LexicalScore {
	wf := 0
	for _, claim := range claims {
		wf += wordCount(claim.Text)
	}

	wsWeighted := 0.0
	for _, items := range subjective {
		for _, item := range items {
			wsWeighted += float64(wordCount(item.Quote)) * severityIntensity(item.Severity)
		}
	}

	denominator := float64(wf) + wsWeighted
	score := 0.0
	if denominator > 0 {
		score = float64(wf) / denominator * 100
	}

	return LexicalScore{
		Score:      score,
		Wf:         wf,
		WsWeighted: wsWeighted,
		Explanation: fmt.Sprintf("Wf (%d) / (Wf (%d) + Weighted Ws (%g)) * 100",
			wf, wf, wsWeighted),
	}
}

// severityIntensity maps severity labels to weights by case-insensitive
// substring match; unrecognized or absent labels count as Mild.
func severityIntensity(severity string) float64 {
	s := strings.ToLower(severity)
	switch {
	case strings.Contains(s, "severe"):
		return 2.0
	case strings.Contains(s, "moderate"):
		return 1.5
	default:
		return 1.0
	}
}

// lexicalConfidence approximates confidence from article length and the
// number of extracted signals when the model supplied none.
func lexicalConfidence(textLen, signalCount int) string {
	switch {
	case textLen > 1500 && signalCount > 5:
		return "High"
	case textLen < 500 || signalCount < 3:
		return "Low"
	default:
		return "Medium"
	}
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
