package usecase

import (
	"testing"

	"BiasDetector/internal/domain"
)

func TestNormalizeLevelBucketBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score float64
		want  domain.ObjectivityAssessment
	}{
		{0.0, domain.AssessmentVeryLow},
		{20.0, domain.AssessmentVeryLow},
		{20.1, domain.AssessmentLow},
		{40.0, domain.AssessmentLow},
		{40.1, domain.AssessmentModerate},
		{60.0, domain.AssessmentModerate},
		{60.1, domain.AssessmentHigh},
		{80.0, domain.AssessmentHigh},
		{80.1, domain.AssessmentVeryHigh},
		{100.0, domain.AssessmentVeryHigh},
	}

	for _, tc := range cases {
		level := NormalizeLevel(tc.score, "")
		if level.Assessment != tc.want {
			t.Fatalf("score %.1f: expected %q, got %q", tc.score, tc.want, level.Assessment)
		}
		if level.Definition == "" || level.Range == "" {
			t.Fatalf("score %.1f: missing range or definition", tc.score)
		}
	}
}

func TestNormalizeLevelConfidence(t *testing.T) {
	t.Parallel()

	if got := NormalizeLevel(50, "High").Confidence; got != "High" {
		t.Fatalf("expected model confidence preserved, got %q", got)
	}
	if got := NormalizeLevel(50, "").Confidence; got != "Medium" {
		t.Fatalf("expected default Medium, got %q", got)
	}
	if got := NormalizeLevel(50, "  ").Confidence; got != "Medium" {
		t.Fatalf("expected blank confidence to default, got %q", got)
	}
}

func TestComputeLexicalScoreEmpty(t *testing.T) {
	t.Parallel()

	result := ComputeLexicalScore(nil, nil)
	if result.Score != 0.0 {
		t.Fatalf("expected 0.0 for empty input, got %v", result.Score)
	}
	if result.Wf != 0 {
		t.Fatalf("expected Wf=0, got %d", result.Wf)
	}
}

func TestComputeLexicalScoreWorkedExample(t *testing.T) {
	t.Parallel()

	// Three factual claims, 30 words total.
	claims := []domain.Claim{
		domain.NewRawClaim("one two three four five six seven eight nine ten"),
		domain.NewRawClaim("one two three four five six seven eight nine ten"),
		domain.NewRawClaim("one two three four five six seven eight nine ten"),
	}
	// One Severe subjective claim with a 10-word quote: 10 * 2.0 = 20.
	subjective := map[string][]domain.SubjectiveClaim{
		"Adversarial Framing": {
			{Severity: "Severe", Quote: "one two three four five six seven eight nine ten"},
		},
	}

	result := ComputeLexicalScore(claims, subjective)
	if result.Wf != 30 {
		t.Fatalf("expected Wf=30, got %d", result.Wf)
	}
	if result.WsWeighted != 20 {
		t.Fatalf("expected weighted Ws=20, got %v", result.WsWeighted)
	}
	if result.Score != 60.0 {
		t.Fatalf("expected score 60.0, got %v", result.Score)
	}

	level := NormalizeLevel(result.Score, "")
	if level.Assessment != domain.AssessmentModerate {
		t.Fatalf("expected Moderate at 60.0, got %q", level.Assessment)
	}
}

func TestComputeLexicalScoreIdempotent(t *testing.T) {
	t.Parallel()

	claims := []domain.Claim{domain.NewRawClaim("the treaty was signed in nineteen seventy nine")}
	subjective := map[string][]domain.SubjectiveClaim{
		"Emotive Intensification": {{Severity: "Moderate", Quote: "a crushing blow"}},
	}

	first := ComputeLexicalScore(claims, subjective)
	second := ComputeLexicalScore(claims, subjective)
	if first != second {
		t.Fatalf("recomputation diverged: %+v vs %+v", first, second)
	}
}

func TestSeverityIntensity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		severity string
		want     float64
	}{
		{"Severe", 2.0},
		{"severe", 2.0},
		{"[Severe] framing", 2.0},
		{"Moderate", 1.5},
		{"Mild", 1.0},
		{"", 1.0},
		{"unknown", 1.0},
	}

	for _, tc := range cases {
		if got := severityIntensity(tc.severity); got != tc.want {
			t.Fatalf("severity %q: expected %v, got %v", tc.severity, tc.want, got)
		}
	}
}

func TestLexicalConfidence(t *testing.T) {
	t.Parallel()

	if got := lexicalConfidence(2000, 10); got != "High" {
		t.Fatalf("expected High, got %q", got)
	}
	if got := lexicalConfidence(100, 1); got != "Low" {
		t.Fatalf("expected Low, got %q", got)
	}
	if got := lexicalConfidence(1000, 4); got != "Medium" {
		t.Fatalf("expected Medium, got %q", got)
	}
}
