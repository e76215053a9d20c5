package usecase

import (
	"encoding/json"
	"fmt"
)

// excerptChars bounds the slice of original text repeated in later prompts.
const excerptChars = 4000

// truncate bounds text to max characters, not bytes, so multi-byte scripts
// get the full budget and the cut never lands inside a rune.
func truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	count := 0
	for idx := range text {
		if count == max {
			return text[:idx]
		}
		count++
	}
	return text
}

func asJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func extractPrompt(text string, maxChars int) string {
	return fmt.Sprintf(`You are a professional Media Bias Analyst / Public Editor / Fact-Checker.

Stage 1: Extraction. Read the article below and extract, WITHOUT any evaluative judgment:
1. "topic": the central subject in one short phrase.
2. "genre": one of "News", "Opinion", "Editorial", "Interview", "Academic", "Feature".
3. "expected_neutrality": "High", "Medium" or "Low", derived only from the genre conventions.
4. "entities": named people, organizations, and places mentioned.
5. "claims": the literal factual-claim sentences made by the article, quoted as strings.
6. "narrative_arc": a one-paragraph neutral summary of how the article's story unfolds.
7. "tone_keywords": words or short phrases that carry the article's tone.

Text content:
%s

Provide the output in valid JSON format with keys: "topic", "genre", "expected_neutrality", "entities", "claims", "narrative_arc", "tone_keywords".
"entities", "claims" and "tone_keywords" should be lists of strings.`, truncate(text, maxChars))
}

func contextPrompt(text, searchContext string, maxChars int) string {
	return fmt.Sprintf(`You are a professional Media Bias Analyst / Public Editor / Fact-Checker.

Stage 2: External context. Below are web search results about the article's topic, followed by the article itself. Build a neutral factual baseline:
1. "context_summary": what independent coverage establishes about this topic.
2. "key_facts": list of externally grounded facts, each with its source URL when available.
3. "perspectives": the distinct viewpoints present in neutral or multi-perspective coverage of this topic.

If the search results indicate that search failed, rely on widely established background knowledge and say so in "context_summary".

Search results:
%s

Text content:
%s

Provide the output in valid JSON format with keys: "context_summary", "key_facts", "perspectives".
"key_facts" and "perspectives" should be lists of strings.`, searchContext, truncate(text, maxChars))
}

func comparePrompt(extract StageResult, contextResult StageResult) string {
	return fmt.Sprintf(`You are a professional Media Bias Analyst / Public Editor / Fact-Checker.

Stage 3: Comparison. Compare the article's extracted content against the external context and judge it:
1. "claims": for each extracted factual claim, an object with "text", "status" ("Verified", "Disputed", "Single Source" or "Unverified") and "support" (one line naming the external evidence, or why none exists).
2. "notable_omissions": elements commonly present in neutral or multi-perspective coverage of this topic that are missing, underrepresented, or dismissed. Each is an object with "description", "source_url", "relevance" ("Core", "Important" or "Peripheral"), "intentionality" ("Likely deliberate", "Possibly deliberate" or "Likely incidental") and "justification" (one line).
3. "framing_bias": descriptions of how the framing departs from the neutral baseline.
4. "ideological_dimensions": an object with keys "National Positioning", "Diplomatic Framing" and "Conflict Framing".
5. "editorial_proximity": an object with "archetype" (one of "Western-Liberal/Centrist", "State-Aligned/Official", "Pan-Arabist/Regional", "Business-Institutional", "Populist-Nativist", "Academic-Institutional"), "example_outlets" and "shared_traits".

Extracted content:
%s

External context:
%s

Provide the output in valid JSON format with keys: "claims", "notable_omissions", "framing_bias", "ideological_dimensions", "editorial_proximity".`,
		asJSON(extract), asJSON(contextResult))
}

func synthesizePrompt(extract, compare StageResult, excerpt string) string {
	return fmt.Sprintf(`You are a professional Media Bias Analyst / Public Editor / Fact-Checker.

Stage 4: Synthesis. Merge all prior findings into the final assessment:
1. "ideological_dimensions": object with keys "National Positioning", "Diplomatic Framing", "Conflict Framing".
2. "narrative_alignment": the top 2-3 narratives, official positions, or strategic frameworks the article reinforces.
3. "subjective_claims": a dictionary where keys are rhetorical technique names (e.g. "Pre-emptive Delegitimization", "Adversarial Framing", "Identity Labeling", "Emotive Intensification") and values are lists of objects with "severity" ("Mild", "Moderate" or "Severe"), "quote" (the original-language text), "translation" (English, when the quote is not in English) and "analysis".
4. "notable_omissions": the merged omissions, keeping "description", "source_url", "relevance", "intentionality" and "justification".
5. "claims": the verified claims with "text", "status" and "support".
6. "editorial_proximity": passed through from the comparison.
7. "score": 0-100, measured against a maximally neutral and complete gold-standard treatment of this topic.
8. "adjusted_score": the score after genre-aware penalty weighting. Adjusting the weighting must never award leniency for deceptive content; the adjusted score must never exceed what the underlying facts support.
9. "score_breakdown": object with "completeness", "neutrality" and "factuality", each 0-100 after penalties.
10. "score_explanation": a short textual justification of the score.
11. "reader_risk": one or two sentences framed hypothetically ("Readers might..."), never accusatory.
12. "objectivity_level": object with a single "confidence" key ("Low", "Medium" or "High") for your overall confidence in this assessment.

Extracted content:
%s

Comparison findings:
%s

Article excerpt:
%s

Provide the output in valid JSON format with keys: "ideological_dimensions", "narrative_alignment", "subjective_claims", "notable_omissions", "claims", "editorial_proximity", "score", "adjusted_score", "score_breakdown", "score_explanation", "reader_risk", "objectivity_level".`,
		asJSON(extract), asJSON(compare), truncate(excerpt, excerptChars))
}
