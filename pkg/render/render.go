// Package render formats a finished report for the console.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"BiasDetector/internal/domain"
)

const divider = "========================================"

// Write prints the human-readable analysis report.
func Write(w io.Writer, report *domain.Report) {
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, " ANALYSIS RESULTS")
	fmt.Fprintln(w, divider)

	if len(report.IdeologicalDimensions) > 0 {
		fmt.Fprintln(w, "Ideological Dimensions:")
		for _, key := range sortedKeys(report.IdeologicalDimensions) {
			fmt.Fprintf(w, "  - %s: %s\n", key, report.IdeologicalDimensions[key])
		}
	}

	if len(report.NarrativeAlignment) > 0 {
		fmt.Fprintln(w, "Narrative Alignment:")
		for _, item := range report.NarrativeAlignment {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}

	obj := report.ObjectivityLevel
	fmt.Fprintln(w, "\nObjectivity Assessment")
	fmt.Fprintf(w, "Assessment:      %s\n", obj.Assessment)
	fmt.Fprintf(w, "Estimated Range: %s\n", obj.Range)
	fmt.Fprintf(w, "Confidence:      %s\n", obj.Confidence)
	fmt.Fprintf(w, "Score:           %.1f/100\n", report.Score)
	if report.AdjustedScore != nil {
		fmt.Fprintf(w, "Adjusted Score:  %.1f/100\n", *report.AdjustedScore)
	}
	if report.ScoreExplanation != "" {
		fmt.Fprintf(w, "Score Calculation: %s\n", report.ScoreExplanation)
	}

	if report.EditorialProximity.Archetype != "" {
		fmt.Fprintf(w, "\nEditorial Proximity: %s\n", report.EditorialProximity.Archetype)
		if len(report.EditorialProximity.ExampleOutlets) > 0 {
			fmt.Fprintf(w, "  Example outlets: %s\n", strings.Join(report.EditorialProximity.ExampleOutlets, ", "))
		}
	}

	if len(report.NotableOmissions) > 0 {
		fmt.Fprintln(w, "\nCounterfactual Context & Notable Omissions:")
		for _, omission := range report.NotableOmissions {
			fmt.Fprintf(w, "- %s\n", omission.Description)
			if omission.SourceURL != "" {
				fmt.Fprintf(w, "  Source: %s\n", omission.SourceURL)
			}
		}
	}

	if len(report.SubjectiveClaims) > 0 {
		fmt.Fprintln(w, "\nSubjective Claims (Evidence of Bias):")
		techniques := make([]string, 0, len(report.SubjectiveClaims))
		for technique := range report.SubjectiveClaims {
			techniques = append(techniques, technique)
		}
		sort.Strings(techniques)
		for _, technique := range techniques {
			fmt.Fprintf(w, "  [%s]\n", technique)
			for _, claim := range report.SubjectiveClaims[technique] {
				fmt.Fprintf(w, "    - [%s] %q", claim.Severity, claim.Quote)
				if claim.Analysis != "" {
					fmt.Fprintf(w, " -> %s", claim.Analysis)
				}
				fmt.Fprintln(w)
			}
		}
	}

	if len(report.Claims) > 0 {
		fmt.Fprintln(w, "\nFactual Claims (Extracted):")
		for _, claim := range report.Claims {
			fmt.Fprintf(w, "- [%s] %s\n", claim.Status, claim.Text)
		}
	}

	if report.ReaderRisk != "" {
		fmt.Fprintf(w, "\nReader Risk: %s\n", report.ReaderRisk)
	}

	fmt.Fprintln(w, divider)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
