package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateCountsRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{name: "under budget", text: "short text", max: 30000, want: "short text"},
		{name: "exact budget", text: "abcde", max: 5, want: "abcde"},
		{name: "ascii cut", text: "abcdef", max: 3, want: "abc"},
		{name: "unlimited", text: "abcdef", max: 0, want: "abcdef"},
		{name: "multibyte cut", text: "عاجل: خبر", max: 4, want: "عاجل"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := truncate(tt.text, tt.max); got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateArabicArticleKeepsFullBudget(t *testing.T) {
	t.Parallel()

	// 15001 two-byte characters exceed the budget in bytes but not in
	// characters, so nothing may be cut.
	text := strings.Repeat("ب", 15001)
	got := truncate(text, 30000)
	if utf8.RuneCountInString(got) != 15001 {
		t.Fatalf("expected all 15001 characters kept, got %d", utf8.RuneCountInString(got))
	}

	got = truncate(text, 10000)
	if utf8.RuneCountInString(got) != 10000 {
		t.Fatalf("expected cut at 10000 characters, got %d", utf8.RuneCountInString(got))
	}
	if !utf8.ValidString(got) {
		t.Fatal("cut produced invalid UTF-8")
	}
}
