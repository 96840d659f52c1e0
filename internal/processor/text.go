package processor

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nao1215/procpipe/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Regular expression patterns for text processing.
var (
	// whitespacePattern matches runs of whitespace for normalization.
	whitespacePattern = regexp.MustCompile(`\s+`)

	// specialCharsPattern matches everything except letters, digits,
	// and whitespace.
	specialCharsPattern = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

	// sentencePattern matches sentence-terminating punctuation runs.
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// Casers are stateless for und and safe to share across goroutines.
var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// TextTransformer is the text variant of the transformation step.
//
// Transformations run in a fixed order, each independently toggleable:
// whitespace normalization, special-character removal, and lower-casing
// are configured on the transformer itself; upper-casing and word-count
// appending are driven by the per-call feature set.
type TextTransformer struct {
	// trimWhitespace enables whitespace normalization (trim plus
	// collapsing inner runs to single spaces).
	trimWhitespace bool

	// removeSpecialChars enables stripping of non-alphanumeric,
	// non-whitespace characters.
	removeSpecialChars bool

	// lowercase enables lower-casing of the result.
	lowercase bool
}

// TextOption configures a TextTransformer.
type TextOption func(*TextTransformer)

// WithTrimWhitespace toggles whitespace normalization. Enabled by default.
func WithTrimWhitespace(enabled bool) TextOption {
	return func(t *TextTransformer) {
		t.trimWhitespace = enabled
	}
}

// WithRemoveSpecialChars toggles special-character removal. Disabled by default.
func WithRemoveSpecialChars(enabled bool) TextOption {
	return func(t *TextTransformer) {
		t.removeSpecialChars = enabled
	}
}

// WithLowercase toggles lower-casing of the result. Disabled by default.
func WithLowercase(enabled bool) TextOption {
	return func(t *TextTransformer) {
		t.lowercase = enabled
	}
}

// NewTextTransformer creates a TextTransformer. By default only whitespace
// normalization is enabled, matching the most common cleanup need.
func NewTextTransformer(opts ...TextOption) *TextTransformer {
	t := &TextTransformer{
		trimWhitespace:     true,
		removeSpecialChars: false,
		lowercase:          false,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Name returns the variant name.
func (t *TextTransformer) Name() string {
	return "TextProcessor"
}

// Transform applies the text transformations in fixed order:
// trim, strip-special, lowercase, then the feature-driven uppercase and
// word-count steps. Empty input is a transformation failure.
func (t *TextTransformer) Transform(_ context.Context, data string, feats *model.FeatureSet) (string, error) {
	if data == "" {
		return "", NewProcessingError("text cannot be empty")
	}

	result := data

	if t.trimWhitespace {
		result = normalizeWhitespace(result)
	}

	if t.removeSpecialChars {
		result = specialCharsPattern.ReplaceAllString(result, "")
	}

	if t.lowercase {
		result = lowerCaser.String(result)
	}

	if feats.Enabled(FeatureUppercase) {
		result = upperCaser.String(result)
	}

	if feats.Enabled(FeatureWordCount) {
		result = fmt.Sprintf("%s [Words: %d]", result, CountWords(result))
	}

	return result, nil
}

// normalizeWhitespace trims the text and collapses inner whitespace runs
// to single spaces.
func normalizeWhitespace(text string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(text), " ")
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return len(whitespacePattern.Split(trimmed, -1))
}

// ReverseWords returns the text with its word order reversed.
// Whitespace is normalized to single spaces in the result.
func ReverseWords(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}

	words := whitespacePattern.Split(trimmed, -1)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}

// SplitSentences splits text on sentence-terminating punctuation.
// Empty fragments are dropped.
func SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	parts := sentencePattern.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// ContainsKeywords reports whether the text contains any of the given
// keywords, case-insensitively.
func ContainsKeywords(text string, keywords ...string) bool {
	if text == "" || len(keywords) == 0 {
		return false
	}

	lowerText := lowerCaser.String(text)
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lowerText, lowerCaser.String(keyword)) {
			return true
		}
	}
	return false
}
