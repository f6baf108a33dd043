package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"warraq/internal/textnorm"
)

func TestNormalizeKeepsArabic(t *testing.T) {
	assert.Equal(t, "بسم الله الرحمن الرحيم", textnorm.Normalize("بسم الله الرحمن الرحيم"))
}

func TestNormalizeDeletesLatinDigitsPunctuation(t *testing.T) {
	assert.Equal(t, "", textnorm.Normalize("the cat sat on the mat"))
	assert.Equal(t, "", textnorm.Normalize("12345 67890"))
	assert.Equal(t, "", textnorm.Normalize("!@#$%^&*()"))
}

func TestNormalizeMixedScripts(t *testing.T) {
	assert.Equal(t, "كتاب جديد", textnorm.Normalize("كتاب book 42 جديد!"))
}

func TestNormalizeDeletionMergesWords(t *testing.T) {
	// Non-Arabic runes are deleted, not replaced with a space, so the
	// two Arabic fragments of one whitespace-delimited token merge.
	assert.Equal(t, "كتابقلم", textnorm.Normalize("كتاب123قلم"))
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "كتاب قلم", textnorm.Normalize("  كتاب \t\n  قلم  "))
}

func TestNormalizeArabicDigitsDeleted(t *testing.T) {
	// Arabic-Indic digits are in the Arabic script block but are not letters.
	assert.Equal(t, "صفحة", textnorm.Normalize("صفحة ٣"))
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", textnorm.Normalize(""))
}
