package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Lowercases(t *testing.T) {
	assert.Equal(t, "python and go", Normalize("Python AND Go"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("a \t b\n\n  c"))
}

func TestNormalize_StripsPunctuation(t *testing.T) {
	assert.Equal(t, "node js rest apis", Normalize("Node.js, REST-APIs!"))
}

func TestNormalize_PreservesPlus(t *testing.T) {
	assert.Equal(t, "c++ and 3+ years", Normalize("C++ and 3+ years"))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t\n"))
	assert.Equal(t, "", Normalize("!?.,;"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Plain text",
		"Senior C++ / Go engineer (5+ yrs) — remote!",
		"  lots\tof   whitespace \n here ",
		"Bachelor's degree, M.S. preferred",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", in)
	}
}

func TestTokenize_SplitsWords(t *testing.T) {
	assert.Equal(t, []string{"3+", "years", "python", "experience"}, Tokenize("3+ years Python experience"))
}

func TestTokenize_Empty(t *testing.T) {
	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize("..."))
}

func TestWordSet_Distinct(t *testing.T) {
	set := WordSet("go go Go gopher")
	assert.True(t, set["go"])
	assert.True(t, set["gopher"])
	assert.Len(t, set, 2)
}
