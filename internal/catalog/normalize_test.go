package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CaseAndPunctuation(t *testing.T) {
	assert.Equal(t, "the titles test", Normalize("The Title's Test!"))
	assert.Equal(t, Normalize("the titles test"), Normalize("The Title's Test!"))
	assert.Equal(t, "drang baroque", Normalize("Drang (Baroque)"))
	assert.Equal(t, "no time to explain", Normalize("No Time-to-Explain"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"The Title's Test!",
		"  spaced   out  ",
		"a - b",
		"Mythoclast",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("!!! ---"))
}
