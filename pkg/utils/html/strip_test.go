package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Bonjour tout le monde", "Bonjour tout le monde"},
		{"paragraphs", "<p>Bonjour</p><p>le monde</p>", "Bonjourle monde"},
		{"script removed", "<p>Avant</p><script>alert('x')</script><p>Après</p>", "AvantAprès"},
		{"style removed", "<style>p { color: red; }</style><p>Texte</p>", "Texte"},
		{"entities decoded", "<p>Devis &amp; factures</p>", "Devis & factures"},
		{"noscript removed", "<noscript>Activez JS</noscript>Contenu", "Contenu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleText(tt.input))
		})
	}
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "", StripTags(""))
	assert.Equal(t, "Comment facturer ?", StripTags("<b>Comment</b> facturer ?"))
	assert.Equal(t, "Devis & factures", StripTags("Devis &amp; factures"))
	assert.Equal(t, "L'URSSAF", StripTags("L&#39;URSSAF"))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n\t b   c "))
	assert.Equal(t, "", CollapseWhitespace(" \n "))
}
