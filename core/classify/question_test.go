package classify

import (
	"testing"

	"freelance-radar-api/core/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsQuestion(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    bool
	}{
		{"interrogative, mark and indicator", "Comment gérer mes clients ?", "", true},
		{"plain report", "Bilan de ma première année", "Tout va bien, aucun souci.", false},
		{"indicator in content", "Mon statut", "J'ai besoin d'un avis sur la TVA", true},
		{"indicator is case-insensitive", "URGENT", "", true},
		{"accented indicator", "Grosse GALÈRE avec l'URSSAF", "", true},
		{"interrogative prefix only", "Pourquoi facturer en régie", "", true},
		{"question mark in content", "Retour d'expérience", "Vous en pensez quoi ?", true},
		{"interrogative must lead the title", "Le jour où tout a changé", "", false},
		{"typographic apostrophe", "Quelqu’un a testé Malt", "", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsQuestion(tt.title, tt.content))
		})
	}
}

func TestClassifier_UsesGivenLexicon(t *testing.T) {
	lex, err := lexicon.Parse([]byte("version: t\nquestion_indicators: [halp]\ninterrogatives: [how]\n"))
	require.NoError(t, err)

	c := NewClassifier(lex)

	assert.True(t, c.IsQuestion("Halp me", ""))
	assert.True(t, c.IsQuestion("How to invoice", ""))
	assert.False(t, c.IsQuestion("Comment facturer", ""))
}
