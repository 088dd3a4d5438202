package analysis

import (
	"encoding/json"
	"fmt"

	"freelance-radar-api/core/domain"
)

const (
	analysisTemperature   = 0.7
	suggestionTemperature = 0.7
	regenerateTemperature = 0.8
	suggestionMaxTokens   = 100
)

const analysisSystemTemplate = `Tu es un expert freelance qui aide d'autres freelances avec leurs problèmes quotidiens.
Tu dois analyser uniquement les questions fournies et identifier :

1. Le profil précis du freelance (domaine, expérience, situation)
2. Le problème spécifique et son contexte
3. Les points de douleur sous-jacents
4. Les besoins immédiats et à long terme

Pour chaque question, fournis une réponse :
- Naturelle et amicale, comme si tu parlais à un collègue
- Qui montre que tu comprends leur situation spécifique
- Avec un conseil concret et applicable immédiatement
- Qui inclut subtilement ton expertise sans être trop commercial
- Qui se termine par une proposition d'aide discrète

Style de réponse :
- Utilise "tu" plutôt que "vous"
- Évite le langage trop formel
- Reste concis et direct
- Utilise des émojis avec modération (1-2 max)
- Termine par une question ouverte ou une proposition d'aide naturelle

IMPORTANT :
- Ne génère PAS de fausses questions ou réponses
- Analyse UNIQUEMENT les questions fournies
- Si aucune question n'est fournie, indique-le clairement
- Prends en compte la localisation : %s

Réponds en JSON avec les clés "targetDescription", "painPoints" et "recentPosts"
(title, url, content, date, suggestedResponse).`

const analysisUserTemplate = `Analyse ces questions de freelances pour identifier précisément les profils et leurs besoins :

%s

Pour chaque question réelle fournie :
1. Une analyse détaillée du profil et du contexte
2. Les points de douleur identifiés
3. Une réponse prête à être utilisée, en texte brut, dans un style naturel et amical`

const suggestionSystem = `Tu es un expert en prospection B2B. Suggère 5 variations ou compléments pertinents du terme de recherche fourni, séparés par des virgules.`

const regenerateSystemTemplate = `Tu es un expert freelance qui aide d'autres freelances%s.
Analyse cette question et génère une réponse :
- Naturelle et amicale (tutoiement)
- Qui montre ta compréhension de leur situation
- Avec un conseil concret et applicable
- Qui inclut subtilement ton expertise
- Qui se termine par une proposition d'aide discrète

Style :
- Langage naturel, pas trop formel
- Concis et direct
- 1-2 émojis maximum
- Question ouverte ou proposition d'aide en conclusion`

// analysisPrompt builds the prompt asking for profiles, pain points and replies
func analysisPrompt(location string, items []domain.FeedItem) (Prompt, error) {
	if location == "" {
		location = "non spécifiée"
	}

	if items == nil {
		items = []domain.FeedItem{}
	}
	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return Prompt{}, fmt.Errorf("failed to encode feed items: %w", err)
	}

	return Prompt{
		System:      fmt.Sprintf(analysisSystemTemplate, location),
		User:        fmt.Sprintf(analysisUserTemplate, payload),
		Temperature: analysisTemperature,
	}, nil
}

func suggestionPrompt(input string) Prompt {
	return Prompt{
		System:      suggestionSystem,
		User:        fmt.Sprintf("Suggère des termes de recherche similaires ou complémentaires à : %q", input),
		Temperature: suggestionTemperature,
		MaxTokens:   suggestionMaxTokens,
	}
}

func regeneratePrompt(title, content, location string) Prompt {
	region := ""
	if location != "" {
		region = " de la région : " + location
	}

	return Prompt{
		System:      fmt.Sprintf(regenerateSystemTemplate, region),
		User:        fmt.Sprintf("Titre: %s\n\nContenu: %s\n\nGénère une nouvelle réponse avec un angle différent de la précédente.", title, content),
		Temperature: regenerateTemperature,
	}
}
