package services

import "strings"

// Intent is the rhetorical category of a question, used to select a
// response template.
type Intent string

const (
	IntentDefinition Intent = "definition"
	IntentProcedure  Intent = "procedure"
	IntentRights     Intent = "rights"
	IntentPunishment Intent = "punishment"
	IntentGeneral    Intent = "general"
)

// intentRules are evaluated in order and the first group with a matching
// cue wins. Definition cues come before punishment cues, so a query like
// "what is the punishment for theft" classifies as a definition query.
// The ordering is part of the contract; do not reorder.
var intentRules = []struct {
	intent Intent
	cues   []string
}{
	{IntentDefinition, []string{"what is", "define", "meaning", "definition"}},
	{IntentProcedure, []string{"procedure", "process", "how to", "steps", "filing"}},
	{IntentRights, []string{"rights", "fundamental rights", "constitutional rights"}},
	{IntentPunishment, []string{"punishment", "penalty", "sentence", "jail", "imprisonment"}},
}

// ClassifyIntent infers the rhetorical intent of a question. Pure
// function; same input always yields the same label.
func ClassifyIntent(query string) Intent {
	q := strings.ToLower(query)
	for _, rule := range intentRules {
		for _, cue := range rule.cues {
			if strings.Contains(q, cue) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}

// categoryRules follow the same first-match-wins shape. The scan order is
// constitutional, criminal, contract, consumer, corporate, family,
// property, labor, then the General Law fallback.
var categoryRules = []struct {
	category string
	triggers []string
}{
	{"Constitutional Law", []string{"constitution", "fundamental rights", "article", "pil", "writ"}},
	{"Criminal Law", []string{"criminal", "ipc", "murder", "theft", "fir", "police"}},
	{"Contract Law", []string{"contract", "agreement", "breach", "civil"}},
	{"Consumer Law", []string{"consumer", "protection", "goods", "services"}},
	{"Corporate Law", []string{"company", "corporate", "business", "shares"}},
	{"Family Law", []string{"family", "marriage", "divorce", "adoption", "surrogacy"}},
	{"Property Law", []string{"property", "land", "real estate", "transfer"}},
	{"Labor Law", []string{"labor", "employment", "worker", "industrial"}},
}

// ClassifyCategory infers the legal category from lowercased text,
// typically the query concatenated with the composed answer.
func ClassifyCategory(text string) string {
	t := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, trig := range rule.triggers {
			if strings.Contains(t, trig) {
				return rule.category
			}
		}
	}
	return "General Law"
}
