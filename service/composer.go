package services

import (
	"fmt"
	"strings"

	model "github.com/Itish41/NyayaMitra/models"
)

// disclaimerClause is appended to every answer that does not already
// carry a disclaimer. EnsureDisclaimer is the single place that appends
// it, so it appears exactly once per answer.
const disclaimerClause = "\n\n**Legal Disclaimer:** This information is for educational purposes only and does not constitute legal advice. For specific legal matters, please consult with a qualified legal professional."

const (
	maxSecondaryExcerpt      = 150
	maxCitationExcerpt       = 300
	maxInstrumentSuggestions = 4
)

// EnsureDisclaimer appends the legal disclaimer unless the text already
// contains one in any case.
func EnsureDisclaimer(text string) string {
	if strings.Contains(strings.ToLower(text), "disclaimer") {
		return text
	}
	return text + disclaimerClause
}

// firProcedureAnswer is the curated walkthrough returned verbatim for any
// procedure query that mentions an FIR.
const firProcedureAnswer = `**Procedure for Filing an FIR (First Information Report):**

**What is FIR?**
An FIR is the first step in criminal proceedings and must be filed when you become aware of a cognizable offense.

**Steps to File an FIR:**
1. **Go to the Police Station** - Visit the nearest police station in whose jurisdiction the crime occurred
2. **Provide Details** - Give complete information about the incident, including:
   - Date, time, and place of occurrence
   - Names and addresses of persons involved
   - Description of the incident
3. **Written Complaint** - The police will record your complaint in writing
4. **Get FIR Copy** - You are entitled to a free copy of the FIR
5. **FIR Number** - Note down the FIR number for future reference

**Legal Basis:**
- Section 154 of Code of Criminal Procedure (CrPC) mandates police to register FIR
- Section 166A of IPC makes it mandatory for police to record information about cognizable offenses

**Important Rights:**
- Police cannot refuse to register FIR for cognizable offenses
- FIR copy must be provided free of cost
- If police refuse, you can approach higher authorities or court`

// Compose assembles the deterministic answer for a query from its ranked
// matches. The result always carries the disclaimer; composition never
// fails.
func Compose(query string, matches []model.ScoredMatch, intent Intent) model.ComposedAnswer {
	if len(matches) == 0 {
		text := EnsureDisclaimer(noMatchResponse(query))
		return model.ComposedAnswer{
			AnswerText:  text,
			Sources:     []model.Citation{},
			ContextUsed: false,
			Category:    ClassifyCategory(query + " " + text),
		}
	}

	var body string
	switch intent {
	case IntentDefinition:
		body = definitionResponse(query, matches)
	case IntentProcedure:
		body = procedureResponse(query, matches)
	case IntentRights:
		body = rightsResponse(query, matches)
	case IntentPunishment:
		body = punishmentResponse(query, matches)
	default:
		body = generalResponse(query, matches)
	}

	text := EnsureDisclaimer(body)
	return model.ComposedAnswer{
		AnswerText:  text,
		Sources:     citationsFrom(matches),
		ContextUsed: true,
		Category:    ClassifyCategory(query + " " + text),
	}
}

func definitionResponse(query string, matches []model.ScoredMatch) string {
	primary := matches[0].Document
	parts := []string{
		fmt.Sprintf("**Definition Query:** %s\n", query),
		fmt.Sprintf("According to **%s** of the **%s**:\n", primary.Section, primary.Source),
		fmt.Sprintf("*%s*\n", primary.Content),
		"**Key Points:**",
	}

	if hasFundamentalRightsMarker(primary) {
		parts = append(parts, "- This is a fundamental right guaranteed by the Indian Constitution")
	}
	if strings.Contains(strings.ToLower(primary.Category), "criminal") {
		parts = append(parts, "- This falls under criminal law provisions")
	}
	if hasKeyword(primary, "contract") {
		parts = append(parts, "- This relates to contract law and business agreements")
	}

	if rest := secondaries(matches, 2); len(rest) > 0 {
		parts = append(parts, "\n**Related Provisions:**")
		for _, doc := range rest {
			parts = append(parts, fmt.Sprintf("- %s of %s", doc.Section, doc.Source))
		}
	}
	return strings.Join(parts, "\n")
}

func procedureResponse(query string, matches []model.ScoredMatch) string {
	if strings.Contains(strings.ToLower(query), "fir") {
		return firProcedureAnswer
	}
	primary := matches[0].Document
	parts := []string{
		fmt.Sprintf("**Procedure Query:** %s\n", query),
		fmt.Sprintf("Based on **%s** of the **%s**:\n", primary.Section, primary.Source),
		primary.Content + "\n",
		"**General Legal Procedure:**",
		"- Consult with a qualified legal professional",
		"- Gather all relevant documents and evidence",
		"- Follow the prescribed legal process",
		"- Maintain proper records of all proceedings",
	}
	return strings.Join(parts, "\n")
}

func rightsResponse(query string, matches []model.ScoredMatch) string {
	parts := []string{fmt.Sprintf("**Rights Query:** %s\n", query)}

	if strings.Contains(strings.ToLower(query), "fundamental") {
		parts = append(parts,
			"**Fundamental Rights under the Indian Constitution:**\n",
			"The Constitution of India guarantees several fundamental rights to all citizens:\n",
		)
		for _, m := range matches {
			if hasFundamentalRightsMarker(m.Document) {
				parts = append(parts, fmt.Sprintf("**%s:** %s\n", m.Document.Section, m.Document.Content))
			}
		}
	} else {
		primary := matches[0].Document
		parts = append(parts,
			fmt.Sprintf("According to **%s** of the **%s**:\n", primary.Section, primary.Source),
			primary.Content+"\n",
		)
	}

	parts = append(parts,
		"**Key Aspects of These Rights:**",
		"- These rights are enforceable by courts",
		"- They can only be suspended during national emergency",
		"- They apply to all citizens equally",
		"- Violation can be challenged in court through writ petitions",
	)
	return strings.Join(parts, "\n")
}

func punishmentResponse(query string, matches []model.ScoredMatch) string {
	primary := matches[0].Document
	contentLower := strings.ToLower(primary.Content)
	parts := []string{
		fmt.Sprintf("**Legal Punishment Query:** %s\n", query),
		fmt.Sprintf("According to **%s** of the **%s**:\n", primary.Section, primary.Source),
		fmt.Sprintf("*%s*\n", primary.Content),
	}

	if strings.Contains(contentLower, "death") {
		parts = append(parts, "**Capital Punishment:** This offense may carry the death penalty")
	}
	if strings.Contains(contentLower, "imprisonment for life") {
		parts = append(parts, "**Life Imprisonment:** This is one of the most serious punishments under Indian law")
	}
	if strings.Contains(contentLower, "fine") {
		parts = append(parts, "**Fine:** Monetary penalty may also be imposed along with imprisonment")
	}

	parts = append(parts,
		"\n**Important Legal Notes:**",
		"- Actual punishment depends on specific circumstances of the case",
		"- Courts consider various factors while sentencing",
		"- Legal representation is crucial for serious offenses",
		"- Alternative punishments may be available based on case merits",
	)
	return strings.Join(parts, "\n")
}

func generalResponse(query string, matches []model.ScoredMatch) string {
	primary := matches[0].Document
	parts := []string{
		fmt.Sprintf("**Legal Information:** %s\n", query),
		fmt.Sprintf("Based on **%s** of the **%s**:\n", primary.Section, primary.Source),
		primary.Content + "\n",
	}

	if rest := secondaries(matches, 2); len(rest) > 0 {
		parts = append(parts, "**Related Legal Provisions:**")
		for _, doc := range rest {
			parts = append(parts, fmt.Sprintf("- **%s:** %s", doc.Section, excerpt(doc.Content, maxSecondaryExcerpt)))
		}
	}

	parts = append(parts,
		"\n**For More Information:**",
		fmt.Sprintf("- Refer to the complete text of %s", primary.Source),
		"- Consult legal commentaries and case law",
		"- Seek guidance from qualified legal professionals",
	)
	return strings.Join(parts, "\n")
}

// instrumentSuggestions maps query vocabulary to the statute a reader
// should start with when the corpus had nothing to offer.
var instrumentSuggestions = []struct {
	triggers   []string
	suggestion string
}{
	{[]string{"criminal", "crime", "murder", "theft", "assault"}, "- **Indian Penal Code (IPC)** - for criminal law matters"},
	{[]string{"contract", "agreement", "business"}, "- **Indian Contract Act, 1872** - for contract-related issues"},
	{[]string{"rights", "constitutional", "fundamental"}, "- **Constitution of India** - for fundamental rights and constitutional law"},
	{[]string{"consumer", "goods", "services"}, "- **Consumer Protection Act** - for consumer rights and disputes"},
	{[]string{"company", "corporate", "business"}, "- **Companies Act, 2013** - for corporate and business law"},
}

func noMatchResponse(query string) string {
	queryLower := strings.ToLower(query)
	var suggestions []string
	for _, group := range instrumentSuggestions {
		for _, trig := range group.triggers {
			if strings.Contains(queryLower, trig) {
				suggestions = append(suggestions, group.suggestion)
				break
			}
		}
		if len(suggestions) == maxInstrumentSuggestions {
			break
		}
	}

	parts := []string{
		fmt.Sprintf("**Query:** %s\n", query),
		"I couldn't find specific information about this topic in my current legal database. However, based on your question, you may want to consult:\n",
	}

	if len(suggestions) > 0 {
		parts = append(parts, suggestions...)
	} else {
		parts = append(parts,
			"- **Constitution of India** - for fundamental rights and constitutional matters",
			"- **Indian Penal Code** - for criminal law questions",
			"- **Code of Civil Procedure** - for civil law procedures",
			"- **Indian Contract Act** - for contract and agreement issues",
		)
	}

	parts = append(parts,
		"\n**Recommended Actions:**",
		"- Consult with a qualified legal professional for specific advice",
		"- Check the latest legal databases and official government sources",
		"- Consider contacting relevant government departments",
		"- Refer to recent Supreme Court and High Court judgments",
	)
	return strings.Join(parts, "\n")
}

func citationsFrom(matches []model.ScoredMatch) []model.Citation {
	citations := make([]model.Citation, 0, len(matches))
	for _, m := range matches {
		doc := m.Document
		citations = append(citations, model.Citation{
			Title:          doc.Title,
			Content:        excerpt(doc.Content, maxCitationExcerpt),
			Source:         doc.Source,
			Section:        doc.Section,
			URL:            doc.URL,
			RelevanceScore: m.Relevance,
		})
	}
	return citations
}

// secondaries returns the documents ranked after the primary, at most
// limit of them.
func secondaries(matches []model.ScoredMatch, limit int) []*model.CorpusDocument {
	var docs []*model.CorpusDocument
	for _, m := range matches[1:] {
		docs = append(docs, m.Document)
		if len(docs) == limit {
			break
		}
	}
	return docs
}

// hasKeyword reports an exact case-insensitive keyword match.
func hasKeyword(doc *model.CorpusDocument, keyword string) bool {
	for _, kw := range doc.Keywords {
		if strings.EqualFold(kw, keyword) {
			return true
		}
	}
	return false
}

// hasFundamentalRightsMarker reports whether any keyword mentions
// "fundamental", covering both "fundamental right" and
// "fundamental rights" spellings in the corpus.
func hasFundamentalRightsMarker(doc *model.CorpusDocument) bool {
	for _, kw := range doc.Keywords {
		if strings.Contains(strings.ToLower(kw), "fundamental") {
			return true
		}
	}
	return false
}

// excerpt truncates on rune boundaries and marks the cut with an
// ellipsis.
func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
