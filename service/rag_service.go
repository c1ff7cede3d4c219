package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	model "github.com/Itish41/NyayaMitra/models"
)

// QueryLogger records answered queries for analytics. Logging failures
// never affect the answer.
type QueryLogger interface {
	LogUserQuery(query, response, category string, sources []model.Citation, responseTimeMs int) (string, error)
}

const defaultBackendTimeout = 30 * time.Second

// RAGService answers legal questions by ranking the corpus, composing a
// deterministic response and, when a generative backend is configured,
// upgrading the answer text through it.
type RAGService struct {
	store          *DocumentStore
	backend        GenerativeBackend
	logger         QueryLogger
	backendTimeout time.Duration
}

// ServiceOption configures a RAGService.
type ServiceOption func(*RAGService)

// WithGenerativeBackend attaches an optional generative backend.
func WithGenerativeBackend(backend GenerativeBackend) ServiceOption {
	return func(s *RAGService) {
		s.backend = backend
	}
}

// WithQueryLogger attaches an optional query logger.
func WithQueryLogger(logger QueryLogger) ServiceOption {
	return func(s *RAGService) {
		s.logger = logger
	}
}

// WithBackendTimeout overrides the per-call generation deadline.
func WithBackendTimeout(d time.Duration) ServiceOption {
	return func(s *RAGService) {
		if d > 0 {
			s.backendTimeout = d
		}
	}
}

func NewRAGService(store *DocumentStore, opts ...ServiceOption) *RAGService {
	s := &RAGService{
		store:          store,
		backendTimeout: defaultBackendTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// harmfulPatterns block queries that ask for help breaking the law
// rather than understanding it.
var harmfulPatterns = []string{
	"how to break the law",
	"illegal activities",
	"avoid prosecution",
	"hide evidence",
	"commit fraud",
	"evade taxes illegally",
}

// personalAdvicePatterns mark queries asking for advice on the user's own
// matter, which get a consult-a-professional warning attached.
var personalAdvicePatterns = []string{
	"what should i do",
	"my case",
	"my situation",
	"should i sue",
	"will i win",
	"what are my chances",
}

// AnswerQuery runs the full pipeline for one question. It never returns
// an error: backend and logging failures degrade to the deterministic
// composed answer.
func (s *RAGService) AnswerQuery(ctx context.Context, query string, topK int, includeSources bool) model.ComposedAnswer {
	start := time.Now()

	if refusal, blocked := screenQuery(query); blocked {
		log.Printf("Query blocked by content screen")
		return refusal
	}

	corpus := s.store.Snapshot()
	matches := RankDocuments(query, corpus, topK)
	intent := ClassifyIntent(query)
	answer := Compose(query, matches, intent)

	if s.backend != nil {
		generated, err := s.generateAnswer(ctx, query, matches)
		if err != nil {
			log.Printf("Generative backend failed, using composed answer: %v", err)
		} else {
			answer.AnswerText = EnsureDisclaimer(generated)
			answer.Category = ClassifyCategory(query + " " + answer.AnswerText)
			answer.AIPowered = true
		}
	}

	// Generated answers draw on statutes beyond the ranked matches, so an
	// empty match set still gets statute-level attributions.
	if len(matches) == 0 && answer.AIPowered {
		answer.Sources = AttributeSources(query + " " + answer.AnswerText)
		answer.ContextUsed = false
	}

	if hasAny(strings.ToLower(query), personalAdvicePatterns) {
		answer.Warning = "This looks like a question about your personal legal matter. General legal information cannot replace advice from a qualified professional who knows the facts of your case."
	}

	elapsed := int(time.Since(start).Milliseconds())
	if s.logger != nil {
		if _, err := s.logger.LogUserQuery(query, answer.AnswerText, answer.Category, answer.Sources, elapsed); err != nil {
			log.Printf("Failed to log query: %v", err)
		}
	}

	if !includeSources {
		answer.Sources = []model.Citation{}
	}
	return answer
}

// screenQuery rejects requests for help with unlawful conduct before any
// retrieval happens.
func screenQuery(query string) (model.ComposedAnswer, bool) {
	q := strings.ToLower(query)
	if !hasAny(q, harmfulPatterns) {
		return model.ComposedAnswer{}, false
	}
	text := EnsureDisclaimer("I can only provide information about what the law says, not assistance with circumventing it. If you are facing a legal problem, a qualified legal professional can advise you on lawful options.")
	return model.ComposedAnswer{
		AnswerText:  text,
		Sources:     []model.Citation{},
		ContextUsed: false,
		Category:    "General Law",
	}, true
}

func hasAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

func (s *RAGService) generateAnswer(ctx context.Context, query string, matches []model.ScoredMatch) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.backendTimeout)
	defer cancel()
	return s.backend.Complete(ctx, buildPrompt(query, matches))
}

// legalSystemContext is the standing briefing on the Indian legal system
// included in every generation prompt.
const legalSystemContext = `# INDIAN LEGAL SYSTEM CONTEXT

## Constitutional Law
- Constitution of India (1950) - Supreme law of India
- Fundamental Rights (Articles 12-35): Right to Equality, Right to Freedom, Right against Exploitation, Right to Freedom of Religion, Cultural and Educational Rights, Right to Constitutional Remedies
- Directive Principles of State Policy (Articles 36-51)
- Fundamental Duties (Article 51A)

## Criminal Law
- Indian Penal Code (IPC) 1860 - Main criminal law statute
- Code of Criminal Procedure (CrPC) 1973 - Criminal procedure
- Indian Evidence Act 1872 - Rules of evidence
- Major offenses: Murder (S.302), Rape (S.375), Theft (S.378), Assault (S.351)

## Civil Law
- Indian Contract Act 1872 - Contract law
- Transfer of Property Act 1882 - Property transactions
- Indian Partnership Act 1932 - Business partnerships
- Specific Relief Act 1963 - Civil remedies

## Special Laws
- Consumer Protection Act 2019 - Consumer rights
- Companies Act 2013 - Corporate law
- Motor Vehicles Act 1988 - Traffic regulations
- Right to Information Act 2005 - Transparency in governance

## Court System
- Supreme Court of India - Apex court
- High Courts - State level courts
- District Courts - Local jurisdiction
- Specialized tribunals

## Legal Procedures
- Public Interest Litigation (PIL) - Court cases for public good
- First Information Report (FIR) - Initial police complaint
- Writ Petitions - Constitutional remedies
- Appeals and revisions`

func buildPrompt(query string, matches []model.ScoredMatch) string {
	var sourceContext strings.Builder
	if len(matches) > 0 {
		sourceContext.WriteString("\n\nRELEVANT LEGAL SOURCES:\n")
		for _, m := range matches {
			doc := m.Document
			sourceContext.WriteString(fmt.Sprintf("- %s: %s (%s)\n", doc.Title, doc.Content, doc.Source))
		}
	}

	return fmt.Sprintf(`You are an expert AI assistant specializing in Indian law. Provide accurate, helpful information about Indian legal matters.

LEGAL CONTEXT: %s
%s
USER QUESTION: %s

INSTRUCTIONS:
1. Provide clear, accurate information about Indian law
2. Include specific legal provisions, sections, or articles when relevant
3. Cite appropriate laws, acts, or constitutional provisions mentioned in the sources
4. Explain legal procedures step-by-step when asked
5. Include recent legal developments if relevant
6. Reference the specific acts and sections from the provided sources when applicable
7. Always add appropriate legal disclaimers
8. If you don't have specific information, suggest where to find authoritative sources

FORMAT YOUR RESPONSE AS:
- **Direct Answer**: Clear response to the question
- **Legal Provisions**: Specific acts, sections, and articles
- **Practical Guidance**: Step-by-step procedures if applicable
- **Key Points**: Important highlights
- **Legal Disclaimer**: Educational purposes notice

REMEMBER: Reference the specific legal sources provided above when relevant to the query.`, legalSystemContext, sourceContext.String(), query)
}
