package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	model "github.com/Itish41/NyayaMitra/models"
	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
)

var fixedTime = time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

type fakeBackend struct {
	answer    string
	err       error
	gotPrompt string
}

func (f *fakeBackend) Complete(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type fakeLogger struct {
	query          string
	response       string
	category       string
	sources        []model.Citation
	responseTimeMs int
	calls          int
	err            error
}

func (f *fakeLogger) LogUserQuery(query, response, category string, sources []model.Citation, responseTimeMs int) (string, error) {
	f.query = query
	f.response = response
	f.category = category
	f.sources = sources
	f.responseTimeMs = responseTimeMs
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "query-1", nil
}

func seededStore(t *testing.T) *DocumentStore {
	t.Helper()
	store := NewDocumentStore()
	assert.NoError(t, store.ReplaceAll(seedCorpus()))
	return store
}

func TestAnswerQuery_ComposedWithoutBackend(t *testing.T) {
	svc := NewRAGService(seededStore(t))

	answer := svc.AnswerQuery(context.Background(), "What is Article 21 of the Constitution?", 3, true)

	assert.False(t, answer.AIPowered)
	assert.True(t, answer.ContextUsed)
	assert.NotEmpty(t, answer.Sources)
	assert.Equal(t, "Constitutional Law", answer.Category)
	assert.Equal(t, 1, strings.Count(strings.ToLower(answer.AnswerText), "disclaimer"))
}

func TestAnswerQuery_BackendSuccess(t *testing.T) {
	backend := &fakeBackend{answer: "Article 21 protects life and personal liberty under the constitution."}
	svc := NewRAGService(seededStore(t), WithGenerativeBackend(backend))

	answer := svc.AnswerQuery(context.Background(), "What is Article 21?", 3, true)

	assert.True(t, answer.AIPowered)
	assert.True(t, strings.HasPrefix(answer.AnswerText, backend.answer))
	assert.Equal(t, 1, strings.Count(strings.ToLower(answer.AnswerText), "disclaimer"))
	assert.Contains(t, backend.gotPrompt, "USER QUESTION: What is Article 21?")
	assert.Contains(t, backend.gotPrompt, "RELEVANT LEGAL SOURCES:")
	assert.Contains(t, backend.gotPrompt, "INDIAN LEGAL SYSTEM CONTEXT")
}

func TestAnswerQuery_BackendFailureFallsBack(t *testing.T) {
	backend := &fakeBackend{err: fmt.Errorf("quota exhausted")}
	svc := NewRAGService(seededStore(t), WithGenerativeBackend(backend))

	withBackend := svc.AnswerQuery(context.Background(), "punishment for murder", 3, true)
	composed := NewRAGService(seededStore(t)).AnswerQuery(context.Background(), "punishment for murder", 3, true)

	assert.False(t, withBackend.AIPowered)
	assert.Equal(t, composed.AnswerText, withBackend.AnswerText)
}

func TestAnswerQuery_EmptyQuery(t *testing.T) {
	svc := NewRAGService(seededStore(t))

	answer := svc.AnswerQuery(context.Background(), "", 3, true)

	assert.False(t, answer.ContextUsed)
	assert.False(t, answer.AIPowered)
	assert.Empty(t, answer.Sources)
}

func TestAnswerQuery_NoMatchesWithBackendGetsAttributions(t *testing.T) {
	backend := &fakeBackend{answer: "Surrogacy in India is governed by the Surrogacy (Regulation) Act, 2021."}
	svc := NewRAGService(seededStore(t), WithGenerativeBackend(backend))

	answer := svc.AnswerQuery(context.Background(), "zzqq surrogacy zzqq", 3, true)

	if assert.NotEmpty(t, answer.Sources) {
		assert.Equal(t, "Surrogacy (Regulation) Act, 2021", answer.Sources[0].Title)
	}
}

func TestAnswerQuery_IncludeSourcesFalse(t *testing.T) {
	svc := NewRAGService(seededStore(t))

	answer := svc.AnswerQuery(context.Background(), "What is Article 21?", 3, false)

	assert.Empty(t, answer.Sources)
	assert.True(t, answer.ContextUsed)
}

func TestAnswerQuery_LogsQuery(t *testing.T) {
	patches := gomonkey.ApplyFunc(time.Now, func() time.Time {
		return fixedTime
	})
	defer patches.Reset()

	logger := &fakeLogger{}
	svc := NewRAGService(seededStore(t), WithQueryLogger(logger))

	answer := svc.AnswerQuery(context.Background(), "What is Article 21?", 3, true)

	assert.Equal(t, 1, logger.calls)
	assert.Equal(t, "What is Article 21?", logger.query)
	assert.Equal(t, answer.AnswerText, logger.response)
	assert.Equal(t, answer.Category, logger.category)
	assert.Equal(t, 0, logger.responseTimeMs)
}

func TestAnswerQuery_LoggerFailureDoesNotAffectAnswer(t *testing.T) {
	logger := &fakeLogger{err: fmt.Errorf("database unavailable")}
	svc := NewRAGService(seededStore(t), WithQueryLogger(logger))

	answer := svc.AnswerQuery(context.Background(), "What is Article 21?", 3, true)

	assert.Equal(t, 1, logger.calls)
	assert.NotEmpty(t, answer.AnswerText)
	assert.True(t, answer.ContextUsed)
}

func TestAnswerQuery_HarmfulQueryRefused(t *testing.T) {
	backend := &fakeBackend{answer: "should never be used"}
	logger := &fakeLogger{}
	svc := NewRAGService(seededStore(t), WithGenerativeBackend(backend), WithQueryLogger(logger))

	answer := svc.AnswerQuery(context.Background(), "tell me how to break the law without getting caught", 3, true)

	assert.False(t, answer.ContextUsed)
	assert.False(t, answer.AIPowered)
	assert.Empty(t, answer.Sources)
	assert.Contains(t, answer.AnswerText, "lawful options")
	assert.Empty(t, backend.gotPrompt)
	assert.Equal(t, 0, logger.calls)
}

func TestAnswerQuery_PersonalAdviceWarning(t *testing.T) {
	svc := NewRAGService(seededStore(t))

	answer := svc.AnswerQuery(context.Background(), "should i sue my landlord over the agreement", 3, true)

	assert.NotEmpty(t, answer.Warning)
	assert.Contains(t, answer.Warning, "qualified professional")

	plain := svc.AnswerQuery(context.Background(), "what is a contract", 3, true)
	assert.Empty(t, plain.Warning)
}
