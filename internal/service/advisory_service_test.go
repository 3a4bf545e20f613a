package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"agroshop-bot-be/internal/constant"
	"agroshop-bot-be/internal/repository/memory"
	"agroshop-bot-be/internal/shared"
	"agroshop-bot-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdvisoryFixture(t *testing.T, provider *stubProvider) (IAdvisoryService, *memStore) {
	t.Helper()
	st := newMemStore()
	desc := "Foliar boron concentrate."
	seedProduct(st, 101, "Boron 150", 12.50)
	st.products[101].Description = &desc

	sessions := memory.NewAdvisorySessionRepository(time.Hour)
	svc := NewAdvisoryService(newFakeFactory(st), sessions, provider, 10, 6, 0, 0, nopLogger{})
	return svc, st
}

func TestStartSnapshotsProductFacts(t *testing.T) {
	provider := &stubProvider{answer: "Apply 2 ml per liter."}
	svc, _ := newAdvisoryFixture(t, provider)

	session, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)

	assert.Equal(t, "Boron 150", session.ProductName)
	assert.Contains(t, session.ProductFacts, "Foliar boron concentrate.")
	assert.Empty(t, session.History)
}

func TestStartUnknownProduct(t *testing.T) {
	provider := &stubProvider{}
	svc, _ := newAdvisoryFixture(t, provider)

	_, err := svc.Start(context.Background(), 42, 999)

	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestAskAnswersAndPersistsLog(t *testing.T) {
	provider := &stubProvider{answer: "Apply 2 ml per liter."}
	svc, st := newAdvisoryFixture(t, provider)

	_, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)

	answer, err := svc.Ask(context.Background(), 42, "What is the dosage?")
	require.NoError(t, err)

	assert.Equal(t, "Apply 2 ml per liter.", answer)
	require.Len(t, st.logs, 1)
	assert.Equal(t, "What is the dosage?", st.logs[0].Question)
	assert.Equal(t, uint(101), st.logs[0].ProductId)
}

func TestAskSendsSystemPromptAndFacts(t *testing.T) {
	provider := &stubProvider{answer: "ok"}
	svc, _ := newAdvisoryFixture(t, provider)

	_, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), 42, "Dosage?")
	require.NoError(t, err)

	req := provider.lastRequest()
	require.NotEmpty(t, req)
	assert.Equal(t, "system", req[0].Role)
	assert.Contains(t, req[0].Content, "Boron 150")
	assert.Equal(t, "Dosage?", req[len(req)-1].Content)
}

func TestAskEmptyQuestion(t *testing.T) {
	provider := &stubProvider{answer: "ok"}
	svc, _ := newAdvisoryFixture(t, provider)

	_, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)

	_, err = svc.Ask(context.Background(), 42, "   ")

	assert.True(t, errors.Is(err, shared.ErrEmptyQuestion))
}

func TestAskWithoutSession(t *testing.T) {
	provider := &stubProvider{answer: "ok"}
	svc, _ := newAdvisoryFixture(t, provider)

	_, err := svc.Ask(context.Background(), 42, "Dosage?")

	assert.True(t, errors.Is(err, shared.ErrNoActiveSession))
}

func TestAskProviderFailureKeepsHistoryClean(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	st := newMemStore()
	seedProduct(st, 101, "Boron 150", 12.50)
	sessions := memory.NewAdvisorySessionRepository(time.Hour)
	svc := NewAdvisoryService(newFakeFactory(st), sessions, provider, 10, 6, 0, 0, nopLogger{})

	_, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)

	answer, err := svc.Ask(context.Background(), 42, "Dosage?")
	require.NoError(t, err)
	assert.Equal(t, constant.AdvisoryFallbackAnswer, answer)

	// The failed exchange must not pollute the session.
	session, err := sessions.Get(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Empty(t, session.History)
	assert.Empty(t, st.logs)
}

func TestHistoryBoundedFIFO(t *testing.T) {
	provider := &stubProvider{answer: "ok"}
	st := newMemStore()
	seedProduct(st, 101, "Boron 150", 12.50)
	sessions := memory.NewAdvisorySessionRepository(time.Hour)
	svc := NewAdvisoryService(newFakeFactory(st), sessions, provider, 10, 6, 0, 0, nopLogger{})

	_, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)

	// 8 exchanges produce 16 turns; only the 10 most recent survive.
	for i := 0; i < 8; i++ {
		_, err := svc.Ask(context.Background(), 42, fmt.Sprintf("question %d", i))
		require.NoError(t, err)
	}

	session, err := sessions.Get(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, session.History, 10)
	assert.Equal(t, "question 3", session.History[0].Content)
	assert.Equal(t, store.RoleAssistant, session.History[9].Role)
}

func TestAskCarriesOnlyRecentContext(t *testing.T) {
	provider := &stubProvider{answer: "ok"}
	svc, _ := newAdvisoryFixture(t, provider)

	_, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		_, err := svc.Ask(context.Background(), 42, fmt.Sprintf("question %d", i))
		require.NoError(t, err)
	}

	// system + 6 recent turns + new question
	req := provider.lastRequest()
	assert.Len(t, req, 8)
}

func TestEndSession(t *testing.T) {
	provider := &stubProvider{answer: "ok"}
	svc, _ := newAdvisoryFixture(t, provider)

	ended, err := svc.End(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ended)

	_, err = svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)

	ended, err = svc.End(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ended)

	active, err := svc.Active(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestConcurrentAsksKeepBothExchanges(t *testing.T) {
	provider := &stubProvider{answer: "ok"}
	st := newMemStore()
	seedProduct(st, 101, "Boron 150", 12.50)
	sessions := memory.NewAdvisorySessionRepository(time.Hour)
	svc := NewAdvisoryService(newFakeFactory(st), sessions, provider, 10, 6, 0, 0, nopLogger{})

	_, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, q := range []string{"Dosage?", "Interval?"} {
		wg.Add(1)
		go func(question string) {
			defer wg.Done()
			_, err := svc.Ask(context.Background(), 42, question)
			assert.NoError(t, err)
		}(q)
	}
	wg.Wait()

	// Both exchanges must survive; an unserialized read-modify-write would
	// let the second save overwrite the first.
	session, err := sessions.Get(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Len(t, session.History, 4)

	questions := []string{}
	for _, turn := range session.History {
		if turn.Role == store.RoleUser {
			questions = append(questions, turn.Content)
		}
	}
	assert.ElementsMatch(t, []string{"Dosage?", "Interval?"}, questions)
	assert.Len(t, st.logs, 2)
}

func TestAskUsesConfiguredSampling(t *testing.T) {
	provider := &stubProvider{answer: "ok"}
	st := newMemStore()
	seedProduct(st, 101, "Boron 150", 12.50)
	sessions := memory.NewAdvisorySessionRepository(time.Hour)
	svc := NewAdvisoryService(newFakeFactory(st), sessions, provider, 10, 6, 0.2, 256, nopLogger{})

	_, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), 42, "Dosage?")
	require.NoError(t, err)

	opts := provider.lastOptions()
	assert.Equal(t, 0.2, opts.Temperature)
	assert.Equal(t, 256, opts.MaxTokens)
}

func TestStartReplacesExistingSession(t *testing.T) {
	provider := &stubProvider{answer: "ok"}
	svc, st := newAdvisoryFixture(t, provider)
	seedProduct(st, 102, "Zinc Chelate", 14.00)

	_, err := svc.Start(context.Background(), 42, 101)
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), 42, "Dosage?")
	require.NoError(t, err)

	session, err := svc.Start(context.Background(), 42, 102)
	require.NoError(t, err)

	assert.Equal(t, uint(102), session.ProductID)
	assert.Empty(t, session.History)
}
