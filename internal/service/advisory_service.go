package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"agroshop-bot-be/internal/constant"
	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/pkg/logger"
	"agroshop-bot-be/internal/repository/contract"
	"agroshop-bot-be/internal/repository/unitofwork"
	"agroshop-bot-be/internal/shared"
	"agroshop-bot-be/pkg/advisor"
	"agroshop-bot-be/pkg/store"
)

// IAdvisoryService runs bounded product consultations. One session per user;
// starting a new one replaces the old, and session updates are serialized
// per user.
type IAdvisoryService interface {
	Start(ctx context.Context, chatId int64, productId uint) (*store.AdvisorySession, error)
	Ask(ctx context.Context, chatId int64, question string) (string, error)
	End(ctx context.Context, chatId int64) (bool, error)
	Active(ctx context.Context, chatId int64) (bool, error)
}

type advisoryService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessionRepo  contract.AdvisorySessionRepository
	provider     advisor.Provider
	historyTurns int
	contextTurns int
	temperature  float64
	maxTokens    int
	logger       logger.ILogger
	sessionLocks sync.Map // chatId -> *sync.Mutex
}

func NewAdvisoryService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo contract.AdvisorySessionRepository,
	provider advisor.Provider,
	historyTurns, contextTurns int,
	temperature float64,
	maxTokens int,
	logger logger.ILogger,
) IAdvisoryService {
	if historyTurns <= 0 {
		historyTurns = constant.AdvisoryHistoryTurns
	}
	if contextTurns <= 0 {
		contextTurns = constant.AdvisoryContextTurns
	}
	if temperature <= 0 {
		temperature = constant.AdvisoryTemperature
	}
	if maxTokens <= 0 {
		maxTokens = constant.AdvisoryMaxTokens
	}
	return &advisoryService{
		uowFactory:   uowFactory,
		sessionRepo:  sessionRepo,
		provider:     provider,
		historyTurns: historyTurns,
		contextTurns: contextTurns,
		temperature:  temperature,
		maxTokens:    maxTokens,
		logger:       logger,
	}
}

// lockSession serializes the read-modify-write cycle on one user's session
// so concurrent asks never lose an exchange.
func (s *advisoryService) lockSession(chatId int64) *sync.Mutex {
	mu, _ := s.sessionLocks.LoadOrStore(chatId, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Start opens a consultation about the product. The product facts are
// snapshotted into the session so catalog edits never leak into an ongoing
// conversation.
func (s *advisoryService) Start(ctx context.Context, chatId int64, productId uint) (*store.AdvisorySession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().GetById(ctx, productId)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productId, shared.ErrNotFound)
	}

	session := &store.AdvisorySession{
		ChatID:       chatId,
		ProductID:    productId,
		ProductName:  product.Name,
		ProductFacts: renderProductFacts(product),
		StartedAt:    time.Now(),
	}

	mu := s.lockSession(chatId)
	mu.Lock()
	defer mu.Unlock()
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("advisory", "consultation started", map[string]interface{}{
		"chat_id":    chatId,
		"product_id": productId,
	})
	return session, nil
}

// Ask answers one question inside the active session. Provider failures
// return the fixed fallback text without touching the session history, so a
// retry sees the same context the failed call did.
func (s *advisoryService) Ask(ctx context.Context, chatId int64, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", shared.ErrEmptyQuestion
	}

	mu := s.lockSession(chatId)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.sessionRepo.Get(ctx, chatId)
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return "", shared.ErrNoActiveSession
	}

	messages := s.buildMessages(session, question)

	answer, err := s.provider.Chat(ctx, messages,
		advisor.WithTemperature(s.temperature),
		advisor.WithMaxTokens(s.maxTokens),
	)
	if err != nil {
		s.logger.Error("advisory", "completion failed", map[string]interface{}{
			"chat_id":    chatId,
			"product_id": session.ProductID,
			"error":      err.Error(),
		})
		return constant.AdvisoryFallbackAnswer, nil
	}

	session.Append(store.RoleUser, question, s.historyTurns)
	session.Append(store.RoleAssistant, answer, s.historyTurns)
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	s.persistLog(ctx, session, question, answer)
	return answer, nil
}

// End closes the active session; reports false when there was none.
func (s *advisoryService) End(ctx context.Context, chatId int64) (bool, error) {
	mu := s.lockSession(chatId)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.sessionRepo.Get(ctx, chatId)
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return false, nil
	}
	if err := s.sessionRepo.Delete(ctx, chatId); err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return true, nil
}

func (s *advisoryService) Active(ctx context.Context, chatId int64) (bool, error) {
	session, err := s.sessionRepo.Get(ctx, chatId)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}

func (s *advisoryService) buildMessages(session *store.AdvisorySession, question string) []advisor.Message {
	messages := []advisor.Message{
		{
			Role:    "system",
			Content: constant.AdvisorySystemPrompt + "\n\nProduct under discussion:\n" + session.ProductFacts,
		},
	}
	for _, turn := range session.Recent(s.contextTurns) {
		messages = append(messages, advisor.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, advisor.Message{Role: store.RoleUser, Content: question})
	return messages
}

// persistLog writes the durable audit row. Failures are logged and dropped;
// the user already has their answer.
func (s *advisoryService) persistLog(ctx context.Context, session *store.AdvisorySession, question, answer string) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := &entity.ConsultationLog{
		UserChatId: session.ChatID,
		ProductId:  session.ProductID,
		Question:   question,
		Answer:     answer,
		Context: map[string]interface{}{
			"product_name":  session.ProductName,
			"history_turns": len(session.History),
		},
	}
	if err := uow.ConsultationLogRepository().Create(ctx, record); err != nil {
		s.logger.Error("advisory", "failed to persist consultation log", map[string]interface{}{
			"chat_id": session.ChatID,
			"error":   err.Error(),
		})
	}
}

func renderProductFacts(p *entity.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	if p.Description != nil && *p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", *p.Description)
	}
	if p.Price != nil {
		fmt.Fprintf(&b, "Price: %.2f\n", *p.Price)
	}
	if !p.Available {
		b.WriteString("Currently out of stock.\n")
	}
	return b.String()
}
