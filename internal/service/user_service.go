package service

import (
	"context"
	"fmt"
	"time"

	"agroshop-bot-be/internal/dto"
	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/pkg/logger"
	"agroshop-bot-be/internal/repository/unitofwork"
)

// IUserService maintains the user registry keyed by chat id.
type IUserService interface {
	RegisterOrUpdate(ctx context.Context, event *dto.InboundEvent) (*entity.User, error)
	CapturePhone(ctx context.Context, chatId int64, phone string) (*entity.User, error)
	HasPhone(ctx context.Context, chatId int64) (bool, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// RegisterOrUpdate upserts the sender of an inbound event. Profile fields
// refresh on every contact; LastActiveAt always advances.
func (s *userService) RegisterOrUpdate(ctx context.Context, event *dto.InboundEvent) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.GetByChatId(ctx, event.ChatID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	now := time.Now()
	if user == nil {
		user = &entity.User{
			ChatId:       event.ChatID,
			Username:     event.Username,
			FirstName:    event.FirstName,
			LastName:     event.LastName,
			LastActiveAt: &now,
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		s.logger.Info("user", "registered new user", map[string]interface{}{
			"chat_id": user.ChatId,
		})
		return user, nil
	}

	if event.Username != nil {
		user.Username = event.Username
	}
	if event.FirstName != nil {
		user.FirstName = event.FirstName
	}
	if event.LastName != nil {
		user.LastName = event.LastName
	}
	user.LastActiveAt = &now

	if err := repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// CapturePhone records the one-time phone disclosure. Re-sharing simply
// overwrites the stored number.
func (s *userService) CapturePhone(ctx context.Context, chatId int64, phone string) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.GetByChatId(ctx, chatId)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		user = &entity.User{ChatId: chatId, Phone: &phone}
		if err := repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}

	user.Phone = &phone
	if err := repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("user", "phone captured", map[string]interface{}{
		"chat_id": chatId,
	})
	return user, nil
}

func (s *userService) HasPhone(ctx context.Context, chatId int64) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().GetByChatId(ctx, chatId)
	if err != nil {
		return false, err
	}
	return user != nil && user.Verified(), nil
}
