package service

import (
	"context"
	"fmt"

	"agroshop-bot-be/internal/dto"
	"agroshop-bot-be/internal/repository/unitofwork"
)

// IAdminService serves the operator dashboard aggregates.
type IAdminService interface {
	GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error)
	ListConsultations(ctx context.Context, chatId int64, limit int) ([]dto.ConsultationLogResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{uowFactory: uowFactory}
}

func (s *adminService) GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	views, err := uow.ProductViewRepository().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count views: %w", err)
	}
	consultations, err := uow.ConsultationLogRepository().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count consultations: %w", err)
	}

	return &dto.StatisticsResponse{
		Users:         users,
		ProductViews:  views,
		Consultations: consultations,
	}, nil
}

// ListConsultations returns a user's persisted advisory exchanges for the
// operator dashboard.
func (s *adminService) ListConsultations(ctx context.Context, chatId int64, limit int) ([]dto.ConsultationLogResponse, error) {
	if limit <= 0 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.ConsultationLogRepository().ListByChatId(ctx, chatId, limit)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}

	out := make([]dto.ConsultationLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ConsultationLogResponse{
			ChatId:    l.UserChatId,
			ProductId: l.ProductId,
			Question:  l.Question,
			Answer:    l.Answer,
			CreatedAt: l.CreatedAt,
		})
	}
	return out, nil
}
