package service

import (
	"context"
	"fmt"
	"time"

	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/pkg/logger"
	"agroshop-bot-be/internal/repository/unitofwork"
	"agroshop-bot-be/internal/shared"
	"agroshop-bot-be/pkg/catalogfeed"
)

// IFeedService mirrors the upstream catalog into the local tables.
type IFeedService interface {
	Refresh(ctx context.Context) error
	RunPeriodic(ctx context.Context, interval time.Duration)
}

type feedService struct {
	client     *catalogfeed.Client
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewFeedService(client *catalogfeed.Client, uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IFeedService {
	return &feedService{
		client:     client,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Refresh pulls one snapshot and upserts it inside a transaction. Categories
// land before products so the FK direction always resolves.
func (s *feedService) Refresh(ctx context.Context) error {
	snapshot, err := s.client.FetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("fetch snapshot: %v: %w", err, shared.ErrServiceUnavailable)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer uow.Rollback()

	catRepo := uow.CategoryRepository()
	for _, fc := range snapshot.Categories {
		category := &entity.Category{Id: fc.Id, Name: fc.Name, ParentId: fc.ParentId}
		if err := catRepo.Upsert(ctx, category); err != nil {
			return fmt.Errorf("upsert category %d: %w", fc.Id, err)
		}
	}

	prodRepo := uow.ProductRepository()
	for _, fp := range snapshot.Products {
		product := &entity.Product{
			Id:          fp.Id,
			Name:        fp.Name,
			Description: fp.Description,
			Price:       fp.Price,
			Available:   fp.Available,
			ImageURL:    fp.ImageURL,
			CategoryId:  fp.CategoryId,
		}
		if err := prodRepo.Upsert(ctx, product); err != nil {
			return fmt.Errorf("upsert product %d: %w", fp.Id, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.logger.Info("feed", "catalog refreshed", map[string]interface{}{
		"categories": len(snapshot.Categories),
		"products":   len(snapshot.Products),
	})
	return nil
}

// RunPeriodic refreshes on the interval until the context is cancelled.
// Failures are logged and the next tick retries.
func (s *feedService) RunPeriodic(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					s.logger.Warn("feed", "periodic refresh failed", map[string]interface{}{
						"error": err.Error(),
					})
				}
			}
		}
	}()
}
