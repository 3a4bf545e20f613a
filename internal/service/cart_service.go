package service

import (
	"context"
	"fmt"
	"sync"

	"agroshop-bot-be/internal/dto"
	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/pkg/logger"
	"agroshop-bot-be/internal/repository/unitofwork"
	"agroshop-bot-be/internal/shared"
)

// ICartService owns the persistent per-user cart. All mutations are
// serialized per (user, product) so rapid duplicate taps accumulate instead
// of overwriting each other.
type ICartService interface {
	AddItem(ctx context.Context, chatId int64, productId uint, quantity float64) (*dto.CartLineResponse, error)
	SetQuantity(ctx context.Context, chatId int64, productId uint, quantity float64) (*dto.CartLineResponse, error)
	RemoveItem(ctx context.Context, chatId int64, productId uint) (bool, error)
	Clear(ctx context.Context, chatId int64) (int64, error)
	Summary(ctx context.Context, chatId int64) (*dto.CartSummaryResponse, error)
}

type cartService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	lineLocks  sync.Map // "chatId:productId" -> *sync.Mutex
}

func NewCartService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ICartService {
	return &cartService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *cartService) lockLine(chatId int64, productId uint) *sync.Mutex {
	key := fmt.Sprintf("%d:%d", chatId, productId)
	mu, _ := s.lineLocks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// AddItem accumulates quantity onto the user's line for the product,
// creating the line with a product snapshot on first add.
func (s *cartService) AddItem(ctx context.Context, chatId int64, productId uint, quantity float64) (*dto.CartLineResponse, error) {
	if quantity <= 0 {
		quantity = 1
	}

	mu := s.lockLine(chatId, productId)
	mu.Lock()
	defer mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer uow.Rollback()

	product, err := uow.ProductRepository().GetById(ctx, productId)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productId, shared.ErrNotFound)
	}

	cartRepo := uow.CartRepository()
	line, err := cartRepo.GetLine(ctx, chatId, productId)
	if err != nil {
		return nil, fmt.Errorf("get cart line: %w", err)
	}

	if line == nil {
		var price float64
		if product.Price != nil {
			price = *product.Price
		}
		line = &entity.CartItem{
			UserChatId:   chatId,
			ProductId:    productId,
			ProductName:  product.Name,
			ProductPrice: price,
			ProductImage: product.ImageURL,
			Quantity:     quantity,
			Unit:         "pc",
		}
		if err := cartRepo.Create(ctx, line); err != nil {
			return nil, fmt.Errorf("create cart line: %w", err)
		}
	} else {
		line.Quantity += quantity
		if err := cartRepo.Update(ctx, line); err != nil {
			return nil, fmt.Errorf("update cart line: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	res := toCartLine(line)
	return &res, nil
}

// SetQuantity pins the line to an absolute quantity. Zero or less removes
// the line.
func (s *cartService) SetQuantity(ctx context.Context, chatId int64, productId uint, quantity float64) (*dto.CartLineResponse, error) {
	mu := s.lockLine(chatId, productId)
	mu.Lock()
	defer mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer uow.Rollback()

	cartRepo := uow.CartRepository()
	line, err := cartRepo.GetLine(ctx, chatId, productId)
	if err != nil {
		return nil, fmt.Errorf("get cart line: %w", err)
	}
	if line == nil {
		return nil, fmt.Errorf("cart line for product %d: %w", productId, shared.ErrStaleState)
	}

	if quantity <= 0 {
		if err := cartRepo.DeleteLine(ctx, chatId, productId); err != nil {
			return nil, fmt.Errorf("delete cart line: %w", err)
		}
		if err := uow.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return nil, nil
	}

	line.Quantity = quantity
	if err := cartRepo.Update(ctx, line); err != nil {
		return nil, fmt.Errorf("update cart line: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	res := toCartLine(line)
	return &res, nil
}

// RemoveItem deletes the line; removing an absent line reports false rather
// than failing.
func (s *cartService) RemoveItem(ctx context.Context, chatId int64, productId uint) (bool, error) {
	mu := s.lockLine(chatId, productId)
	mu.Lock()
	defer mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	cartRepo := uow.CartRepository()

	line, err := cartRepo.GetLine(ctx, chatId, productId)
	if err != nil {
		return false, fmt.Errorf("get cart line: %w", err)
	}
	if line == nil {
		return false, nil
	}
	if err := cartRepo.DeleteLine(ctx, chatId, productId); err != nil {
		return false, fmt.Errorf("delete cart line: %w", err)
	}
	return true, nil
}

func (s *cartService) Clear(ctx context.Context, chatId int64) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.CartRepository().Clear(ctx, chatId)
	if err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}
	s.logger.Info("cart", "cart cleared", map[string]interface{}{
		"chat_id": chatId,
		"removed": removed,
	})
	return removed, nil
}

func (s *cartService) Summary(ctx context.Context, chatId int64) (*dto.CartSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lines, err := uow.CartRepository().ListLines(ctx, chatId)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}

	summary := &dto.CartSummaryResponse{
		Lines: make([]dto.CartLineResponse, 0, len(lines)),
		Count: len(lines),
	}
	for i := range lines {
		l := toCartLine(&lines[i])
		summary.Lines = append(summary.Lines, l)
		summary.Total += l.LineTotal
	}
	return summary, nil
}

func toCartLine(line *entity.CartItem) dto.CartLineResponse {
	return dto.CartLineResponse{
		ProductId:    line.ProductId,
		ProductName:  line.ProductName,
		ProductPrice: line.ProductPrice,
		Quantity:     line.Quantity,
		Unit:         line.Unit,
		LineTotal:    line.LineTotal(),
	}
}
