package service

import (
	"context"
	"fmt"

	"agroshop-bot-be/internal/constant"
	"agroshop-bot-be/internal/dto"
	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/pkg/logger"
	"agroshop-bot-be/internal/repository/unitofwork"
	"agroshop-bot-be/internal/shared"
	"agroshop-bot-be/pkg/paginate"
)

// ICatalogService serves the browsable category forest and product pages.
type ICatalogService interface {
	ListRoots(ctx context.Context) ([]dto.CategoryNodeResponse, error)
	OpenCategory(ctx context.Context, categoryId uint) (*dto.CategoryViewResponse, error)
	PageProducts(ctx context.Context, categoryId uint, offset int) (*dto.ProductPageResponse, error)
	GetProduct(ctx context.Context, productId uint) (*dto.ProductCardResponse, error)
	Breadcrumb(ctx context.Context, categoryId uint) ([]string, error)
	Search(ctx context.Context, term string) ([]dto.ProductCardResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	pageSize   int
	logger     logger.ILogger
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, pageSize int, logger logger.ILogger) ICatalogService {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &catalogService{
		uowFactory: uowFactory,
		pageSize:   pageSize,
		logger:     logger,
	}
}

func (s *catalogService) ListRoots(ctx context.Context) ([]dto.CategoryNodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	roots, err := uow.CategoryRepository().ListRoots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roots: %w", err)
	}
	return s.toCategoryNodes(ctx, uow, roots)
}

// OpenCategory resolves the branch-or-leaf decision: a category with child
// categories lists those children; otherwise it lists the first page of its
// products. Children win when both exist.
func (s *catalogService) OpenCategory(ctx context.Context, categoryId uint) (*dto.CategoryViewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	catRepo := uow.CategoryRepository()

	category, err := catRepo.GetById(ctx, categoryId)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d: %w", categoryId, shared.ErrNotFound)
	}

	breadcrumb, err := s.breadcrumbFrom(ctx, uow, category)
	if err != nil {
		return nil, err
	}

	view := &dto.CategoryViewResponse{
		Category:   dto.CategoryNodeResponse{Id: category.Id, Name: category.Name},
		Breadcrumb: breadcrumb,
	}

	children, err := catRepo.ListChildren(ctx, categoryId)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	if len(children) > 0 {
		view.Children, err = s.toCategoryNodes(ctx, uow, children)
		if err != nil {
			return nil, err
		}
		return view, nil
	}

	page, err := s.pageFrom(ctx, uow, categoryId, 0)
	if err != nil {
		return nil, err
	}
	view.Products = page
	return view, nil
}

// PageProducts serves one window of a leaf category. A stale offset beyond
// the current count degrades to the first page instead of erroring.
func (s *catalogService) PageProducts(ctx context.Context, categoryId uint, offset int) (*dto.ProductPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().GetById(ctx, categoryId)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d: %w", categoryId, shared.ErrNotFound)
	}

	return s.pageFrom(ctx, uow, categoryId, offset)
}

func (s *catalogService) pageFrom(ctx context.Context, uow unitofwork.UnitOfWork, categoryId uint, offset int) (*dto.ProductPageResponse, error) {
	prodRepo := uow.ProductRepository()

	total, err := prodRepo.CountByCategory(ctx, categoryId)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	if paginate.Stale(int(total), offset) {
		s.logger.Warn("catalog", "stale page offset, resetting to first page", map[string]interface{}{
			"category_id": categoryId,
			"offset":      offset,
			"total":       total,
		})
		offset = 0
	}

	window := paginate.Compute(int(total), s.pageSize, offset)
	products, err := prodRepo.ListByCategory(ctx, categoryId, window.Limit, window.Offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	next, _ := paginate.NextOffset(window)
	page := &dto.ProductPageResponse{
		CategoryId: categoryId,
		Items:      toProductCards(products),
		Page:       window.Number,
		TotalPages: window.TotalPages,
		HasPrev:    window.HasPrev,
		HasNext:    window.HasNext,
		PrevOffset: paginate.PrevOffset(window.Offset, s.pageSize),
		NextOffset: next,
	}
	return page, nil
}

func (s *catalogService) GetProduct(ctx context.Context, productId uint) (*dto.ProductCardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().GetById(ctx, productId)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productId, shared.ErrNotFound)
	}
	card := toProductCard(product)
	return &card, nil
}

// Breadcrumb renders the path from root to the category, walking at most
// BreadcrumbMaxDepth parents. A walk that exceeds the bound means the
// parent chain loops.
func (s *catalogService) Breadcrumb(ctx context.Context, categoryId uint) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	category, err := uow.CategoryRepository().GetById(ctx, categoryId)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d: %w", categoryId, shared.ErrNotFound)
	}
	return s.breadcrumbFrom(ctx, uow, category)
}

func (s *catalogService) breadcrumbFrom(ctx context.Context, uow unitofwork.UnitOfWork, category *entity.Category) ([]string, error) {
	catRepo := uow.CategoryRepository()

	names := []string{category.Name}
	current := category
	for depth := 0; current.ParentId != nil; depth++ {
		if depth >= constant.BreadcrumbMaxDepth {
			return nil, fmt.Errorf("category %d: %w", category.Id, shared.ErrCycleDetected)
		}
		parent, err := catRepo.GetById(ctx, *current.ParentId)
		if err != nil {
			return nil, fmt.Errorf("get parent: %w", err)
		}
		if parent == nil {
			// Dangling parent reference: stop the walk, keep what we have.
			break
		}
		names = append([]string{parent.Name}, names...)
		current = parent
	}
	return names, nil
}

func (s *catalogService) Search(ctx context.Context, term string) ([]dto.ProductCardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().Search(ctx, term, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return toProductCards(products), nil
}

// toCategoryNodes marks each node with whether opening it shows anything:
// child categories or at least one product.
func (s *catalogService) toCategoryNodes(ctx context.Context, uow unitofwork.UnitOfWork, categories []entity.Category) ([]dto.CategoryNodeResponse, error) {
	out := make([]dto.CategoryNodeResponse, 0, len(categories))
	for _, c := range categories {
		hasItems, err := s.categoryHasItems(ctx, uow, c.Id)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.CategoryNodeResponse{Id: c.Id, Name: c.Name, HasItems: hasItems})
	}
	return out, nil
}

func (s *catalogService) categoryHasItems(ctx context.Context, uow unitofwork.UnitOfWork, categoryId uint) (bool, error) {
	children, err := uow.CategoryRepository().ListChildren(ctx, categoryId)
	if err != nil {
		return false, fmt.Errorf("list children: %w", err)
	}
	if len(children) > 0 {
		return true, nil
	}
	count, err := uow.ProductRepository().CountByCategory(ctx, categoryId)
	if err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	return count > 0, nil
}

func toProductCard(p *entity.Product) dto.ProductCardResponse {
	return dto.ProductCardResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		CategoryId:  p.CategoryId,
	}
}

func toProductCards(products []entity.Product) []dto.ProductCardResponse {
	out := make([]dto.ProductCardResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductCard(&products[i]))
	}
	return out
}
