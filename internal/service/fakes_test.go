package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/repository/contract"
	"agroshop-bot-be/internal/repository/unitofwork"
	"agroshop-bot-be/pkg/advisor"
)

// In-memory repositories backing the service tests. One store is shared by
// every unit of work the fake factory hands out, mirroring a single
// database.

type memStore struct {
	mu sync.Mutex

	users      map[int64]*entity.User
	categories map[uint]*entity.Category
	products   map[uint]*entity.Product
	cartLines  map[string]*entity.CartItem
	views      []entity.ProductView
	logs       []entity.ConsultationLog

	nextCartId uint
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[int64]*entity.User),
		categories: make(map[uint]*entity.Category),
		products:   make(map[uint]*entity.Product),
		cartLines:  make(map[string]*entity.CartItem),
	}
}

func cartKey(chatId int64, productId uint) string {
	return fmt.Sprintf("%d:%d", chatId, productId)
}

type fakeFactory struct {
	store *memStore
}

func newFakeFactory(store *memStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *memStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUow) CategoryRepository() contract.CategoryRepository {
	return &fakeCategoryRepo{store: u.store}
}
func (u *fakeUow) ProductRepository() contract.ProductRepository {
	return &fakeProductRepo{store: u.store}
}
func (u *fakeUow) CartRepository() contract.CartRepository {
	return &fakeCartRepo{store: u.store}
}
func (u *fakeUow) ProductViewRepository() contract.ProductViewRepository {
	return &fakeViewRepo{store: u.store}
}
func (u *fakeUow) ConsultationLogRepository() contract.ConsultationLogRepository {
	return &fakeLogRepo{store: u.store}
}

// --- users ---

type fakeUserRepo struct {
	store *memStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users[user.ChatId] = &copied
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *fakeUserRepo) GetByChatId(ctx context.Context, chatId int64) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[chatId]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.users)), nil
}

// --- categories ---

type fakeCategoryRepo struct {
	store *memStore
}

func (r *fakeCategoryRepo) GetById(ctx context.Context, id uint) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c, ok := r.store.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListRoots(ctx context.Context) ([]entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Category
	for _, c := range r.store.categories {
		if c.ParentId == nil {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) ListChildren(ctx context.Context, parentId uint) ([]entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Category
	for _, c := range r.store.categories {
		if c.ParentId != nil && *c.ParentId == parentId {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Upsert(ctx context.Context, category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *category
	r.store.categories[category.Id] = &copied
	return nil
}

// --- products ---

type fakeProductRepo struct {
	store *memStore
}

func (r *fakeProductRepo) GetById(ctx context.Context, id uint) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) inCategory(categoryId uint) []entity.Product {
	var out []entity.Product
	for _, p := range r.store.products {
		if p.CategoryId == categoryId && p.Available {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, categoryId uint, limit, offset int) ([]entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := r.inCategory(categoryId)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeProductRepo) CountByCategory(ctx context.Context, categoryId uint) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.inCategory(categoryId))), nil
}

func (r *fakeProductRepo) Search(ctx context.Context, term string, limit int) ([]entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Product
	for _, p := range r.store.products {
		if p.Available && strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) Upsert(ctx context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *product
	r.store.products[product.Id] = &copied
	return nil
}

// --- cart ---

type fakeCartRepo struct {
	store *memStore
}

func (r *fakeCartRepo) GetLine(ctx context.Context, chatId int64, productId uint) (*entity.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if l, ok := r.store.cartLines[cartKey(chatId, productId)]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeCartRepo) ListLines(ctx context.Context, chatId int64) ([]entity.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.CartItem
	for _, l := range r.store.cartLines {
		if l.UserChatId == chatId {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (r *fakeCartRepo) Create(ctx context.Context, line *entity.CartItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextCartId++
	line.Id = r.store.nextCartId
	copied := *line
	r.store.cartLines[cartKey(line.UserChatId, line.ProductId)] = &copied
	return nil
}

func (r *fakeCartRepo) Update(ctx context.Context, line *entity.CartItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *line
	r.store.cartLines[cartKey(line.UserChatId, line.ProductId)] = &copied
	return nil
}

func (r *fakeCartRepo) DeleteLine(ctx context.Context, chatId int64, productId uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.cartLines, cartKey(chatId, productId))
	return nil
}

func (r *fakeCartRepo) Clear(ctx context.Context, chatId int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var removed int64
	for k, l := range r.store.cartLines {
		if l.UserChatId == chatId {
			delete(r.store.cartLines, k)
			removed++
		}
	}
	return removed, nil
}

// --- tracking ---

type fakeViewRepo struct {
	store *memStore
}

func (r *fakeViewRepo) Create(ctx context.Context, view *entity.ProductView) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.views = append(r.store.views, *view)
	return nil
}

func (r *fakeViewRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.views)), nil
}

func (r *fakeViewRepo) CountByProduct(ctx context.Context, productId uint) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, v := range r.store.views {
		if v.ProductId == productId {
			count++
		}
	}
	return count, nil
}

type fakeLogRepo struct {
	store *memStore
}

func (r *fakeLogRepo) Create(ctx context.Context, log *entity.ConsultationLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.logs = append(r.store.logs, *log)
	return nil
}

func (r *fakeLogRepo) ListByChatId(ctx context.Context, chatId int64, limit int) ([]entity.ConsultationLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.ConsultationLog
	for _, l := range r.store.logs {
		if l.UserChatId == chatId {
			out = append(out, l)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeLogRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.logs)), nil
}

// --- collaborators ---

type stubProvider struct {
	mu       sync.Mutex
	answer   string
	err      error
	requests [][]advisor.Message
	options  []advisor.Options
}

func (p *stubProvider) Chat(ctx context.Context, history []advisor.Message, opts ...advisor.Option) (string, error) {
	var applied advisor.Options
	for _, opt := range opts {
		opt(&applied)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, history)
	p.options = append(p.options, applied)
	if p.err != nil {
		return "", p.err
	}
	return p.answer, nil
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, opts ...advisor.Option) (string, error) {
	return p.Chat(ctx, []advisor.Message{{Role: "user", Content: prompt}}, opts...)
}

func (p *stubProvider) lastRequest() []advisor.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		return nil
	}
	return p.requests[len(p.requests)-1]
}

func (p *stubProvider) lastOptions() advisor.Options {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.options) == 0 {
		return advisor.Options{}
	}
	return p.options[len(p.options)-1]
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
