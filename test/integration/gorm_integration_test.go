package integration

import (
	"context"
	"log"
	"math/rand"
	"os"
	"testing"

	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/model"
	"agroshop-bot-be/internal/repository/unitofwork"
	"agroshop-bot-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	require.NoError(t, gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.ProductView{},
		&model.ConsultationLog{},
	))

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.CartRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	chatId := rand.Int63n(1_000_000_000) + 1_000_000_000

	t.Run("Check User Repository", func(t *testing.T) {
		ctx := context.Background()
		user := &entity.User{ChatId: chatId}
		assert.NoError(t, uow.UserRepository().Create(ctx, user))

		got, err := uow.UserRepository().GetByChatId(ctx, chatId)
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("Check Transactional Cart Flow", func(t *testing.T) {
		ctx := context.Background()
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))
		defer txUow.Rollback()

		category := &entity.Category{Name: "Integration Category"}
		require.NoError(t, txUow.CategoryRepository().Upsert(ctx, category))

		price := 9.99
		product := &entity.Product{
			Name:       "Integration Product",
			Price:      &price,
			Available:  true,
			CategoryId: category.Id,
		}
		require.NoError(t, txUow.ProductRepository().Upsert(ctx, product))

		line := &entity.CartItem{
			UserChatId:   chatId,
			ProductId:    product.Id,
			ProductName:  product.Name,
			ProductPrice: price,
			Quantity:     2,
			Unit:         "pc",
		}
		require.NoError(t, txUow.CartRepository().Create(ctx, line))

		lines, err := txUow.CartRepository().ListLines(ctx, chatId)
		assert.NoError(t, err)
		assert.Len(t, lines, 1)

		// Rollback via defer keeps the table clean.
	})

	t.Run("Check Tracking Repositories", func(t *testing.T) {
		ctx := context.Background()
		_, err := uow.ProductViewRepository().Count(ctx)
		assert.NoError(t, err)
		_, err = uow.ConsultationLogRepository().Count(ctx)
		assert.NoError(t, err)
	})
}
