package service

import (
	"context"
	"testing"

	"agroshop-bot-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatistics(t *testing.T) {
	store := newMemStore()
	store.users[1] = &entity.User{ChatId: 1}
	store.users[2] = &entity.User{ChatId: 2}
	store.views = append(store.views, entity.ProductView{ProductId: 101})
	store.logs = append(store.logs, entity.ConsultationLog{ProductId: 101})

	svc := NewAdminService(newFakeFactory(store))

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(1), stats.ProductViews)
	assert.Equal(t, int64(1), stats.Consultations)
}

func TestListConsultations(t *testing.T) {
	store := newMemStore()
	store.logs = append(store.logs,
		entity.ConsultationLog{UserChatId: 42, ProductId: 101, Question: "Dosage?", Answer: "2 ml per liter."},
		entity.ConsultationLog{UserChatId: 42, ProductId: 102, Question: "Interval?", Answer: "Every 10 days."},
		entity.ConsultationLog{UserChatId: 7, ProductId: 101, Question: "Shelf life?", Answer: "Two years."},
	)

	svc := NewAdminService(newFakeFactory(store))

	logs, err := svc.ListConsultations(context.Background(), 42, 0)
	require.NoError(t, err)

	require.Len(t, logs, 2)
	assert.Equal(t, "Dosage?", logs[0].Question)
	assert.Equal(t, uint(102), logs[1].ProductId)

	logs, err = svc.ListConsultations(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
