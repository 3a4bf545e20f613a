package mapper

import (
	"encoding/json"

	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/model"
)

type ProductViewMapper struct{}

func NewProductViewMapper() *ProductViewMapper {
	return &ProductViewMapper{}
}

func (m *ProductViewMapper) ToEntity(v *model.ProductView) *entity.ProductView {
	if v == nil {
		return nil
	}
	return &entity.ProductView{
		Id:         v.Id,
		UserChatId: v.UserChatId,
		ProductId:  v.ProductId,
		Category:   v.Category,
		Source:     v.Source,
		ViewedAt:   v.ViewedAt,
	}
}

func (m *ProductViewMapper) ToModel(v *entity.ProductView) *model.ProductView {
	if v == nil {
		return nil
	}
	return &model.ProductView{
		Id:         v.Id,
		UserChatId: v.UserChatId,
		ProductId:  v.ProductId,
		Category:   v.Category,
		Source:     v.Source,
		ViewedAt:   v.ViewedAt,
	}
}

type ConsultationLogMapper struct{}

func NewConsultationLogMapper() *ConsultationLogMapper {
	return &ConsultationLogMapper{}
}

func (m *ConsultationLogMapper) ToEntity(l *model.ConsultationLog) *entity.ConsultationLog {
	if l == nil {
		return nil
	}
	var ctx map[string]interface{}
	if len(l.Context) > 0 {
		// Malformed rows degrade to a nil context rather than failing reads.
		_ = json.Unmarshal(l.Context, &ctx)
	}
	return &entity.ConsultationLog{
		Id:         l.Id,
		UserChatId: l.UserChatId,
		ProductId:  l.ProductId,
		Question:   l.Question,
		Answer:     l.Answer,
		Context:    ctx,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *ConsultationLogMapper) ToModel(l *entity.ConsultationLog) (*model.ConsultationLog, error) {
	if l == nil {
		return nil, nil
	}
	out := &model.ConsultationLog{
		Id:         l.Id,
		UserChatId: l.UserChatId,
		ProductId:  l.ProductId,
		Question:   l.Question,
		Answer:     l.Answer,
		CreatedAt:  l.CreatedAt,
	}
	if l.Context != nil {
		raw, err := json.Marshal(l.Context)
		if err != nil {
			return nil, err
		}
		out.Context = raw
	}
	return out, nil
}
