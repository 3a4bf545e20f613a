package mapper

import (
	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		ChatId:       u.ChatId,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		CreatedAt:    u.CreatedAt,
		LastActiveAt: u.LastActiveAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		ChatId:       u.ChatId,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		CreatedAt:    u.CreatedAt,
		LastActiveAt: u.LastActiveAt,
	}
}
