package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/init0-hack8/postpulse/internal/models"
	"github.com/init0-hack8/postpulse/internal/repository"
)

type UserService interface {
	GetUserInfo(ctx context.Context, uid string) (*models.User, error)
}

type userService struct {
	u repository.UserRepository
}

func NewUserService(u repository.UserRepository) UserService {
	return &userService{
		u: u,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, uid string) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("error getting user info: %w", err)
	}

	if !isExist {
		err = errors.New("user not found")
		slog.Info(err.Error())
		return nil, err
	}

	return user, nil
}
