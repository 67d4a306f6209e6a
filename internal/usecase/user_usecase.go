package usecase

import (
	"context"
	"errors"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/password"
)

type userUsecase struct {
	userRepo domain.UserRepository
	hasher   *password.Hasher
}

func NewUserUsecase(userRepo domain.UserRepository, hasher *password.Hasher) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, hasher: hasher}
}

func (u *userUsecase) ListUsers(ctx context.Context, page, pageSize int) ([]domain.User, int64, error) {
	limit, offset := pageBounds(page, pageSize)
	return u.userRepo.List(ctx, limit, offset)
}

func (u *userUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return user, nil
}

// UpdateUser changes email, name or password. The role is fixed at registration.
func (u *userUsecase) UpdateUser(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}

	if upd.Role != nil && *upd.Role != user.Role {
		return nil, apperror.BadRequest("Role cannot be changed")
	}
	if upd.Email != nil {
		email := normalizeEmail(*upd.Email)
		if email == "" {
			return nil, apperror.BadRequest("Email cannot be empty")
		}
		user.Email = email
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, apperror.BadRequest("Name cannot be empty")
		}
		user.Name = name
	}
	if upd.Password != nil {
		if *upd.Password == "" {
			return nil, apperror.BadRequest("Password cannot be empty")
		}
		digest, err := u.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.PasswordHash = digest
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Email already registered")
		}
		return nil, notFoundAs(err, "User not found")
	}
	return user, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id int64) error {
	return notFoundAs(u.userRepo.Delete(ctx, id), "User not found")
}
