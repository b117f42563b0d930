package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database/users"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/validation"
)

type CreateUserInput struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UpdateUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=3"`
}

type emailInput struct {
	Email string `json:"email" validate:"required,email"`
}

type UserService struct {
	store    UserStore
	hasher   PasswordHasher
	validate *validation.Validator
}

func NewUserService(store UserStore, hasher PasswordHasher) *UserService {
	return &UserService{store: store, hasher: hasher, validate: validation.New()}
}

// CreateUser registers a member. Emails stay reserved after a user is
// deleted, so reusing one yields a conflict.
func (s *UserService) CreateUser(input CreateUserInput) (*entities.User, error) {
	input.Email = normalizeEmail(input.Email)
	if err := s.validate.Validate(input); err != nil {
		return nil, invalid(err)
	}

	exists, err := s.store.EmailExists(input.Email)
	if err != nil {
		return nil, internal("failed to check email", err)
	}
	if exists {
		return nil, conflict(MsgEmailExists)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, internal("failed to hash password", err)
	}

	user, err := s.store.CreateUser(input.Name, input.Email, hash)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, conflict(MsgEmailExists)
		}
		return nil, internal("failed to create user", err)
	}
	return user, nil
}

func (s *UserService) GetUser(email string) (*entities.User, error) {
	email = normalizeEmail(email)
	if err := s.validate.Validate(emailInput{Email: email}); err != nil {
		return nil, invalid(err)
	}
	return s.lookup(email)
}

func (s *UserService) UpdateUser(input UpdateUserInput) (*entities.User, error) {
	input.Email = normalizeEmail(input.Email)
	if err := s.validate.Validate(input); err != nil {
		return nil, invalid(err)
	}

	user, err := s.lookup(input.Email)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateUserName(user.ID, input.Name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(MsgUserNotFound)
		}
		return nil, internal("failed to update user", err)
	}
	user.Name = input.Name
	return user, nil
}

// DeleteUser soft deletes the user and returns the record as it was.
func (s *UserService) DeleteUser(email string) (*entities.User, error) {
	email = normalizeEmail(email)
	if err := s.validate.Validate(emailInput{Email: email}); err != nil {
		return nil, invalid(err)
	}

	user, err := s.lookup(email)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteUser(user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(MsgUserNotFound)
		}
		return nil, internal("failed to delete user", err)
	}
	return user, nil
}

func (s *UserService) lookup(email string) (*entities.User, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(MsgUserNotFound)
		}
		return nil, internal("failed to load user", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
