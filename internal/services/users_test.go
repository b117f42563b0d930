package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database/users"
	"github.com/mrlokans/library/internal/entities"
)

func TestCreateUser(t *testing.T) {
	input := CreateUserInput{Name: "Ada Lovelace", Email: " Ada@Example.com ", Password: "analytical"}

	t.Run("hashes the password", func(t *testing.T) {
		var gotEmail, gotHash string
		store := &userStoreMock{
			emailExistsFn: func(string) (bool, error) { return false, nil },
			createFn: func(name, email, hash string) (*entities.User, error) {
				gotEmail, gotHash = email, hash
				return &entities.User{ID: 1, Name: name, Email: email, PasswordHash: hash}, nil
			},
		}

		user, err := NewUserService(store, hasherMock{}).CreateUser(input)
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "ada@example.com", gotEmail)
		assert.Equal(t, "hashed:analytical", gotHash)
	})

	t.Run("existing email conflicts", func(t *testing.T) {
		store := &userStoreMock{emailExistsFn: func(string) (bool, error) { return true, nil }}

		_, err := NewUserService(store, hasherMock{}).CreateUser(input)
		assert.Equal(t, KindConflict, KindOf(err))
		assert.EqualError(t, err, MsgEmailExists)
	})

	t.Run("unique violation on insert conflicts", func(t *testing.T) {
		store := &userStoreMock{
			emailExistsFn: func(string) (bool, error) { return false, nil },
			createFn: func(string, string, string) (*entities.User, error) {
				return nil, users.ErrEmailTaken
			},
		}

		_, err := NewUserService(store, hasherMock{}).CreateUser(input)
		assert.Equal(t, KindConflict, KindOf(err))
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewUserService(&userStoreMock{}, hasherMock{})

		tests := []struct {
			name  string
			input CreateUserInput
			field string
		}{
			{"short name", CreateUserInput{Name: "Al", Email: "al@example.com", Password: "password1"}, "name"},
			{"bad email", CreateUserInput{Name: "Alan", Email: "not-an-email", Password: "password1"}, "email"},
			{"short password", CreateUserInput{Name: "Alan", Email: "al@example.com", Password: "short"}, "password"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.CreateUser(tt.input)
				var svcErr *Error
				require.True(t, errors.As(err, &svcErr))
				assert.Equal(t, KindValidation, svcErr.Kind)
				require.Len(t, svcErr.Details, 1)
				assert.Equal(t, tt.field, svcErr.Details[0].Field)
			})
		}
	})

	t.Run("hash failure is internal", func(t *testing.T) {
		store := &userStoreMock{emailExistsFn: func(string) (bool, error) { return false, nil }}

		_, err := NewUserService(store, hasherMock{err: errors.New("boom")}).CreateUser(input)
		assert.Equal(t, KindInternal, KindOf(err))
	})
}

func TestGetUser(t *testing.T) {
	store := &userStoreMock{getByEmailFn: func(email string) (*entities.User, error) {
		if email == "ada@example.com" {
			return userFound(1)
		}
		return nil, gorm.ErrRecordNotFound
	}}
	svc := NewUserService(store, hasherMock{})

	user, err := svc.GetUser("ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = svc.GetUser("bob@example.com")
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.GetUser("")
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestUpdateUser(t *testing.T) {
	var renamed string
	store := &userStoreMock{
		getByEmailFn: func(string) (*entities.User, error) { return userFound(5) },
		updateNameFn: func(id uint, name string) error {
			renamed = name
			return nil
		},
	}

	user, err := NewUserService(store, hasherMock{}).UpdateUser(UpdateUserInput{Email: "ada@example.com", Name: "Augusta"})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", user.Name)
	assert.Equal(t, "Augusta", renamed)

	store.getByEmailFn = func(string) (*entities.User, error) { return nil, gorm.ErrRecordNotFound }
	_, err = NewUserService(store, hasherMock{}).UpdateUser(UpdateUserInput{Email: "ada@example.com", Name: "Augusta"})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestDeleteUser(t *testing.T) {
	var deleted uint
	store := &userStoreMock{
		getByEmailFn: func(string) (*entities.User, error) { return userFound(9) },
		deleteFn: func(id uint) error {
			deleted = id
			return nil
		},
	}

	user, err := NewUserService(store, hasherMock{}).DeleteUser("ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(9), user.ID)
	assert.Equal(t, uint(9), deleted)

	store.getByEmailFn = func(string) (*entities.User, error) { return nil, gorm.ErrRecordNotFound }
	_, err = NewUserService(store, hasherMock{}).DeleteUser("ada@example.com")
	assert.Equal(t, KindNotFound, KindOf(err))
}
