package service

import (
	"context"
	"errors"

	"github.com/rbarbosa/accounts-api/internal/auth"
	"github.com/rbarbosa/accounts-api/internal/domain"
	"github.com/rbarbosa/accounts-api/internal/repository"
	"gorm.io/gorm"
)

type AccountService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewAccountService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateInput struct {
	Name  string
	Email string
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// Check if email is taken
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent registrations can both pass the pre-check;
		// the unique index on email catches the loser here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed session token.
// Unknown email and wrong password are distinct errors; the API
// reports them differently, matching the published contract.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return "", domain.ErrWrongPassword
	}

	return s.tokens.Issue(user.ID, user.Email)
}

// Profile resolves the account by the id carried in the token, so a
// later email change never strands an already-issued token.
func (s *AccountService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile writes only the fields the caller supplied; an omitted
// field keeps its current value.
func (s *AccountService) UpdateProfile(ctx context.Context, userID uint, input UpdateInput) error {
	fields := map[string]interface{}{}
	if input.Name != "" {
		fields["name"] = input.Name
	}
	if input.Email != "" {
		fields["email"] = input.Email
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
