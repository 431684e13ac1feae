package account

import (
	"context"
	"errors"
	"strings"

	"e-station-go/internal/apperr"
	"e-station-go/internal/models"
	"e-station-go/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterParams holds the sign-up form fields.
type RegisterParams struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Service manages the single local account and its session marker.
// Credentials are kept and compared in plaintext.
type Service struct {
	kv store.KeyValueStore
}

func NewService(kv store.KeyValueStore) *Service {
	return &Service{kv: kv}
}

// Register stores the account, replacing any previous one.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.TrimSpace(params.Email)
	if name == "" || email == "" || params.Password == "" || params.ConfirmPassword == "" {
		return nil, apperr.Validation("please fill in all fields")
	}
	if params.Password != params.ConfirmPassword {
		return nil, apperr.Validation("passwords do not match")
	}

	user := &models.User{Name: name, Email: email, Password: params.Password}
	if err := s.saveUser(ctx, user); err != nil {
		return nil, err
	}

	zap.L().Info("Account registered", zap.String("email", email))
	return user, nil
}

// Login checks the credentials against the stored account and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return apperr.Validation("please fill in all fields")
	}

	user, err := s.Profile(ctx)
	if err != nil {
		return err
	}
	if user.Email != email || user.Password != password {
		zap.L().Warn("Login rejected", zap.String("email", email))
		return apperr.Validation("invalid e-mail or password")
	}

	if err := s.kv.Set(ctx, store.KeyUserToken, uuid.New().String()); err != nil {
		return apperr.Persistence("save session", err)
	}

	zap.L().Info("Login successful", zap.String("email", email))
	return nil
}

// Logout closes the session. The account itself is kept.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, store.KeyUserToken); err != nil {
		return apperr.Persistence("remove session", err)
	}
	zap.L().Info("Logged out")
	return nil
}

// IsAuthenticated reports whether a session marker is stored.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.kv.Get(ctx, store.KeyUserToken)
	if errors.Is(err, store.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Persistence("load session", err)
	}
	return true, nil
}

// Profile returns the registered account. Without one the caller gets a
// validation error asking the user to register.
func (s *Service) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	err := store.LoadJSON(ctx, s.kv, store.KeyUserData, &user)
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, store.ErrKeyNotFound), errors.Is(err, store.ErrCorruptData):
		if errors.Is(err, store.ErrCorruptData) {
			zap.L().Warn("Stored account is corrupt", zap.Error(err))
		}
		return nil, apperr.Validation("no registered account, please sign up")
	default:
		return nil, apperr.Persistence("load account", err)
	}
}

// UpdateProfile changes the name and e-mail; the password is kept.
func (s *Service) UpdateProfile(ctx context.Context, name, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, apperr.Validation("name and e-mail cannot be empty")
	}

	user, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.Email = email

	if err := s.saveUser(ctx, user); err != nil {
		return nil, err
	}

	zap.L().Info("Profile updated", zap.String("email", email))
	return user, nil
}

func (s *Service) saveUser(ctx context.Context, user *models.User) error {
	entry, err := store.EncodeJSON(store.KeyUserData, user)
	if err != nil {
		return apperr.Persistence("encode account", err)
	}
	if err := s.kv.SetMany(ctx, []store.Entry{entry}); err != nil {
		zap.L().Error("Failed to save account", zap.Error(err))
		return apperr.Persistence("save account", err)
	}
	return nil
}
