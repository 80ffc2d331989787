package identity

import (
	"fmt"
	"time"

	"vendora/models"
	"vendora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates the ADMIN account at startup when no user owns the given
// email yet. Safe to call on every boot.
func (s *DefaultIdentityService) EnsureAdmin(name, email, password string) error {
	if email == "" || password == "" {
		return utils.ValidationError{Reason: "admin bootstrap requires an email and a password"}
	}

	exists, err := s.Users.ExistsByEmail(email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	admin := &models.User{
		ID:               uuid.New().String(),
		Name:             name,
		Email:            email,
		PasswordHash:     string(hash),
		Role:             RoleAdmin,
		ConsentConfirmed: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Users.Create(admin); err != nil {
		return err
	}

	utils.GetLogger().Info("admin account created", zap.String("email", email))
	return nil
}

// ListUsers returns every customer account for the admin console.
func (s *DefaultIdentityService) ListUsers() ([]models.User, error) {
	return s.Users.ListAll()
}

func (s *DefaultIdentityService) setBanned(userID string, banned bool) (*models.User, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Banned = banned
	user.UpdatedAt = time.Now()
	if err := s.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// BanUser blocks a user from signing in and revokes their live session, so the
// ban bites before the current token expires.
func (s *DefaultIdentityService) BanUser(userID string) (*models.User, error) {
	user, err := s.setBanned(userID, true)
	if err != nil {
		return nil, err
	}
	if err := s.RevokeToken(user.ID); err != nil {
		utils.GetLogger().Warn("failed to revoke banned user's token",
			zap.String("userId", user.ID), zap.Error(err))
	}
	return user, nil
}

// UnbanUser lifts a ban. The user signs in again normally.
func (s *DefaultIdentityService) UnbanUser(userID string) (*models.User, error) {
	return s.setBanned(userID, false)
}
