package userRepo

import "vendora/models"

// UserRepository defines persistence operations for customer accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	ListAll() ([]models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}
