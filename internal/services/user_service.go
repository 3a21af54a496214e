package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "finnews/internal/errors"
	"finnews/internal/models"
	"finnews/internal/pagination"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// ListUsers returns a page of users in primary-key order.
func (s *userService) ListUsers(page pagination.PageRequest) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Order("id ASC").Scopes(pagination.Paginate(page)).Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByLogin retrieves a user by username or, failing that, by email.
func (s *userService) GetUserByLogin(login string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("email = ?", normalizeEmail(login)).First(&user).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// CreateUser creates a user with a bcrypt-hashed password.
func (s *userService) CreateUser(input UserInput) (*models.User, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}
	if strings.TrimSpace(input.Username) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required")
	}

	if err := s.checkUnique(normalizeEmail(input.Email), input.Username, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := newUserFromInput(input, string(hashedPassword))
	if err := s.db.Create(user).Error; err != nil {
		return nil, uniqueUserError(err)
	}
	return user, nil
}

// UpdateUser applies the non-nil fields of input. A new password is hashed.
func (s *userService) UpdateUser(id uint, input UserUpdate) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	email, username := "", ""
	if input.Email != nil && normalizeEmail(*input.Email) != user.Email {
		email = normalizeEmail(*input.Email)
	}
	if input.Username != nil && *input.Username != user.Username {
		username = *input.Username
	}
	if err := s.checkUnique(email, username, user.ID); err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		user.Password = string(hashedPassword)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	if input.CanCreateNews != nil {
		user.CanCreateNews = *input.CanCreateNews
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, uniqueUserError(err)
	}
	return user, nil
}

// DeleteUser removes a user. News and annotations they authored are kept
// with their user references cleared.
func (s *userService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.NewsItem{}).Where("created_by_id = ?", user.ID).
			Update("created_by_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.NewsItem{}).Where("updated_by_id = ?", user.ID).
			Update("updated_by_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Annotation{}).Where("user_id = ?", user.ID).
			Update("user_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// AttemptLogin verifies credentials and tracks failures. After
// maxFailedLoginAttempts consecutive failures the account is locked for
// lockoutDuration. Unknown, inactive, or mismatched credentials all yield
// ErrInvalidCredentials.
func (s *userService) AttemptLogin(login, password string) (*models.User, error) {
	user, err := s.GetUserByLogin(login)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrUserNotFound.Code {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, apperrors.ErrAccountLocked
	}

	if !s.VerifyPassword(user, password) {
		attempts := user.FailedLoginAttempts + 1
		updates := map[string]interface{}{"failed_login_attempts": attempts}
		if attempts >= maxFailedLoginAttempts {
			updates["locked_until"] = now.Add(lockoutDuration)
			updates["failed_login_attempts"] = 0
		}
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	updates := map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginAt = &now
	return user, nil
}

// checkUnique rejects an email or username already held by a user other than exceptID.
// Empty values are not checked.
func (s *userService) checkUnique(email, username string, exceptID uint) error {
	if email != "" {
		var count int64
		if err := s.db.Model(&models.User{}).Where("email = ? AND id <> ?", email, exceptID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrDuplicateEmail
		}
	}
	if username != "" {
		var count int64
		if err := s.db.Model(&models.User{}).Where("username = ? AND id <> ?", username, exceptID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrDuplicateUsername
		}
	}
	return nil
}

// uniqueUserError maps a unique-constraint violation lost to a concurrent writer.
func uniqueUserError(err error) error {
	if isUniqueConstraintError(err) {
		if strings.Contains(err.Error(), "email") {
			return apperrors.ErrDuplicateEmail
		}
		return apperrors.ErrDuplicateUsername
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
