package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/models"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/utils"

	"gorm.io/gorm"
)

// AccountService handles identity: registration, credential checks and the
// user listings consumed by the admin views.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// RegisterInput carries the sign-up form fields.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
	StudentID       string `json:"student_id"`
	Organization    string `json:"organization"`
}

// Authenticate verifies credentials against the stored bcrypt hash.
// Raw passwords are never persisted or compared in plaintext.
func (s *AccountService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &AuthenticationError{Message: "invalid email or password"}
		}
		return nil, storageError("load user", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, &AuthenticationError{Message: "invalid email or password"}
	}

	return &user, nil
}

// Register creates a new account. Email must be unique; students must supply
// a student id and organization. The avatar initials are derived from the
// name the same way the dashboard displays them.
func (s *AccountService) Register(input *RegisterInput) (*models.User, error) {
	name := utils.SanitizeInput(input.Name)
	email := utils.SanitizeInput(input.Email)

	if name == "" || email == "" || input.Password == "" {
		return nil, validationErrorf("name, email and password are required")
	}
	if !utils.ValidateEmail(email) {
		return nil, validationErrorf("invalid email address")
	}
	if ok, msg := utils.ValidatePassword(input.Password); !ok {
		return nil, &ValidationError{Message: msg}
	}
	if input.Password != input.ConfirmPassword {
		return nil, validationErrorf("passwords do not match")
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleStudent && role != models.RoleAdmin {
		return nil, validationErrorf("invalid role %q", role)
	}

	studentID := utils.SanitizeInput(input.StudentID)
	organization := utils.SanitizeInput(input.Organization)
	if role == models.RoleStudent && (studentID == "" || organization == "") {
		return nil, validationErrorf("student id and organization are required")
	}

	var existing int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, storageError("check email uniqueness", err)
	}
	if existing > 0 {
		return nil, &ConflictError{Message: "email already exists"}
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, storageError("hash password", err)
	}

	now := time.Now()
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Avatar:       utils.AvatarInitials(name),
		CreateAt:     &now,
		UpdateAt:     &now,
	}
	if role == models.RoleStudent {
		user.StudentID = &studentID
		user.Organization = &organization
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, storageError("create user", err)
	}

	return &user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AccountService) ChangePassword(userID int, currentPassword, newPassword string) error {
	var user models.User
	if err := s.db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Message: "user not found"}
		}
		return storageError("load user", err)
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return &AuthenticationError{Message: "current password is incorrect"}
	}
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return &ValidationError{Message: msg}
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return storageError("hash password", err)
	}

	now := time.Now()
	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"password_hash": hash,
		"update_at":     &now,
	}).Error; err != nil {
		return storageError("update password", err)
	}

	return nil
}

// ListUsers returns every account for the admin user-management view.
func (s *AccountService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, storageError("list users", err)
	}
	return users, nil
}
