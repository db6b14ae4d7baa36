package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/utils"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type SignupInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	UserType   string `json:"userType" validate:"omitempty,oneof=STUDENT STAFF ADMIN"`
	RollNumber string `json:"rollNumber"`
	Hostel     string `json:"hostel"`
	Room       string `json:"room"`
	Phone      string `json:"phone"`
}

// Register rejects duplicate emails and duplicate real roll numbers
// before any write happens. Staff accounts come through the same signup
// with userType STAFF.
func (s *AuthService) Register(input SignupInput) (*models.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid signup: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("email %s is already registered", input.Email)
	}

	if input.RollNumber != "" && input.RollNumber != models.RollNumberPlaceholder {
		if err := s.db.Model(&models.User{}).
			Where("roll_number = ?", input.RollNumber).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("roll number %s is already registered", input.RollNumber)
		}
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	userType := strings.ToUpper(input.UserType)
	if userType == "" {
		userType = models.UserTypeStudent
	}

	user := models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   hashed,
		UserType:   userType,
		RollNumber: input.RollNumber,
		Hostel:     defaultIfEmpty(input.Hostel, models.RollNumberPlaceholder),
		Room:       defaultIfEmpty(input.Room, models.RollNumberPlaceholder),
		Phone:      input.Phone,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return "", nil, errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.UserType)
	if err != nil {
		return "", nil, errors.New("could not generate token")
	}
	return token, &user, nil
}

// VerifyPassword backs the admin "verify current password" step before
// sensitive operations.
func (s *AuthService) VerifyPassword(userID uint, password string) (bool, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return false, errors.New("user not found")
	}
	return utils.CheckPasswordHash(password, user.Password), nil
}

func (s *AuthService) ChangePassword(userID uint, current, next, confirm string) error {
	if next != confirm {
		return errors.New("password confirmation does not match")
	}
	if len(next) < 6 {
		return errors.New("new password must be at least 6 characters")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}
	if !utils.CheckPasswordHash(current, user.Password) {
		return errors.New("current password is incorrect")
	}

	hashed, err := utils.HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.db.Save(&user).Error
}

// ForgotPassword mails a short-lived reset code. The response is the same
// whether or not the email exists.
func (s *AuthService) ForgotPassword(email string) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return
	}

	code := utils.GenerateRandomCode(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return
	}
	go utils.SendResetEmail(user.Email, code)
}

func (s *AuthService) ResetPassword(code, newPassword string) error {
	var user models.User
	if err := s.db.Where("reset_token = ? AND reset_token <> ''", code).First(&user).Error; err != nil {
		return errors.New("invalid or expired reset code")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired reset code")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}

func defaultIfEmpty(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
