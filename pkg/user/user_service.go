package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"snackstock-api/domain"
	"snackstock-api/entities"
	"snackstock-api/internal/utils/mailing"
	"snackstock-api/internal/utils/storage"
	"snackstock-api/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfileResponse, error)
		CompleteOnboarding(ctx context.Context, userID string) error
		UploadProfileImage(ctx context.Context, req domain.UploadProfileImageRequest, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	existing, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}
	if existing != nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, domain.ErrHashPassword
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Password:     string(hashed),
		Name:         req.Name,
		IsFirstLogin: true,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	go func() {
		body := fmt.Sprintf(
			"<h3>Welcome to SnackStock, %s!</h3><p>Start tracking your pantry and stop wasting food.</p>",
			user.Name,
		)
		if err := mailing.SendMail(user.Email, "Welcome to SnackStock", body); err != nil {
			log.Printf("failed to send welcome email to %s: %v", user.Email, err)
		}
	}()

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now

	// first_login is written exactly once, on the first successful login.
	if user.IsFirstLogin {
		user.FirstLogin = &now
		user.IsFirstLogin = false
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.LoginResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)

	return domain.LoginResponse{
		Token:          token,
		ID:             user.ID.String(),
		Email:          user.Email,
		Name:           user.Name,
		ShowOnboarding: !user.OnboardingCompleted,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, err
	}

	return domain.UserProfileResponse{
		ID:                  user.ID.String(),
		Email:               user.Email,
		Name:                user.Name,
		ImageURL:            user.ImageURL,
		OnboardingCompleted: user.OnboardingCompleted,
		FirstLogin:          user.FirstLogin,
		LastLogin:           user.LastLogin,
		TotalAdded:          user.TotalProductsAdded,
		TotalConsumed:       user.TotalProductsConsumed,
		TotalWasted:         user.TotalProductsWasted,
		CreatedAt:           user.CreatedAt,
	}, nil
}

func (s *userService) CompleteOnboarding(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.OnboardingCompleted = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) UploadProfileImage(ctx context.Context, req domain.UploadProfileImageRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	fileName := fmt.Sprintf("profile-%s", user.ID.String())
	var objectKey string
	var uploadErr error

	existingKey := ""
	if user.ImageURL != "" {
		existingKey = s.s3.GetObjectKeyFromLink(user.ImageURL)
	}

	newExt := strings.ToLower(filepath.Ext(req.Image.Filename))
	if existingKey != "" && strings.EqualFold(filepath.Ext(existingKey), newExt) {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "profiles", storage.AllowImage...)
		if uploadErr == nil && existingKey != "" && existingKey != objectKey {
			// The extension changed, so the old object is orphaned.
			if err := s.s3.DeleteFile(existingKey); err != nil {
				log.Printf("failed to delete old profile image %s: %v", existingKey, err)
			}
		}
	}

	if uploadErr != nil {
		return uploadErr
	}

	user.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.userRepository.UpdateUser(ctx, user)
}
