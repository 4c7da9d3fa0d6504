package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister           = "user registered successfully"
	MessageSuccessLogin              = "login successful"
	MessageSuccessGetProfile         = "profile retrieved successfully"
	MessageSuccessCompleteOnboarding = "onboarding completed successfully"
	MessageSuccessUploadProfileImage = "profile image uploaded successfully"

	MessageFailedRegister           = "failed to register user"
	MessageFailedLogin              = "failed to login"
	MessageFailedGetProfile         = "failed to retrieve profile"
	MessageFailedCompleteOnboarding = "failed to complete onboarding"
	MessageFailedUploadProfileImage = "failed to upload profile image"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"required"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token          string `json:"token"`
		ID             string `json:"id"`
		Email          string `json:"email"`
		Name           string `json:"name"`
		ShowOnboarding bool   `json:"show_onboarding"`
	}

	UserProfileResponse struct {
		ID                  string     `json:"id"`
		Email               string     `json:"email"`
		Name                string     `json:"name"`
		ImageURL            string     `json:"image_url,omitempty"`
		OnboardingCompleted bool       `json:"onboarding_completed"`
		FirstLogin          *time.Time `json:"first_login,omitempty"`
		LastLogin           *time.Time `json:"last_login,omitempty"`
		TotalAdded          int        `json:"total_products_added"`
		TotalConsumed       int        `json:"total_products_consumed"`
		TotalWasted         int        `json:"total_products_wasted"`
		CreatedAt           time.Time  `json:"created_at"`
	}

	UploadProfileImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
