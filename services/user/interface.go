package user

import (
	userRepo "fixify/database/repository/user"
	"fixify/cron"
	"fixify/models"
)

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"-"`
	RefreshToken string       `json:"-"`
}

// UserService defines the customer-facing account operations.
type UserService interface {
	SignUp(name, email, password, phone string) (string, error)
	VerifyOTP(email, code string) error
	ResendOTP(email string) error
	SignIn(email, password string) (*AuthResponse, error)
	// GoogleSignIn verifies a Google ID token and signs the user in,
	// creating a verified account on first use.
	GoogleSignIn(idToken string) (*AuthResponse, error)
	// RefreshToken validates a refresh token and issues a new access token.
	RefreshToken(refreshToken string) (string, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(id string, update models.User) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
	Mail *cron.MailQueue
}
