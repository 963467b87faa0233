package user

import (
	"errors"
	"fmt"
	"strings"

	"fixify/cron"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignUp registers a new, unverified user and kicks off OTP verification.
func (s *DefaultUserService) SignUp(name, email, password, phone string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 6 {
		return "", utils.NewAppError(utils.KindInvalid, "name, email and a password of at least 6 characters are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		utils.GetLogger().Error("SignUp: failed to check existing user", zap.Error(err))
		return "", utils.WrapAppError(utils.KindInternal, "registration failed, please try again", err)
	}
	if existing != nil {
		return "", utils.NewAppError(utils.KindConflict, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", utils.WrapAppError(utils.KindInternal, "registration failed, please try again", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
	}
	if err := s.Repo.Create(u); err != nil {
		return "", utils.WrapAppError(utils.KindInternal, "registration failed, please try again", err)
	}

	if err := s.sendOTP(u); err != nil {
		return "", err
	}
	return u.ID, nil
}

// VerifyOTP checks the code and marks the account verified. An absent
// code reports expired, a wrong one invalid.
func (s *DefaultUserService) VerifyOTP(email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return utils.NewAppError(utils.KindNotFound, "no account found for this email")
		}
		return utils.WrapAppError(utils.KindInternal, "verification failed, please try again", err)
	}

	if err := utils.VerifyOTPRecord(utils.RoleUser, email, code); err != nil {
		return err
	}

	if err := s.Repo.SetVerified(u.ID); err != nil {
		return utils.WrapAppError(utils.KindInternal, "verification failed, please try again", err)
	}
	return nil
}

// ResendOTP issues a fresh code for an unverified account.
func (s *DefaultUserService) ResendOTP(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return utils.NewAppError(utils.KindNotFound, "no account found for this email")
		}
		return utils.WrapAppError(utils.KindInternal, "failed to resend OTP", err)
	}
	if u.IsVerified {
		return utils.NewAppError(utils.KindConflict, "account is already verified")
	}
	return s.sendOTP(u)
}

func (s *DefaultUserService) sendOTP(u *models.User) error {
	code, err := utils.InitiateOTP(utils.RoleUser, u.Email)
	if err != nil {
		return utils.WrapAppError(utils.KindInternal, "failed to initiate OTP", err)
	}
	if err := s.Mail.EnqueueOTPEmail(cron.OTPEmailPayload{
		Email: u.Email,
		Name:  u.Name,
		Code:  code,
	}); err != nil {
		utils.GetLogger().Error("sendOTP: failed to enqueue OTP email",
			zap.String("email", u.Email), zap.Error(err))
		return utils.WrapAppError(utils.KindInternal, fmt.Sprintf("failed to send OTP to %s", u.Email), err)
	}
	return nil
}
