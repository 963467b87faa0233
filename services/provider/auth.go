package provider

import (
	"context"
	"errors"
	"strings"

	"fixify/cron"
	providerRepo "fixify/database/repository/provider"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignUp registers a new, unverified provider and kicks off OTP verification.
func (s *DefaultProviderService) SignUp(name, email, password, phone string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 6 {
		return "", utils.NewAppError(utils.KindInvalid, "name, email and a password of at least 6 characters are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil && !errors.Is(err, providerRepo.ErrNotFound) {
		utils.GetLogger().Error("SignUp: failed to check existing provider", zap.Error(err))
		return "", utils.WrapAppError(utils.KindInternal, "registration failed, please try again", err)
	}
	if existing != nil {
		return "", utils.NewAppError(utils.KindConflict, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", utils.WrapAppError(utils.KindInternal, "registration failed, please try again", err)
	}

	p := &models.Provider{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
	}
	if err := s.Repo.Create(p); err != nil {
		return "", utils.WrapAppError(utils.KindInternal, "registration failed, please try again", err)
	}

	if err := s.sendOTP(p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// VerifyOTP checks the code and marks the account verified.
func (s *DefaultProviderService) VerifyOTP(email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	p, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return utils.NewAppError(utils.KindNotFound, "no account found for this email")
		}
		return utils.WrapAppError(utils.KindInternal, "verification failed, please try again", err)
	}

	if err := utils.VerifyOTPRecord(utils.RoleProvider, email, code); err != nil {
		return err
	}

	if err := s.Repo.SetVerified(p.ID); err != nil {
		return utils.WrapAppError(utils.KindInternal, "verification failed, please try again", err)
	}
	return nil
}

// ResendOTP issues a fresh code for an unverified account.
func (s *DefaultProviderService) ResendOTP(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	p, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return utils.NewAppError(utils.KindNotFound, "no account found for this email")
		}
		return utils.WrapAppError(utils.KindInternal, "failed to resend OTP", err)
	}
	if p.IsVerified {
		return utils.NewAppError(utils.KindConflict, "account is already verified")
	}
	return s.sendOTP(p)
}

func (s *DefaultProviderService) sendOTP(p *models.Provider) error {
	code, err := utils.InitiateOTP(utils.RoleProvider, p.Email)
	if err != nil {
		return utils.WrapAppError(utils.KindInternal, "failed to initiate OTP", err)
	}
	if err := s.Mail.EnqueueOTPEmail(cron.OTPEmailPayload{
		Email: p.Email,
		Name:  p.Name,
		Code:  code,
	}); err != nil {
		utils.GetLogger().Error("sendOTP: failed to enqueue OTP email",
			zap.String("email", p.Email), zap.Error(err))
		return utils.WrapAppError(utils.KindInternal, "failed to send OTP", err)
	}
	return nil
}

// SignIn authenticates a provider and issues the access/refresh token pair.
func (s *DefaultProviderService) SignIn(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	p, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindUnauthorized, "invalid email or password")
		}
		utils.GetLogger().Error("SignIn: failed to fetch provider", zap.Error(err))
		return nil, utils.WrapAppError(utils.KindInternal, "authentication failed, please try again", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAppError(utils.KindUnauthorized, "invalid email or password")
	}
	if !p.IsVerified {
		return nil, utils.NewAppError(utils.KindForbidden, "account is not verified")
	}
	if p.IsBlocked {
		return nil, utils.NewAppError(utils.KindBlocked, "account is blocked")
	}

	access, refresh, err := utils.GenerateTokenPair(p.ID, utils.RoleProvider)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "authentication failed, please try again", err)
	}

	cacheKey := utils.AuthCachePrefix + utils.RoleProvider + ":" + p.ID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("SignIn: failed to clear auth cache", zap.Error(err))
	}

	return &AuthResponse{Provider: p, AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshToken validates a refresh token, re-checks the live block status
// and issues a fresh access token.
func (s *DefaultProviderService) RefreshToken(refreshToken string) (string, error) {
	claims, err := utils.ExtractClaims(refreshToken)
	if err != nil || claims.Role != utils.RoleProvider {
		return "", utils.NewAppError(utils.KindUnauthorized, "invalid refresh token")
	}

	p, err := s.Repo.GetByID(claims.Subject)
	if err != nil {
		return "", utils.NewAppError(utils.KindUnauthorized, "invalid refresh token")
	}
	if p.IsBlocked {
		return "", utils.NewAppError(utils.KindBlocked, "account is blocked")
	}

	access, err := utils.GenerateToken(p.ID, utils.RoleProvider, utils.AccessTokenTTL)
	if err != nil {
		return "", utils.WrapAppError(utils.KindInternal, "failed to refresh token", err)
	}
	return access, nil
}
