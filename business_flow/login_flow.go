// Package businessflow contains the core business logic and use cases for authentication workflows
package businessflow

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/app/services"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	"github.com/budun/backoffice/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginFlow handles user authentication and session lifecycle
type LoginFlow interface {
	Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionToken string, metadata *ClientMetadata) error
}

// LoginFlowImpl implements the login business flow
type LoginFlowImpl struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.UserSessionRepository
	auditRepo    repository.AuditLogRepository
	tokenService services.TokenService
	db           *gorm.DB
}

// NewLoginFlow creates a new login flow instance
func NewLoginFlow(
	userRepo repository.UserRepository,
	sessionRepo repository.UserSessionRepository,
	auditRepo repository.AuditLogRepository,
	tokenService services.TokenService,
	db *gorm.DB,
) LoginFlow {
	return &LoginFlowImpl{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		auditRepo:    auditRepo,
		tokenService: tokenService,
		db:           db,
	}
}

// Login authenticates a user with username and password.
// Every failure path collapses to the same generic error so the endpoint
// never reveals whether the username exists.
func (lf *LoginFlowImpl) Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	if request.Username == "" || request.Password == "" {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrInvalidCredentials)
	}

	var user *models.User

	resp, err := lf.WithLoginTransaction(ctx, func(ctx context.Context) (*dto.LoginResponse, error) {
		var err error
		user, err = lf.userRepo.ByUsername(ctx, request.Username)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrInvalidCredentials
		}

		if !user.IsActive() {
			return nil, ErrInvalidCredentials
		}

		hash := utils.HashPassword(request.Password)
		if subtle.ConstantTimeCompare([]byte(hash), []byte(user.PasswordHash)) != 1 {
			return nil, ErrInvalidCredentials
		}

		session, err := lf.CreateSession(ctx, user.ID, metadata)
		if err != nil {
			return nil, err
		}

		now := utils.UTCNow()
		if err := lf.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
			return nil, err
		}

		response := &dto.LoginResponse{
			Success: true,
			Message: "Login successful",
		}
		response.Data.AccessToken = session.SessionToken
		response.Data.TokenType = "Bearer"
		response.Data.ExpiresIn = int(session.ExpiresAt.Sub(now).Seconds())
		response.Data.ExpiresAt = session.ExpiresAt
		response.SetUserInfo(user.ID, user.UUID.String(), user.Username, user.FullName, user.Status, user.CreatedAt)

		return response, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Login failed: %s", err.Error())
		_ = lf.LogLoginAttempt(ctx, user, models.AuditActionLoginFailed, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrInvalidCredentials)
	}

	msg := fmt.Sprintf("User logged in successfully: %d", user.ID)
	_ = lf.LogLoginAttempt(ctx, user, models.AuditActionLoginSuccess, msg, true, nil, metadata)

	return resp, nil
}

// Logout deactivates the session carrying the given token
func (lf *LoginFlowImpl) Logout(ctx context.Context, sessionToken string, metadata *ClientMetadata) error {
	session, err := lf.sessionRepo.BySessionToken(ctx, sessionToken)
	if err != nil {
		return err
	}
	if session == nil {
		return NewBusinessError("LOGOUT_FAILED", "Logout failed", ErrSessionNotFound)
	}

	err = repository.WithTransaction(ctx, lf.db, func(ctx context.Context) error {
		return lf.sessionRepo.Deactivate(ctx, sessionToken)
	})
	if err != nil {
		return err
	}

	_ = lf.tokenService.RevokeToken(sessionToken)

	user, err := lf.userRepo.ByID(ctx, session.UserID)
	if err == nil && user != nil {
		msg := fmt.Sprintf("User logged out: %d", user.ID)
		_ = lf.LogLoginAttempt(ctx, user, models.AuditActionLogout, msg, true, nil, metadata)
	}

	return nil
}

// CreateSession issues a JWT and persists the session record
func (lf *LoginFlowImpl) CreateSession(ctx context.Context, userID uint, metadata *ClientMetadata) (*models.UserSession, error) {
	accessToken, _, err := lf.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, err
	}

	expiresAt := utils.UTCNowAdd(utils.SessionTimeout)

	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	session := &models.UserSession{
		UserID:        userID,
		CorrelationID: uuid.New(),
		SessionToken:  accessToken,
		ExpiresAt:     expiresAt,
		IsActive:      utils.ToPtr(true),
		IPAddress:     &ipAddress,
		UserAgent:     &userAgent,
	}

	err = lf.sessionRepo.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// InvalidateAllSessions deactivates every active session of a user
func (lf *LoginFlowImpl) InvalidateAllSessions(ctx context.Context, userID uint) error {
	return lf.sessionRepo.DeactivateAllForUser(ctx, userID)
}

func (lf *LoginFlowImpl) LogLoginAttempt(ctx context.Context, user *models.User, action string, description string, success bool, errMsg *string, metadata *ClientMetadata) error {
	var userID *uint
	if user != nil {
		userID = &user.ID
	}

	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		Description:  &description,
		Success:      utils.ToPtr(success),
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		ErrorMessage: errMsg,
	}

	requestID := ctx.Value(RequestIDKey)
	if requestID != nil {
		requestIDStr, ok := requestID.(string)
		if ok {
			audit.RequestID = &requestIDStr
		}
	}

	return lf.auditRepo.Save(ctx, audit)
}

func (lf *LoginFlowImpl) WithLoginTransaction(ctx context.Context, fn func(context.Context) (*dto.LoginResponse, error)) (*dto.LoginResponse, error) {
	var result *dto.LoginResponse
	var fnErr error

	err := repository.WithTransaction(ctx, lf.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}
