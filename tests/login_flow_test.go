// Package tests contains integration tests for login flow
package tests

import (
	"testing"
	"time"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/app/services"
	businessflow "github.com/budun/backoffice/business_flow"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	testingutil "github.com/budun/backoffice/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-integration-tests-0123456789"

// runWithTestDB provisions an isolated database for one test and tears it
// down afterwards. Tests are skipped when PostgreSQL is not reachable.
func runWithTestDB(t *testing.T, fn func(testDB *testingutil.TestDB)) {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	defer func() {
		if cleanupErr := testDB.TeardownTestDB(); cleanupErr != nil {
			t.Logf("Warning: failed to cleanup test database: %v", cleanupErr)
		}
	}()

	fn(testDB)
}

func newTestLoginFlow(t *testing.T, testDB *testingutil.TestDB) businessflow.LoginFlow {
	t.Helper()

	userRepo := repository.NewUserRepository(testDB.DB)
	sessionRepo := repository.NewUserSessionRepository(testDB.DB)
	auditRepo := repository.NewAuditLogRepository(testDB.DB)

	tokenService, err := services.NewTokenService(
		1*time.Hour, 24*time.Hour,
		"test-issuer", "test-audience",
		false, "", "", testJWTSecret,
	)
	require.NoError(t, err)

	return businessflow.NewLoginFlow(userRepo, sessionRepo, auditRepo, tokenService, testDB.DB)
}

func TestLoginFlow(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		loginFlow := newTestLoginFlow(t, testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("192.168.1.10", "test-agent")

		t.Run("SuccessfulLogin", func(t *testing.T) {
			user, err := fixtures.CreateTestUser("budun_admin", "GizliSifre123")
			require.NoError(t, err)

			response, err := loginFlow.Login(ctx, &dto.LoginRequest{
				Username: "budun_admin",
				Password: "GizliSifre123",
			}, metadata)

			require.NoError(t, err)
			require.NotNil(t, response)
			assert.True(t, response.Success)
			assert.NotEmpty(t, response.Data.AccessToken)
			assert.Equal(t, "Bearer", response.Data.TokenType)
			assert.Positive(t, response.Data.ExpiresIn)
			assert.Equal(t, user.ID, response.Data.User.ID)
			assert.Equal(t, user.Username, response.Data.User.Username)
			assert.Equal(t, models.StatusActive, response.Data.User.Status)

			// session must be persisted and active
			sessionRepo := repository.NewUserSessionRepository(testDB.DB)
			session, err := sessionRepo.BySessionToken(ctx, response.Data.AccessToken)
			require.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, user.ID, session.UserID)
			assert.True(t, session.IsValid())

			// last login must be stamped
			userRepo := repository.NewUserRepository(testDB.DB)
			updated, err := userRepo.ByID(ctx, user.ID)
			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.NotNil(t, updated.LastLoginAt)
		})

		t.Run("WrongPassword", func(t *testing.T) {
			_, err := fixtures.CreateTestUser("wrong_pass_user", "DogruSifre1")
			require.NoError(t, err)

			response, err := loginFlow.Login(ctx, &dto.LoginRequest{
				Username: "wrong_pass_user",
				Password: "YanlisSifre1",
			}, metadata)

			require.Error(t, err)
			assert.Nil(t, response)

			var businessErr *businessflow.BusinessError
			require.ErrorAs(t, err, &businessErr)
			assert.Equal(t, "LOGIN_FAILED", businessErr.Code)
		})

		t.Run("UnknownUsername", func(t *testing.T) {
			response, err := loginFlow.Login(ctx, &dto.LoginRequest{
				Username: "does_not_exist",
				Password: "Herhangi123",
			}, metadata)

			require.Error(t, err)
			assert.Nil(t, response)

			// unknown users fail identically to wrong passwords
			var businessErr *businessflow.BusinessError
			require.ErrorAs(t, err, &businessErr)
			assert.Equal(t, "LOGIN_FAILED", businessErr.Code)
			assert.Equal(t, "Login failed", businessErr.Message)
		})

		t.Run("PassiveUserRejected", func(t *testing.T) {
			user, err := fixtures.CreateTestUser("passive_user", "GizliSifre123")
			require.NoError(t, err)

			err = testDB.DB.Model(&models.User{}).
				Where("id = ?", user.ID).
				Update("status", models.StatusPassive).Error
			require.NoError(t, err)

			response, err := loginFlow.Login(ctx, &dto.LoginRequest{
				Username: "passive_user",
				Password: "GizliSifre123",
			}, metadata)

			require.Error(t, err)
			assert.Nil(t, response)
		})

		t.Run("EmptyCredentials", func(t *testing.T) {
			response, err := loginFlow.Login(ctx, &dto.LoginRequest{}, metadata)

			require.Error(t, err)
			assert.Nil(t, response)
		})

		t.Run("AuditTrailWritten", func(t *testing.T) {
			user, err := fixtures.CreateTestUser("audited_user", "GizliSifre123")
			require.NoError(t, err)

			_, err = loginFlow.Login(ctx, &dto.LoginRequest{
				Username: "audited_user",
				Password: "GizliSifre123",
			}, metadata)
			require.NoError(t, err)

			auditRepo := repository.NewAuditLogRepository(testDB.DB)
			logs, err := auditRepo.ListByUser(ctx, user.ID, 10, 0)
			require.NoError(t, err)
			require.NotEmpty(t, logs)
			assert.Equal(t, models.AuditActionLoginSuccess, logs[0].Action)
		})
	})
}

func TestLogoutFlow(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		loginFlow := newTestLoginFlow(t, testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("192.168.1.10", "test-agent")

		t.Run("SuccessfulLogout", func(t *testing.T) {
			_, err := fixtures.CreateTestUser("logout_user", "GizliSifre123")
			require.NoError(t, err)

			response, err := loginFlow.Login(ctx, &dto.LoginRequest{
				Username: "logout_user",
				Password: "GizliSifre123",
			}, metadata)
			require.NoError(t, err)

			err = loginFlow.Logout(ctx, response.Data.AccessToken, metadata)
			require.NoError(t, err)

			sessionRepo := repository.NewUserSessionRepository(testDB.DB)
			session, err := sessionRepo.BySessionToken(ctx, response.Data.AccessToken)
			require.NoError(t, err)
			require.NotNil(t, session)
			assert.False(t, session.IsValid())
		})

		t.Run("UnknownSessionToken", func(t *testing.T) {
			err := loginFlow.Logout(ctx, "no-such-session-token", metadata)

			require.Error(t, err)

			var businessErr *businessflow.BusinessError
			require.ErrorAs(t, err, &businessErr)
			assert.Equal(t, "LOGOUT_FAILED", businessErr.Code)
		})
	})
}
