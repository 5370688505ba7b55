// Package tests contains test cases for models and repository packages to avoid circular imports
package tests

import (
	"testing"
	"time"

	"github.com/budun/backoffice/models"
	testingutil "github.com/budun/backoffice/testing"
	"github.com/budun/backoffice/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserModel(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		assert.Equal(t, "users", models.User{}.TableName())
	})

	t.Run("IsActive", func(t *testing.T) {
		active := &models.User{Status: models.StatusActive}
		passive := &models.User{Status: models.StatusPassive}

		assert.True(t, active.IsActive())
		assert.False(t, passive.IsActive())
	})

	t.Run("PasswordHashFormat", func(t *testing.T) {
		hash := utils.HashPassword("GizliSifre123")

		// hex-encoded SHA-256, stable across calls
		assert.Len(t, hash, 64)
		assert.Equal(t, hash, utils.HashPassword("GizliSifre123"))
		assert.NotEqual(t, hash, utils.HashPassword("GizliSifre124"))
	})
}

func TestPolicyModel(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		assert.Equal(t, "policies", models.Policy{}.TableName())
	})

	t.Run("RemainingDebt", func(t *testing.T) {
		policy := &models.Policy{Premium: 1000, AmountPaid: 400}
		assert.Equal(t, 600.0, policy.RemainingDebt())
	})

	t.Run("RemainingDebtClampedAtZero", func(t *testing.T) {
		policy := &models.Policy{Premium: 1000, AmountPaid: 1300}
		assert.Equal(t, 0.0, policy.RemainingDebt())
	})
}

func TestSalesAgentModel(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		assert.Equal(t, "sales_agents", models.SalesAgent{}.TableName())
	})

	t.Run("IsActive", func(t *testing.T) {
		active := &models.SalesAgent{Status: models.StatusActive}
		passive := &models.SalesAgent{Status: models.StatusPassive}

		assert.True(t, active.IsActive())
		assert.False(t, passive.IsActive())
	})
}

func TestCommissionRateModel(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		assert.Equal(t, "commission_rates", models.CommissionRate{}.TableName())
	})

	t.Run("RateFromWholePercent", func(t *testing.T) {
		rate := &models.CommissionRate{ProductType: models.ProductKasko, Percent: 15}
		assert.Equal(t, 0.15, rate.Rate())
	})
}

func TestUserSessionModel(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		assert.Equal(t, "user_sessions", models.UserSession{}.TableName())
	})

	t.Run("IsExpired", func(t *testing.T) {
		expired := &models.UserSession{ExpiresAt: time.Now().Add(-1 * time.Hour)}
		live := &models.UserSession{ExpiresAt: time.Now().Add(1 * time.Hour)}

		assert.True(t, expired.IsExpired())
		assert.False(t, live.IsExpired())
	})

	t.Run("IsValid", func(t *testing.T) {
		valid := &models.UserSession{
			IsActive:  utils.ToPtr(true),
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}
		deactivated := &models.UserSession{
			IsActive:  utils.ToPtr(false),
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}
		expired := &models.UserSession{
			IsActive:  utils.ToPtr(true),
			ExpiresAt: time.Now().Add(-1 * time.Hour),
		}

		assert.True(t, valid.IsValid())
		assert.False(t, deactivated.IsValid())
		assert.False(t, expired.IsValid())
	})
}

func TestAuditLogModel(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		assert.Equal(t, "audit_log", models.AuditLog{}.TableName())
	})

	t.Run("IsFailed", func(t *testing.T) {
		failed := &models.AuditLog{Success: utils.ToPtr(false)}
		succeeded := &models.AuditLog{Success: utils.ToPtr(true)}
		unset := &models.AuditLog{}

		assert.True(t, failed.IsFailed())
		assert.False(t, succeeded.IsFailed())
		assert.False(t, unset.IsFailed())
	})

	t.Run("IsSecurityEvent", func(t *testing.T) {
		login := &models.AuditLog{Action: models.AuditActionLoginSuccess}
		policy := &models.AuditLog{Action: models.AuditActionPolicyCreated}

		assert.True(t, login.IsSecurityEvent())
		assert.False(t, policy.IsSecurityEvent())
	})
}

func TestModelPersistence(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)

		t.Run("CreateUser", func(t *testing.T) {
			user, err := fixtures.CreateTestUser("model_user", "GizliSifre123")
			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.NotEqual(t, "", user.UUID.String())
			assert.Equal(t, models.StatusActive, user.Status)
			assert.Equal(t, utils.HashPassword("GizliSifre123"), user.PasswordHash)
		})

		t.Run("CreateCustomer", func(t *testing.T) {
			customer, err := fixtures.CreateTestCustomer("Ayşe Demir")
			require.NoError(t, err)
			assert.NotZero(t, customer.ID)
			assert.Equal(t, "Ayşe Demir", customer.FullName)
			assert.Len(t, customer.NationalID, 11)
		})

		t.Run("CreatePolicyWithCustomer", func(t *testing.T) {
			customer, err := fixtures.CreateTestCustomer("Mehmet Kaya")
			require.NoError(t, err)

			endDate := utils.TodayUTC().AddDate(1, 0, 0)
			policy, err := fixtures.CreateTestPolicy(customer.ID, "POL-MODEL-1", models.ProductKasko, 10000, endDate)
			require.NoError(t, err)
			assert.NotZero(t, policy.ID)
			assert.Equal(t, customer.ID, policy.CustomerID)
			assert.Equal(t, models.PaymentMethodCash, policy.PaymentMethod)
			assert.Equal(t, models.RenewalStatusInProgress, policy.RenewalStatus)

			// loading the policy back brings the customer relation with it
			var loaded models.Policy
			err = testDB.DB.Preload("Customer").First(&loaded, policy.ID).Error
			require.NoError(t, err)
			assert.Equal(t, "Mehmet Kaya", loaded.Customer.FullName)
		})

		t.Run("DuplicateNationalIDRejected", func(t *testing.T) {
			customer, err := fixtures.CreateTestCustomer("İlk Müşteri")
			require.NoError(t, err)

			duplicate := &models.Customer{
				UUID:       uuid.New(),
				FullName:   "Kopya Müşteri",
				NationalID: customer.NationalID,
			}
			err = testDB.DB.Create(duplicate).Error
			assert.Error(t, err)
		})

		t.Run("DuplicateUsernameRejected", func(t *testing.T) {
			_, err := fixtures.CreateTestUser("unique_user", "GizliSifre123")
			require.NoError(t, err)

			_, err = fixtures.CreateTestUser("unique_user", "BaskaSifre123")
			assert.Error(t, err)
		})
	})
}
