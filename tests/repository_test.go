// Package tests contains test cases for models and repository packages to avoid circular imports
package tests

import (
	"testing"
	"time"

	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	testingutil "github.com/budun/backoffice/testing"
	"github.com/budun/backoffice/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		repo := repository.NewUserRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("ByUsername", func(t *testing.T) {
			created, err := fixtures.CreateTestUser("repo_user", "GizliSifre123")
			require.NoError(t, err)

			user, err := repo.ByUsername(ctx, "repo_user")
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, created.ID, user.ID)
			assert.Equal(t, created.PasswordHash, user.PasswordHash)
		})

		t.Run("ByUsernameNotFound", func(t *testing.T) {
			user, err := repo.ByUsername(ctx, "no_such_user")
			require.NoError(t, err)
			assert.Nil(t, user)
		})

		t.Run("ByIDNotFound", func(t *testing.T) {
			user, err := repo.ByID(ctx, 999999)
			require.NoError(t, err)
			assert.Nil(t, user)
		})

		t.Run("UpdateLastLogin", func(t *testing.T) {
			created, err := fixtures.CreateTestUser("last_login_user", "GizliSifre123")
			require.NoError(t, err)
			assert.Nil(t, created.LastLoginAt)

			now := utils.UTCNow()
			err = repo.UpdateLastLogin(ctx, created.ID, now)
			require.NoError(t, err)

			user, err := repo.ByID(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotNil(t, user.LastLoginAt)
			assert.WithinDuration(t, now, *user.LastLoginAt, time.Second)
		})
	})
}

func TestCustomerRepository(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		repo := repository.NewCustomerRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("ByNationalID", func(t *testing.T) {
			created, err := fixtures.CreateTestCustomer("Ayşe Demir")
			require.NoError(t, err)

			customer, err := repo.ByNationalID(ctx, created.NationalID)
			require.NoError(t, err)
			require.NotNil(t, customer)
			assert.Equal(t, created.ID, customer.ID)
			assert.Equal(t, "Ayşe Demir", customer.FullName)
		})

		t.Run("ByNationalIDNotFound", func(t *testing.T) {
			customer, err := repo.ByNationalID(ctx, "00000000000")
			require.NoError(t, err)
			assert.Nil(t, customer)
		})

		t.Run("ListOrderedByName", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			for _, name := range []string{"Zeynep Acar", "Ali Veli", "Mehmet Kaya"} {
				_, err := fixtures.CreateTestCustomer(name)
				require.NoError(t, err)
			}

			customers, err := repo.ListOrderedByName(ctx, 0, 0)
			require.NoError(t, err)
			require.Len(t, customers, 3)
			assert.Equal(t, "Ali Veli", customers[0].FullName)
			assert.Equal(t, "Mehmet Kaya", customers[1].FullName)
			assert.Equal(t, "Zeynep Acar", customers[2].FullName)
		})

		t.Run("ListOrderedByNamePagination", func(t *testing.T) {
			customers, err := repo.ListOrderedByName(ctx, 2, 1)
			require.NoError(t, err)
			require.Len(t, customers, 2)
			assert.Equal(t, "Mehmet Kaya", customers[0].FullName)
		})
	})
}

func TestSalesAgentRepository(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		repo := repository.NewSalesAgentRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("ListByStatus", func(t *testing.T) {
			_, err := fixtures.CreateTestAgent("Aktif Temsilci", models.StatusActive)
			require.NoError(t, err)
			_, err = fixtures.CreateTestAgent("Pasif Temsilci", models.StatusPassive)
			require.NoError(t, err)

			active, err := repo.ListByStatus(ctx, models.StatusActive, 0, 0)
			require.NoError(t, err)
			require.Len(t, active, 1)
			assert.Equal(t, "Aktif Temsilci", active[0].FullName)

			passive, err := repo.ListByStatus(ctx, models.StatusPassive, 0, 0)
			require.NoError(t, err)
			require.Len(t, passive, 1)
			assert.Equal(t, "Pasif Temsilci", passive[0].FullName)
		})
	})
}

func TestPolicyRepository(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		repo := repository.NewPolicyRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		customer, err := fixtures.CreateTestCustomer("Poliçe Sahibi")
		require.NoError(t, err)

		today := utils.TodayUTC()

		_, err = fixtures.CreateTestPolicy(customer.ID, "POL-1", models.ProductKasko, 10000, today.AddDate(0, 0, 10))
		require.NoError(t, err)
		_, err = fixtures.CreateTestPolicy(customer.ID, "POL-2", models.ProductTrafik, 2500, today.AddDate(0, 0, 45))
		require.NoError(t, err)
		_, err = fixtures.CreateTestPolicy(customer.ID, "POL-3", models.ProductKonut, 3000, today.AddDate(0, 0, -3))
		require.NoError(t, err)

		t.Run("ListRecent", func(t *testing.T) {
			policies, err := repo.ListRecent(ctx, 0, 0)
			require.NoError(t, err)
			assert.Len(t, policies, 3)

			// customer relation comes preloaded for display
			assert.Equal(t, "Poliçe Sahibi", policies[0].Customer.FullName)
		})

		t.Run("ListByPaymentMethod", func(t *testing.T) {
			policies, err := repo.ListByPaymentMethod(ctx, models.PaymentMethodCash)
			require.NoError(t, err)
			assert.Len(t, policies, 3)

			policies, err = repo.ListByPaymentMethod(ctx, "Kredi Kartı")
			require.NoError(t, err)
			assert.Empty(t, policies)
		})

		t.Run("ListExpiringBetween", func(t *testing.T) {
			policies, err := repo.ListExpiringBetween(ctx, today, today.AddDate(0, 0, 30))
			require.NoError(t, err)
			require.Len(t, policies, 1)
			assert.Equal(t, "POL-1", policies[0].PolicyNumber)
		})

		t.Run("ListExpiringBetweenIncludesLapsed", func(t *testing.T) {
			policies, err := repo.ListExpiringBetween(ctx, today.AddDate(0, 0, -5), today.AddDate(0, 0, 30))
			require.NoError(t, err)
			require.Len(t, policies, 2)

			// ordered by end date ascending, lapsed first
			assert.Equal(t, "POL-3", policies[0].PolicyNumber)
			assert.Equal(t, "POL-1", policies[1].PolicyNumber)
		})

		t.Run("CountExpiringBetween", func(t *testing.T) {
			count, err := repo.CountExpiringBetween(ctx, today, today.AddDate(0, 0, 60))
			require.NoError(t, err)
			assert.Equal(t, int64(2), count)
		})

		t.Run("ByFilterProductType", func(t *testing.T) {
			productType := models.ProductKasko
			policies, err := repo.ByFilter(ctx, models.PolicyFilter{ProductType: &productType}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, policies, 1)
			assert.Equal(t, "POL-1", policies[0].PolicyNumber)
		})
	})
}

func TestCommissionRateRepository(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		repo := repository.NewCommissionRateRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("ListAll", func(t *testing.T) {
			_, err := fixtures.CreateTestCommissionRate(models.ProductKasko, 20)
			require.NoError(t, err)
			_, err = fixtures.CreateTestCommissionRate(models.ProductTrafik, 8)
			require.NoError(t, err)

			rates, err := repo.ListAll(ctx)
			require.NoError(t, err)
			assert.Len(t, rates, 2)
		})

		t.Run("ByProductType", func(t *testing.T) {
			rate, err := repo.ByProductType(ctx, models.ProductKasko)
			require.NoError(t, err)
			require.NotNil(t, rate)
			assert.Equal(t, 20.0, rate.Percent)
			assert.Equal(t, 0.20, rate.Rate())
		})

		t.Run("ByProductTypeNotFound", func(t *testing.T) {
			rate, err := repo.ByProductType(ctx, models.ProductSeyahat)
			require.NoError(t, err)
			assert.Nil(t, rate)
		})

		t.Run("DuplicateProductTypeRejected", func(t *testing.T) {
			_, err := fixtures.CreateTestCommissionRate(models.ProductKasko, 25)
			assert.Error(t, err)
		})
	})
}

func TestUserSessionRepository(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		repo := repository.NewUserSessionRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		user, err := fixtures.CreateTestUser("session_user", "GizliSifre123")
		require.NoError(t, err)

		t.Run("BySessionToken", func(t *testing.T) {
			created, err := fixtures.CreateTestSession(user.ID)
			require.NoError(t, err)

			session, err := repo.BySessionToken(ctx, created.SessionToken)
			require.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, user.ID, session.UserID)
			assert.True(t, session.IsValid())
		})

		t.Run("BySessionTokenNotFound", func(t *testing.T) {
			session, err := repo.BySessionToken(ctx, "missing-token")
			require.NoError(t, err)
			assert.Nil(t, session)
		})

		t.Run("Deactivate", func(t *testing.T) {
			created, err := fixtures.CreateTestSession(user.ID)
			require.NoError(t, err)

			err = repo.Deactivate(ctx, created.SessionToken)
			require.NoError(t, err)

			session, err := repo.BySessionToken(ctx, created.SessionToken)
			require.NoError(t, err)
			require.NotNil(t, session)
			assert.False(t, session.IsValid())
		})

		t.Run("DeactivateAllForUser", func(t *testing.T) {
			first, err := fixtures.CreateTestSession(user.ID)
			require.NoError(t, err)
			second, err := fixtures.CreateTestSession(user.ID)
			require.NoError(t, err)

			err = repo.DeactivateAllForUser(ctx, user.ID)
			require.NoError(t, err)

			for _, token := range []string{first.SessionToken, second.SessionToken} {
				session, err := repo.BySessionToken(ctx, token)
				require.NoError(t, err)
				require.NotNil(t, session)
				assert.False(t, session.IsValid())
			}
		})
	})
}

func TestAuditLogRepository(t *testing.T) {
	runWithTestDB(t, func(testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		repo := repository.NewAuditLogRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		user, err := fixtures.CreateTestUser("audit_user", "GizliSifre123")
		require.NoError(t, err)

		t.Run("ListByUser", func(t *testing.T) {
			_, err := fixtures.CreateTestAuditLog(&user.ID, models.AuditActionLoginSuccess, true)
			require.NoError(t, err)
			_, err = fixtures.CreateTestAuditLog(&user.ID, models.AuditActionLogout, true)
			require.NoError(t, err)
			_, err = fixtures.CreateTestAuditLog(nil, models.AuditActionLoginFailed, false)
			require.NoError(t, err)

			logs, err := repo.ListByUser(ctx, user.ID, 10, 0)
			require.NoError(t, err)
			assert.Len(t, logs, 2)
		})

		t.Run("SaveWithoutUser", func(t *testing.T) {
			audit, err := fixtures.CreateTestAuditLog(nil, models.AuditActionLoginFailed, false)
			require.NoError(t, err)
			assert.NotZero(t, audit.ID)
			assert.Nil(t, audit.UserID)
			assert.True(t, audit.IsFailed())
		})
	})
}
