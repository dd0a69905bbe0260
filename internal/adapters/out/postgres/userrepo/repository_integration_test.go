package userrepo_test

import (
	"context"
	"testing"
	"time"

	"veggo/internal/adapters/out/postgres/userrepo"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/user"
	"veggo/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite verifies account persistence, the
// uniqueness constraints, and reset token housekeeping.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsConflict() {
	ctx := context.Background()

	first := suite.newTestUser("ravi", "ravi@example.com")
	second := suite.newTestUser("ravi2", "ravi@example.com")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByVerificationToken_FindsAccount() {
	ctx := context.Background()

	u := suite.newTestUser("ravi", "ravi@example.com")
	suite.tracker.On("TrackAggregate", u.ID(), u).Once()
	suite.Require().NoError(suite.repository.Add(ctx, u))

	retrieved, err := suite.repository.GetByVerificationToken(ctx, u.VerificationToken())
	suite.Require().NoError(err)
	suite.Equal(u.ID(), retrieved.ID())
	suite.False(retrieved.IsVerified())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestPurgeExpiredResetTokens_ClearsOnlyExpired() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	expired := suite.newTestUser("ravi", "ravi@example.com")
	suite.Require().NoError(expired.IssueResetToken("expired-token", now.Add(-time.Hour), now.Add(-2*time.Hour)))

	active := suite.newTestUser("meena", "meena@example.com")
	suite.Require().NoError(active.IssueResetToken("active-token", now.Add(time.Hour), now))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, expired))
	suite.Require().NoError(suite.repository.Add(ctx, active))

	touched, err := suite.repository.PurgeExpiredResetTokens(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(1), touched)

	_, err = suite.repository.GetByResetToken(ctx, "expired-token")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	survivor, err := suite.repository.GetByResetToken(ctx, "active-token")
	suite.Require().NoError(err)
	suite.Equal(active.ID(), survivor.ID())

	suite.tracker.AssertExpectations(suite.T())
}

// newTestUser creates an unverified account with a verification token.
func (suite *UserRepositoryIntegrationTestSuite) newTestUser(username, email string) *user.User {
	u, err := user.NewUser(
		kernel.NewUUID(),
		username,
		email,
		"$2a$10$hashhashhashhashhashha",
		"+911234567890",
		"12 Market Street",
		nil,
		kernel.NewUUID().String(),
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return u
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
