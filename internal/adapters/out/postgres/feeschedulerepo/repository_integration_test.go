package feeschedulerepo_test

import (
	"context"
	"testing"
	"time"

	"veggo/internal/adapters/out/postgres/feeschedulerepo"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// FeeScheduleRepositoryIntegrationTestSuite verifies the append-only
// schedule log against a real PostgreSQL instance.
type FeeScheduleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *feeschedulerepo.GormFeeScheduleRepository
}

func (suite *FeeScheduleRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&feeschedulerepo.FeeScheduleDTO{}))
}

func (suite *FeeScheduleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE fee_schedules").Error)
	suite.repository = feeschedulerepo.NewGormFeeScheduleRepository(suite.db)
}

func (suite *FeeScheduleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *FeeScheduleRepositoryIntegrationTestSuite) TestGetLatest_EmptyLog() {
	latest, err := suite.repository.GetLatest(context.Background())
	suite.Require().NoError(err)
	suite.Nil(latest)
}

func (suite *FeeScheduleRepositoryIntegrationTestSuite) TestAppendGetLatest_RoundTrip() {
	ctx := context.Background()

	s := suite.newSchedule(30, 8, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(suite.repository.Append(ctx, s))

	latest, err := suite.repository.GetLatest(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(latest)
	suite.Equal(s.ID(), latest.ID())
	suite.InDelta(30, latest.BaseFee(), 0.001)
	suite.InDelta(8, latest.PerKmRate(), 0.001)
	suite.Equal("admin@example.com", latest.SetBy())
}

func (suite *FeeScheduleRepositoryIntegrationTestSuite) TestGetLatest_SameTimestampPrefersLastAppend() {
	ctx := context.Background()
	setAt := time.Now().UTC().Truncate(time.Microsecond)

	first := suite.newSchedule(20, 5, setAt)
	second := suite.newSchedule(35, 9, setAt)
	suite.Require().NoError(suite.repository.Append(ctx, first))
	suite.Require().NoError(suite.repository.Append(ctx, second))

	latest, err := suite.repository.GetLatest(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(latest)
	suite.Equal(second.ID(), latest.ID())
	suite.InDelta(35, latest.BaseFee(), 0.001)
}

func (suite *FeeScheduleRepositoryIntegrationTestSuite) TestGetHistory_NewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	older := suite.newSchedule(20, 5, base.Add(-time.Hour))
	newer := suite.newSchedule(35, 9, base)
	suite.Require().NoError(suite.repository.Append(ctx, older))
	suite.Require().NoError(suite.repository.Append(ctx, newer))

	history, err := suite.repository.GetHistory(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(newer.ID(), history[0].ID())
	suite.Equal(older.ID(), history[1].ID())
}

func (suite *FeeScheduleRepositoryIntegrationTestSuite) newSchedule(
	baseFee, perKmRate float64, setAt time.Time,
) pricing.FeeSchedule {
	s, err := pricing.NewFeeSchedule(
		kernel.NewUUID(), baseFee, perKmRate, perKmRate/1000, "admin@example.com", setAt)
	suite.Require().NoError(err)
	return s
}

func TestFeeScheduleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FeeScheduleRepositoryIntegrationTestSuite))
}
