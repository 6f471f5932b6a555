package bookingrepo_test

import (
	"context"
	"testing"
	"time"

	"loadboard/internal/adapters/out/postgres/bookingrepo"
	"loadboard/internal/adapters/out/postgres/loadrepo"
	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var baseTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

type BookingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bookingrepo.GormBookingRepository
	loads      *loadrepo.GormLoadRepository
}

func (suite *BookingRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&loadrepo.LoadDTO{}, &bookingrepo.BookingDTO{}))
}

func (suite *BookingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE loads, bookings").Error)
	suite.repository = bookingrepo.NewGormBookingRepository(suite.db)
	suite.loads = loadrepo.NewGormLoadRepository(suite.db)
}

func (suite *BookingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BookingRepositoryIntegrationTestSuite) addLoad() kernel.UUID {
	facility, err := load.NewFacility("Mumbai Port", "Delhi Warehouse", baseTime.Add(24*time.Hour), baseTime.Add(72*time.Hour))
	suite.Require().NoError(err)

	l, err := load.NewLoad(kernel.NewUUID(), load.Details{
		ShipperID:   "SHIPPER001",
		Facility:    facility,
		ProductType: "Electronics",
		TruckType:   "Container",
		NoOfTrucks:  1,
		Weight:      decimal.NewFromInt(10),
	}, baseTime)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.loads.Add(context.Background(), l))
	return l.ID()
}

func (suite *BookingRepositoryIntegrationTestSuite) addBooking(
	loadID kernel.UUID,
	transporter string,
	rate string,
	requestedAt time.Time,
) *booking.Booking {
	b, err := booking.NewBooking(kernel.NewUUID(), loadID, transporter, decimal.RequireFromString(rate), "note", requestedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), b))
	return b
}

func (suite *BookingRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	loadID := suite.addLoad()
	original := suite.addBooking(loadID, "TRANS001", "50000.75", baseTime)

	got, err := suite.repository.Get(context.Background(), original.ID())

	suite.Require().NoError(err)
	suite.Equal(original.ID(), got.ID())
	suite.Equal(loadID, got.LoadID())
	suite.Equal("TRANS001", got.TransporterID())
	suite.True(decimal.RequireFromString("50000.75").Equal(got.ProposedRate()))
	suite.Equal("note", got.Comment())
	suite.Equal(booking.Pending, got.Status())
	suite.True(baseTime.Equal(got.RequestedAt()))
}

func (suite *BookingRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestUpdateAndDelete() {
	ctx := context.Background()
	b := suite.addBooking(suite.addLoad(), "TRANS001", "100", baseTime)

	b.Reject()
	suite.Require().NoError(suite.repository.Update(ctx, b))
	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal(booking.Rejected, got.Status())

	suite.Require().NoError(suite.repository.Delete(ctx, b.ID()))
	suite.ErrorIs(suite.repository.Delete(ctx, b.ID()), errs.ErrObjectNotFound)
	suite.ErrorIs(suite.repository.Update(ctx, b), errs.ErrObjectNotFound)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestListByLoadID_OldestFirst() {
	ctx := context.Background()
	loadID := suite.addLoad()
	later := suite.addBooking(loadID, "TRANS002", "90", baseTime.Add(time.Minute))
	earlier := suite.addBooking(loadID, "TRANS001", "100", baseTime)
	suite.addBooking(suite.addLoad(), "TRANS001", "100", baseTime)

	got, err := suite.repository.ListByLoadID(ctx, loadID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(earlier.ID(), got[0].ID())
	suite.Equal(later.ID(), got[1].ID())
}

func (suite *BookingRepositoryIntegrationTestSuite) TestExistsForLoadAndTransporter() {
	ctx := context.Background()
	loadID := suite.addLoad()
	suite.addBooking(loadID, "TRANS001", "100", baseTime)

	exists, err := suite.repository.ExistsForLoadAndTransporter(ctx, loadID, "TRANS001")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsForLoadAndTransporter(ctx, loadID, "TRANS002")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestList_FilterSortAndPage() {
	ctx := context.Background()
	loadID := suite.addLoad()
	suite.addBooking(loadID, "TRANS001", "300", baseTime)
	suite.addBooking(loadID, "TRANS002", "100", baseTime.Add(time.Minute))
	suite.addBooking(loadID, "TRANS003", "200", baseTime.Add(2*time.Minute))
	suite.addBooking(suite.addLoad(), "TRANS001", "50", baseTime)

	page, err := suite.repository.List(ctx,
		ports.BookingFilter{LoadID: &loadID, Status: booking.Pending},
		ports.PageRequest{Page: 0, Size: 2, SortBy: ports.BookingSortProposedRate, SortDir: ports.SortAsc},
	)

	suite.Require().NoError(err)
	suite.EqualValues(3, page.TotalItems)
	suite.Equal(2, page.TotalPages)
	suite.Require().Len(page.Items, 2)
	suite.Equal("TRANS002", page.Items[0].TransporterID())
	suite.Equal("TRANS003", page.Items[1].TransporterID())

	page, err = suite.repository.List(ctx,
		ports.BookingFilter{TransporterID: "TRANS001"},
		ports.PageRequest{Page: 0, Size: 10, SortBy: ports.BookingSortRequestedAt, SortDir: ports.SortDesc},
	)
	suite.Require().NoError(err)
	suite.EqualValues(2, page.TotalItems)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestListOrphaned() {
	ctx := context.Background()
	kept := suite.addLoad()
	gone := suite.addLoad()
	suite.addBooking(kept, "TRANS001", "100", baseTime)
	orphan := suite.addBooking(gone, "TRANS002", "100", baseTime)
	suite.Require().NoError(suite.loads.Delete(ctx, gone))

	got, err := suite.repository.ListOrphaned(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(orphan.ID(), got[0].ID())
}

func TestBookingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BookingRepositoryIntegrationTestSuite))
}
