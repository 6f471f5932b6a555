package bookingrepo

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortColumns = map[string]string{
	ports.BookingSortRequestedAt:   "requested_at",
	ports.BookingSortProposedRate:  "proposed_rate",
	ports.BookingSortTransporterID: "transporter_id",
	ports.BookingSortStatus:        "status",
}

// GormBookingRepository implements ports.BookingRepository using GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookingDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("booking", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	return nil
}

func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormBookingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BookingDTO{}, "id = ?", id.Raw())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", id.String())
	}

	return nil
}

func (r *GormBookingRepository) ListByLoadID(ctx context.Context, loadID kernel.UUID) ([]*booking.Booking, error) {
	if err := loadID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Where("load_id = ?", loadID.Raw()).
		Order("requested_at").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormBookingRepository) ExistsForLoadAndTransporter(
	ctx context.Context,
	loadID kernel.UUID,
	transporterID string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("load_id = ? AND transporter_id = ?", loadID.Raw(), transporterID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormBookingRepository) List(
	ctx context.Context,
	filter ports.BookingFilter,
	page ports.PageRequest,
) (ports.Page[*booking.Booking], error) {
	if err := page.Validate(ports.BookingSortFields); err != nil {
		return ports.Page[*booking.Booking]{}, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&BookingDTO{}).Scopes(matching(filter)).Count(&total).Error; err != nil {
		return ports.Page[*booking.Booking]{}, err
	}

	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Scopes(matching(filter)).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: sortColumns[page.SortBy]},
			Desc:   page.SortDir == ports.SortDesc,
		}).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&dtos).Error
	if err != nil {
		return ports.Page[*booking.Booking]{}, err
	}

	bookings, err := toDomainList(dtos)
	if err != nil {
		return ports.Page[*booking.Booking]{}, err
	}

	return ports.NewPage(bookings, page, total), nil
}

// ListOrphaned returns bookings whose load row is gone, oldest request first.
func (r *GormBookingRepository) ListOrphaned(ctx context.Context) ([]*booking.Booking, error) {
	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM loads WHERE loads.id = bookings.load_id)").
		Order("requested_at").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func matching(filter ports.BookingFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.LoadID != nil {
			db = db.Where("load_id = ?", filter.LoadID.Raw())
		}
		if filter.TransporterID != "" {
			db = db.Where("transporter_id = ?", filter.TransporterID)
		}
		if filter.Status != booking.Unknown {
			db = db.Where("status = ?", int(filter.Status))
		}
		return db
	}
}
