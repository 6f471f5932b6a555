package loadrepo

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortColumns = map[string]string{
	ports.LoadSortDatePosted: "date_posted",
	ports.LoadSortWeight:     "weight",
	ports.LoadSortNoOfTrucks: "no_of_trucks",
	ports.LoadSortShipperID:  "shipper_id",
	ports.LoadSortStatus:     "status",
}

// GormLoadRepository implements ports.LoadRepository using GORM.
type GormLoadRepository struct {
	db *gorm.DB
}

func NewGormLoadRepository(db *gorm.DB) *GormLoadRepository {
	return &GormLoadRepository{db: db}
}

func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes every column, so cleared optional fields are stored too.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LoadDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("load", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	return nil
}

func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the row with SELECT ... FOR UPDATE.
func (r *GormLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormLoadRepository) get(db *gorm.DB, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := db.First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLoadRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LoadDTO{}, "id = ?", id.Raw())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("load", id.String())
	}

	return nil
}

func (r *GormLoadRepository) List(
	ctx context.Context,
	filter ports.LoadFilter,
	page ports.PageRequest,
) (ports.Page[*load.Load], error) {
	if err := page.Validate(ports.LoadSortFields); err != nil {
		return ports.Page[*load.Load]{}, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&LoadDTO{}).Scopes(matching(filter)).Count(&total).Error; err != nil {
		return ports.Page[*load.Load]{}, err
	}

	var dtos []LoadDTO
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
		return ports.Page[*load.Load]{}, err
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return ports.Page[*load.Load]{}, err
		}
		loads = append(loads, l)
	}

	return ports.NewPage(loads, page, total), nil
}

// matching narrows a query to the non-empty filter fields.
func matching(filter ports.LoadFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.ShipperID != "" {
			db = db.Where("shipper_id = ?", filter.ShipperID)
		}
		if filter.TruckType != "" {
			db = db.Where("truck_type = ?", filter.TruckType)
		}
		if filter.Status != load.Unknown {
			db = db.Where("status = ?", int(filter.Status))
		}
		return db
	}
}
