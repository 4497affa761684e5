package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/ports"
	"loanaudit/internal/pkg/errs"

	"gorm.io/gorm"
)

var (
	_ ports.OrderRepository = (*GormOrderRepository)(nil)
	_ ports.OrderReader     = (*GormOrderRepository)(nil)
)

// GormOrderRepository implements OrderRepository and OrderReader using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository. Pass a
// transaction handle to take part in a unit of work.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s already exists", dto.ID))
		}
		return err
	}

	return nil
}

// Update writes the order only if the row still holds the previous version.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version - 1

	// Select("*") writes NULLs too, which clears approvedAt on rejection.
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.conflictOrNotFound(ctx, dto.ID, expected)
	}

	return nil
}

func (r *GormOrderRepository) conflictOrNotFound(ctx context.Context, id string, expected int) error {
	var current OrderDTO
	err := r.db.WithContext(ctx).Select("version").First(&current, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", id)
	}
	if err != nil {
		return err
	}
	return errs.NewVersionConflictError(id, expected, current.Version)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns the orders matching filter, newest first and then by ID.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})

	if len(filter.Statuses) > 0 {
		statuses := make([]int, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, int(status))
		}
		query = query.Where("status IN ?", statuses)
	}

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		query = query.Where(
			"profile_customer_name LIKE ? OR LOWER(id) LIKE ?",
			pattern, strings.ToLower(pattern),
		)
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Order("id ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountByStatus groups the orders table by status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	var rows []struct {
		Status int
		Count  int
	}
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int, len(rows))
	for _, row := range rows {
		counts[order.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
