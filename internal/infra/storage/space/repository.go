package space

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/smartpark/SP-BookingService/internal/domain"
	"github.com/smartpark/SP-BookingService/pkg/dbmetrics"
	"github.com/smartpark/SP-BookingService/pkg/psqlbuilder"
)

const spacesTable = "parking_spaces"

var spaceColumns = []string{
	"id",
	"name",
	"lat",
	"lng",
	"city",
	"area",
	"street",
	"unit",
	"total_slots",
	"available_slots",
	"price_per_hour",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с парковками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую парковку
func (r *Repository) Create(ctx context.Context, space *domain.ParkingSpace) (*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(spacesTable).
		Columns(
			"name",
			"lat",
			"lng",
			"city",
			"area",
			"street",
			"unit",
			"total_slots",
			"available_slots",
			"price_per_hour",
			"is_active",
		).
		Values(
			space.Name,
			space.Location.Lat,
			space.Location.Lng,
			space.City,
			space.Area,
			space.Street,
			space.Unit,
			space.TotalSlots,
			space.AvailableSlots,
			space.PricePerHour,
			space.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// GetByID получает парковку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From(spacesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	space, err := r.scanSpace(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	return space, nil
}

// ListWithFilter получает список парковок с фильтрацией по адресу и поиском по названию
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.SpacesFilter) ([]*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(spaceColumns...).
		From(spacesTable).
		OrderBy("name ASC")

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.City != nil && *filter.City != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.Area != nil && *filter.Area != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"area": *filter.Area})
	}
	if filter.Street != nil && *filter.Street != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"street": *filter.Street})
	}
	if filter.Keyword != nil && *filter.Keyword != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"name": "%" + *filter.Keyword + "%"})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSpaces(rows)
}

// ListCities возвращает города, в которых есть активные парковки
func (r *Repository) ListCities(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, "ListCities", "city", squirrel.Eq{})
}

// ListAreas возвращает районы города с активными парковками
func (r *Repository) ListAreas(ctx context.Context, city string) ([]string, error) {
	return r.listDistinct(ctx, "ListAreas", "area", squirrel.Eq{"city": city})
}

// ListStreets возвращает улицы района с активными парковками
func (r *Repository) ListStreets(ctx context.Context, city, area string) ([]string, error) {
	return r.listDistinct(ctx, "ListStreets", "street", squirrel.Eq{"city": city, "area": area})
}

// listDistinct выбирает уникальные непустые значения адресной колонки
// по активным парковкам
func (r *Repository) listDistinct(ctx context.Context, method, column string, where squirrel.Eq) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(column).
		Distinct().
		From(spacesTable).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.NotEq{column: ""}).
		Where(where).
		OrderBy(column + " ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return values, nil
}

// Update обновляет данные парковки
func (r *Repository) Update(ctx context.Context, space *domain.ParkingSpace) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(spacesTable).
		Set("name", space.Name).
		Set("lat", space.Location.Lat).
		Set("lng", space.Location.Lng).
		Set("city", space.City).
		Set("area", space.Area).
		Set("street", space.Street).
		Set("unit", space.Unit).
		Set("total_slots", space.TotalSlots).
		Set("available_slots", space.AvailableSlots).
		Set("price_per_hour", space.PricePerHour).
		Set("is_active", space.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": space.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "Update")
}

// UpdateAvailableSlots устанавливает количество свободных мест.
// Значение ограничивается диапазоном [0, total_slots] на уровне запроса.
func (r *Repository) UpdateAvailableSlots(ctx context.Context, id int64, availableSlots int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(spacesTable).
		Set("available_slots", squirrel.Expr("LEAST(GREATEST(?, 0), total_slots)", availableSlots)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAvailableSlots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailableSlots - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "UpdateAvailableSlots")
}

// Deactivate помечает парковку неактивной (soft delete).
// Физическое удаление не используется, чтобы не терять историю бронирований.
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(spacesTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "Deactivate")
}

func (r *Repository) requireRowsAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSpace(row rowScanner) (*domain.ParkingSpace, error) {
	var space domain.ParkingSpace
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&space.ID,
		&space.Name,
		&space.Location.Lat,
		&space.Location.Lng,
		&space.City,
		&space.Area,
		&space.Street,
		&space.Unit,
		&space.TotalSlots,
		&space.AvailableSlots,
		&space.PricePerHour,
		&space.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

func (r *Repository) scanSpaces(rows *sql.Rows) ([]*domain.ParkingSpace, error) {
	spaces := make([]*domain.ParkingSpace, 0)

	for rows.Next() {
		space, err := r.scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSpaces - scan row: %v", ErrScanRow, err)
		}
		spaces = append(spaces, space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpaces - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}
