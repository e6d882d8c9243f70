package adventure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/wildpath/WP-BookingService/internal/domain"
	"github.com/wildpath/WP-BookingService/pkg/dbmetrics"
	"github.com/wildpath/WP-BookingService/pkg/psqlbuilder"
)

// adventureColumns колонки таблицы adventures в порядке сканирования
var adventureColumns = []string{
	"id",
	"title",
	"description",
	"location",
	"price_per_person",
	"duration_hours",
	"max_participants",
	"daily_capacity",
	"difficulty_level",
	"guide_id",
	"group_discount_percent",
	"early_bird_discount_percent",
	"early_bird_days",
	"min_advance_hours",
	"max_advance_days",
	"cancellation_policy",
	"is_active",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения приключений
// Букинг-ядро не изменяет приключения: они управляются админским CMS
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория приключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает приключение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Adventure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(adventureColumns...).
		From("adventures").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	adv, err := scanAdventure(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAdventureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan adventure: %v", ErrScanRow, err)
	}

	return adv, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAdventure(row rowScanner) (*domain.Adventure, error) {
	var adv domain.Adventure
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&adv.ID,
		&adv.Title,
		&adv.Description,
		&adv.Location,
		&adv.PricePerPerson,
		&adv.DurationHours,
		&adv.MaxParticipants,
		&adv.DailyCapacity,
		&adv.DifficultyLevel,
		&adv.GuideID,
		&adv.GroupDiscountPercent,
		&adv.EarlyBirdDiscountPercent,
		&adv.EarlyBirdDays,
		&adv.MinAdvanceHours,
		&adv.MaxAdvanceDays,
		&adv.CancellationPolicy,
		&adv.IsActive,
		&adv.ImageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	adv.CreatedAt = createdAt.Time
	adv.UpdatedAt = updatedAt.Time

	return &adv, nil
}
