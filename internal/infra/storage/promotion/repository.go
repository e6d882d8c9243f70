package promotion

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/wildpath/WP-BookingService/internal/domain"
	"github.com/wildpath/WP-BookingService/pkg/dbmetrics"
	"github.com/wildpath/WP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения промоакций
// Букинг-ядро только читает промокоды; инкремент usage_count выполняет
// внешний платежный flow
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промоакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает промоакцию по коду без учета регистра
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"description",
		"discount_type",
		"discount_value",
		"max_discount_amount",
		"adventure_ids",
		"starts_at",
		"expires_at",
		"usage_limit",
		"usage_count",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("promotions").
		Where(squirrel.Expr("LOWER(code) = LOWER(?)", code)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var promo domain.Promotion
	var adventureIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promo.ID,
		&promo.Code,
		&promo.Description,
		&promo.DiscountType,
		&promo.DiscountValue,
		&promo.MaxDiscountAmount,
		&adventureIDs,
		&promo.StartsAt,
		&promo.ExpiresAt,
		&promo.UsageLimit,
		&promo.UsageCount,
		&promo.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan promotion: %v", ErrScanRow, err)
	}

	promo.AdventureIDs = []int64(adventureIDs)
	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return &promo, nil
}
