package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
)

// TickRangeConstraint is the name of the CHECK constraint guarding intervals.ticks
const TickRangeConstraint = "chk_intervals_ticks_range"

// PostgresTuning holds PostgreSQL-only schema steps
type PostgresTuning struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPostgresTuning creates a new PostgreSQL tuning helper
func NewPostgresTuning(db *gorm.DB, logger coreport.Logger) *PostgresTuning {
	return &PostgresTuning{
		db:     db,
		logger: logger,
	}
}

// AddTickRangeConstraint rejects rows whose ticks fall outside the canonical range
func (p *PostgresTuning) AddTickRangeConstraint(ctx context.Context) error {
	p.logger.Info("Adding tick range constraint", map[string]any{
		"constraint": TickRangeConstraint,
	})

	stmt := fmt.Sprintf(`
		DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
				ALTER TABLE intervals ADD CONSTRAINT %s CHECK (ticks BETWEEN %d AND %d);
			END IF;
		END $$;
	`, TickRangeConstraint, TickRangeConstraint, entity.MinTicks, entity.MaxTicks)

	if err := p.db.WithContext(ctx).Exec(stmt).Error; err != nil {
		p.logger.Error("Failed to add tick range constraint", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// ApplyPerformanceTweaks sets storage options; failures are logged and ignored
func (p *PostgresTuning) ApplyPerformanceTweaks(ctx context.Context) {
	p.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Rows are insert-only, so pages can be packed
	if err := p.db.WithContext(ctx).Exec(`ALTER TABLE intervals SET (fillfactor = 100)`).Error; err != nil {
		p.logger.Warn("Failed to set fillfactor for intervals table", map[string]any{
			"error": err.Error(),
		})
	}
}
