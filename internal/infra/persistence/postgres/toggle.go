package postgres

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// toggleMembership removes the membership row matched by where, or inserts
// row when none exists. It reports whether the membership is now present.
func toggleMembership(tx *gorm.DB, row any, where string, args ...any) (bool, error) {
	deleted := tx.Where(where, args...).Delete(row)
	if deleted.Error != nil {
		return false, errors.Wrap(deleted.Error, "failed to remove membership")
	}

	if deleted.RowsAffected > 0 {
		return false, nil
	}

	if err := tx.Create(row).Error; err != nil {
		return false, errors.Wrap(err, "failed to add membership")
	}

	return true, nil
}

// adjustCounter moves a denormalised counter by one and returns its new value.
func adjustCounter(tx *gorm.DB, table any, id uuid.UUID, column string, increment bool) (int, error) {
	expr := gorm.Expr("GREATEST(" + column + " - 1, 0)")
	if increment {
		expr = gorm.Expr(column + " + 1")
	}

	if err := tx.Model(table).Where("id = ?", id).Update(column, expr).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to update %s", column)
	}

	var counts []int
	if err := tx.Model(table).Where("id = ?", id).Pluck(column, &counts).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to read %s", column)
	}

	if len(counts) == 0 {
		return 0, nil
	}

	return counts[0], nil
}
