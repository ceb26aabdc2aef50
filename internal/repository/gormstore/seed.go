package gormstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"menyqr-app/internal/repository"
)

// Seed inserts f. Rows that already exist are skipped, so seeding twice
// is harmless and never resets a tier billing has changed.
func (s *Store) Seed(ctx context.Context, f repository.Fixtures) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skip := tx.Clauses(clause.OnConflict{DoNothing: true})

		for i := range f.Users {
			if err := skip.Create(&f.Users[i]).Error; err != nil {
				return err
			}
		}
		for i := range f.Menus {
			if err := skip.Create(&f.Menus[i]).Error; err != nil {
				return err
			}
		}
		for i := range f.Totals {
			if err := skip.Create(&f.Totals[i]).Error; err != nil {
				return err
			}
		}
		for i := range f.DailyViews {
			if err := skip.Create(&f.DailyViews[i]).Error; err != nil {
				return err
			}
		}
		if len(f.ItemClicks) > 0 {
			var n int64
			if err := tx.Model(&f.ItemClicks[0]).
				Where("restaurant_id = ?", f.ItemClicks[0].RestaurantID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				if err := tx.Create(&f.ItemClicks).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
