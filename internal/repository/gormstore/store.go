// Package gormstore is the Postgres-backed repository.Store.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"menyqr-app/internal/domain/analytics"
	"menyqr-app/internal/domain/menus"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/users"
	"menyqr-app/internal/repository"
)

type Store struct {
	db *gorm.DB
}

var _ repository.Store = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

func bySortIndex(db *gorm.DB) *gorm.DB {
	return db.Order("sort_index ASC")
}

func (s *Store) GetUser(ctx context.Context, id string) (users.User, error) {
	var u users.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return users.User{}, notFound(err)
	}
	return u, nil
}

func (s *Store) ListMenus(ctx context.Context, restaurantID string) ([]menus.Menu, error) {
	list := make([]menus.Menu, 0)
	err := s.db.WithContext(ctx).
		Preload("Categories", bySortIndex).
		Preload("Categories.Items", bySortIndex).
		Where("restaurant_id = ?", restaurantID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) GetMenu(ctx context.Context, menuID string) (menus.Menu, error) {
	var m menus.Menu
	err := s.db.WithContext(ctx).
		Preload("Categories", bySortIndex).
		Preload("Categories.Items", bySortIndex).
		Where("id = ?", menuID).
		First(&m).Error
	if err != nil {
		return menus.Menu{}, notFound(err)
	}
	return m, nil
}

func (s *Store) GetAnalytics(ctx context.Context, restaurantID string) (analytics.Snapshot, error) {
	db := s.db.WithContext(ctx)
	snap := analytics.Snapshot{
		ViewsByDay: make([]analytics.DailyViews, 0),
		TopItems:   make([]analytics.ItemClicks, 0),
	}

	var total analytics.ViewTotal
	err := db.Where("restaurant_id = ?", restaurantID).Limit(1).Find(&total).Error
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("view totals: %w", err)
	}
	snap.TotalViews = total.Views

	if err := db.Where("restaurant_id = ?", restaurantID).
		Order("weekday ASC").
		Find(&snap.ViewsByDay).Error; err != nil {
		return analytics.Snapshot{}, fmt.Errorf("daily views: %w", err)
	}

	if err := db.Where("restaurant_id = ?", restaurantID).
		Order("clicks DESC").
		Limit(analytics.TopItemsLimit).
		Find(&snap.TopItems).Error; err != nil {
		return analytics.Snapshot{}, fmt.Errorf("item clicks: %w", err)
	}

	return snap, nil
}

// UpsertUser inserts with the free tier, or refreshes the profile columns
// of an existing row. The tier column is left alone on conflict.
func (s *Store) UpsertUser(ctx context.Context, u *users.User) error {
	if u.Tier == "" {
		u.Tier = plans.Freemium.Key()
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "email", "photo_url", "updated_at"}),
		}).
		Create(u).Error
}

func (s *Store) FindUserByStripeCustomer(ctx context.Context, customerID string) (users.User, error) {
	var u users.User
	if err := s.db.WithContext(ctx).Where("stripe_customer_id = ?", customerID).First(&u).Error; err != nil {
		return users.User{}, notFound(err)
	}
	return u, nil
}

func (s *Store) UpdateSubscription(ctx context.Context, userID string, upd repository.SubscriptionUpdate) error {
	updates := map[string]interface{}{
		"tier": upd.Tier.Key(),
	}
	if upd.StripeCustomerID != nil {
		updates["stripe_customer_id"] = *upd.StripeCustomerID
	}
	if upd.SubscriptionID != nil {
		updates["subscription_id"] = *upd.SubscriptionID
	}
	if upd.SubscriptionStatus != nil {
		updates["subscription_status"] = *upd.SubscriptionStatus
	}
	if upd.CurrentPeriodEnd != nil {
		updates["current_period_end"] = *upd.CurrentPeriodEnd
	}

	res := s.db.WithContext(ctx).
		Model(&users.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// LinkCustomer never writes the tier column; subscription events own it.
func (s *Store) LinkCustomer(ctx context.Context, userID, customerID string) error {
	res := s.db.WithContext(ctx).
		Model(&users.User{}).
		Where("id = ?", userID).
		Update("stripe_customer_id", customerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
