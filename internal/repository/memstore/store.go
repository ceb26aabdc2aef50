// Package memstore keeps accounts, menus and analytics in process memory.
// It is used when no database is configured and in tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"menyqr-app/internal/domain/analytics"
	"menyqr-app/internal/domain/menus"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/users"
	"menyqr-app/internal/repository"
)

type Store struct {
	mu         sync.RWMutex
	users      map[string]users.User
	menus      map[string]menus.Menu
	totals     map[string]int
	dailyViews map[string][]analytics.DailyViews
	itemClicks map[string][]analytics.ItemClicks
	now        func() time.Time
}

var _ repository.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:      map[string]users.User{},
		menus:      map[string]menus.Menu{},
		totals:     map[string]int{},
		dailyViews: map[string][]analytics.DailyViews{},
		itemClicks: map[string][]analytics.ItemClicks{},
		now:        time.Now,
	}
}

// NewSeeded returns a store loaded with f.
func NewSeeded(f repository.Fixtures) *Store {
	s := New()
	s.Load(f)
	return s
}

// Load replaces any row with the same key.
func (s *Store) Load(f repository.Fixtures) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range f.Users {
		s.users[u.ID] = u
	}
	for _, m := range f.Menus {
		s.menus[m.ID] = copyMenu(m)
	}
	for _, t := range f.Totals {
		s.totals[t.RestaurantID] = t.Views
	}
	for _, d := range f.DailyViews {
		s.dailyViews[d.RestaurantID] = append(s.dailyViews[d.RestaurantID], d)
	}
	for _, c := range f.ItemClicks {
		s.itemClicks[c.RestaurantID] = append(s.itemClicks[c.RestaurantID], c)
	}
}

func (s *Store) GetUser(ctx context.Context, id string) (users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return users.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *Store) ListMenus(ctx context.Context, restaurantID string) ([]menus.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]menus.Menu, 0)
	for _, m := range s.menus {
		if m.RestaurantID == restaurantID {
			out = append(out, copyMenu(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetMenu(ctx context.Context, menuID string) (menus.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.menus[menuID]
	if !ok {
		return menus.Menu{}, repository.ErrNotFound
	}
	return copyMenu(m), nil
}

func (s *Store) GetAnalytics(ctx context.Context, restaurantID string) (analytics.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := append([]analytics.DailyViews{}, s.dailyViews[restaurantID]...)
	sort.SliceStable(days, func(i, j int) bool { return days[i].Weekday < days[j].Weekday })

	items := append([]analytics.ItemClicks{}, s.itemClicks[restaurantID]...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Clicks > items[j].Clicks })
	if len(items) > analytics.TopItemsLimit {
		items = items[:analytics.TopItemsLimit]
	}

	return analytics.Snapshot{
		TotalViews: s.totals[restaurantID],
		ViewsByDay: days,
		TopItems:   items,
	}, nil
}

func (s *Store) UpsertUser(ctx context.Context, u *users.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	existing, ok := s.users[u.ID]
	if !ok {
		if u.Tier == "" {
			u.Tier = plans.Freemium.Key()
		}
		u.CreatedAt = now
		u.UpdatedAt = now
		s.users[u.ID] = *u
		return nil
	}

	existing.DisplayName = u.DisplayName
	existing.Email = u.Email
	existing.PhotoURL = u.PhotoURL
	existing.UpdatedAt = now
	s.users[u.ID] = existing
	*u = existing
	return nil
}

func (s *Store) FindUserByStripeCustomer(ctx context.Context, customerID string) (users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.StripeCustomerID != nil && *u.StripeCustomerID == customerID {
			return u, nil
		}
	}
	return users.User{}, repository.ErrNotFound
}

func (s *Store) UpdateSubscription(ctx context.Context, userID string, upd repository.SubscriptionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return repository.ErrNotFound
	}

	u.Tier = upd.Tier.Key()
	if upd.StripeCustomerID != nil {
		u.StripeCustomerID = upd.StripeCustomerID
	}
	if upd.SubscriptionID != nil {
		u.SubscriptionID = upd.SubscriptionID
	}
	if upd.SubscriptionStatus != nil {
		u.SubscriptionStatus = upd.SubscriptionStatus
	}
	if upd.CurrentPeriodEnd != nil {
		u.CurrentPeriodEnd = upd.CurrentPeriodEnd
	}
	u.UpdatedAt = s.now().UTC()
	s.users[userID] = u
	return nil
}

func (s *Store) LinkCustomer(ctx context.Context, userID, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.StripeCustomerID = &customerID
	u.UpdatedAt = s.now().UTC()
	s.users[userID] = u
	return nil
}

func copyMenu(m menus.Menu) menus.Menu {
	cats := make([]menus.Category, len(m.Categories))
	for i, c := range m.Categories {
		items := make([]menus.Item, len(c.Items))
		for j, it := range c.Items {
			it.Allergens = append([]string{}, it.Allergens...)
			items[j] = it
		}
		c.Items = items
		cats[i] = c
	}
	m.Categories = cats
	return m
}
