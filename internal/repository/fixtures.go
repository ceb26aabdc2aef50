package repository

import (
	"time"

	"menyqr-app/internal/domain/analytics"
	"menyqr-app/internal/domain/menus"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/users"
)

// Fixtures is the demo restaurant the site ships with.
type Fixtures struct {
	Users      []users.User
	Menus      []menus.Menu
	Totals     []analytics.ViewTotal
	DailyViews []analytics.DailyViews
	ItemClicks []analytics.ItemClicks
}

const DemoRestaurantID = "user-123"

func strPtr(s string) *string { return &s }

// DemoFixtures returns a fresh copy of the demo data on every call.
func DemoFixtures() Fixtures {
	updated := time.Date(2024, 11, 18, 9, 0, 0, 0, time.UTC)

	return Fixtures{
		Users: []users.User{{
			ID:          DemoRestaurantID,
			DisplayName: "Espresso House",
			Email:       "manager@espressohouse.no",
			PhotoURL:    strPtr("https://picsum.photos/seed/restaurant-logo/100/100"),
			Tier:        plans.Silver.Key(),
		}},
		Menus: []menus.Menu{
			{
				ID:           "menu-1",
				RestaurantID: DemoRestaurantID,
				Name:         "Vintermeny",
				Description:  "Varme drikker og deilige bakevarer for den kalde årstiden.",
				UpdatedAt:    updated.AddDate(0, 0, 2),
				Categories: []menus.Category{
					{
						ID: "cat-1", MenuID: "menu-1", Name: "Kaffe", SortIndex: 0,
						Items: []menus.Item{
							{ID: "item-1", CategoryID: "cat-1", Name: "Cappuccino", Description: "En klassisk italiensk kaffedrikk.", PriceNOK: 45, ImageURL: strPtr("https://picsum.photos/seed/coffee/400/300"), Allergens: []string{"Melk"}, SortIndex: 0},
							{ID: "item-2", CategoryID: "cat-1", Name: "Americano", Description: "Espresso med varmt vann.", PriceNOK: 38, Allergens: []string{}, SortIndex: 1},
						},
					},
					{
						ID: "cat-2", MenuID: "menu-1", Name: "Mat", SortIndex: 1,
						Items: []menus.Item{
							{ID: "item-3", CategoryID: "cat-2", Name: "Burger", Description: "Saftig burger med ost og bacon.", PriceNOK: 159, ImageURL: strPtr("https://picsum.photos/seed/burger/400/300"), Allergens: []string{"Gluten", "Melk", "Sennep"}, SortIndex: 0},
							{ID: "item-4", CategoryID: "cat-2", Name: "Salat", Description: "Frisk salat med kylling og avokado.", PriceNOK: 129, ImageURL: strPtr("https://picsum.photos/seed/salad/400/300"), Allergens: []string{"Sennep"}, SortIndex: 1},
						},
					},
				},
			},
			{
				ID:           "menu-2",
				RestaurantID: DemoRestaurantID,
				Name:         "Sommermeny",
				Description:  "Forfriskende drikker og lette retter.",
				UpdatedAt:    updated.AddDate(0, -1, 0),
				Categories: []menus.Category{
					{
						ID: "cat-3", MenuID: "menu-2", Name: "Drikke", SortIndex: 0,
						Items: []menus.Item{
							{ID: "item-5", CategoryID: "cat-3", Name: "Iskaffe", Description: "Kald og forfriskende.", PriceNOK: 52, Allergens: []string{"Melk"}, SortIndex: 0},
						},
					},
					{
						ID: "cat-4", MenuID: "menu-2", Name: "Søtt", SortIndex: 1,
						Items: []menus.Item{
							{ID: "item-6", CategoryID: "cat-4", Name: "Kanelbolle", Description: "Hjemmelaget og nystekt.", PriceNOK: 35, Allergens: []string{"Gluten", "Melk", "Egg"}, SortIndex: 0},
						},
					},
				},
			},
		},
		Totals: []analytics.ViewTotal{{RestaurantID: DemoRestaurantID, Views: 1489}},
		DailyViews: []analytics.DailyViews{
			{RestaurantID: DemoRestaurantID, Weekday: 0, Day: "Man", Views: 150},
			{RestaurantID: DemoRestaurantID, Weekday: 1, Day: "Tir", Views: 220},
			{RestaurantID: DemoRestaurantID, Weekday: 2, Day: "Ons", Views: 250},
			{RestaurantID: DemoRestaurantID, Weekday: 3, Day: "Tor", Views: 210},
			{RestaurantID: DemoRestaurantID, Weekday: 4, Day: "Fre", Views: 350},
			{RestaurantID: DemoRestaurantID, Weekday: 5, Day: "Lør", Views: 420},
			{RestaurantID: DemoRestaurantID, Weekday: 6, Day: "Søn", Views: 380},
		},
		ItemClicks: []analytics.ItemClicks{
			{RestaurantID: DemoRestaurantID, Name: "Cappuccino", Clicks: 540},
			{RestaurantID: DemoRestaurantID, Name: "Burger", Clicks: 410},
			{RestaurantID: DemoRestaurantID, Name: "Iskaffe", Clicks: 320},
			{RestaurantID: DemoRestaurantID, Name: "Salat", Clicks: 215},
		},
	}
}
