package analytics

// DailyViews is the stored view count of one weekday.
type DailyViews struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	RestaurantID string `gorm:"not null;uniqueIndex:idx_daily_views_restaurant_day" json:"-"`
	Weekday      int    `gorm:"not null;uniqueIndex:idx_daily_views_restaurant_day" json:"-"` // 0 = Monday
	Day          string `gorm:"not null" json:"day"`
	Views        int    `gorm:"not null;default:0" json:"views"`
}

// ItemClicks is the stored click count of one dish.
type ItemClicks struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	RestaurantID string `gorm:"not null;index" json:"-"`
	Name         string `gorm:"not null" json:"name"`
	Clicks       int    `gorm:"not null;default:0" json:"clicks"`
}

// ViewTotal is the all-time view counter of a restaurant.
type ViewTotal struct {
	RestaurantID string `gorm:"primaryKey;type:varchar(128)"`
	Views        int    `gorm:"not null;default:0"`
}

// Snapshot is what the dashboard shows. Numbers are read as stored.
type Snapshot struct {
	TotalViews int          `json:"total_views"`
	ViewsByDay []DailyViews `json:"views_by_day"`
	TopItems   []ItemClicks `json:"top_items"`
}

// TopItemsLimit caps Snapshot.TopItems.
const TopItemsLimit = 5
