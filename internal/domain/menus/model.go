package menus

import "time"

type Menu struct {
	ID           string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	RestaurantID string     `gorm:"not null;index" json:"restaurant_id"`
	Name         string     `gorm:"not null" json:"name"`
	Description  string     `json:"description"`
	Categories   []Category `gorm:"foreignKey:MenuID;references:ID;constraint:OnDelete:CASCADE;" json:"categories"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID        string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	MenuID    string `gorm:"not null;index" json:"menu_id"`
	Name      string `gorm:"not null" json:"name"`
	SortIndex int    `gorm:"not null;default:0" json:"sort_index"`
	Items     []Item `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE;" json:"items"`
}

type Item struct {
	ID          string   `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CategoryID  string   `gorm:"not null;index" json:"category_id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	PriceNOK    int      `gorm:"column:price_nok;not null" json:"price"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Allergens   []string `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"allergens"`
	SortIndex   int      `gorm:"not null;default:0" json:"sort_index"`
}

// ItemCount totals the items of every category.
func (m Menu) ItemCount() int {
	n := 0
	for _, c := range m.Categories {
		n += len(c.Items)
	}
	return n
}
