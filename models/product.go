package models

import "time"

type ProductStatus string

const (
	ProductStatusLive   ProductStatus = "live"
	ProductStatusHidden ProductStatus = "hidden"
)

type Product struct {
	ID               uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string        `gorm:"not null" json:"name"`
	Description      string        `json:"description"`
	Price            float64       `gorm:"not null" json:"price"`
	Category         string        `json:"category"`
	CustomizableName bool          `gorm:"default:false" json:"customizable_name"`
	SizeAvailable    bool          `gorm:"default:false" json:"size_available"`
	ColorAvailable   bool          `gorm:"default:false" json:"color_available"`
	Status           ProductStatus `gorm:"type:VARCHAR(10);default:'live'" json:"status"`
	// AvailableFor is a comma-separated list of user categories the
	// product is visible to (empty means everyone).
	AvailableFor string `json:"available_for"`

	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Sizes  []Size         `gorm:"many2many:product_sizes;" json:"sizes,omitempty"`
	Colors []Color        `gorm:"many2many:product_colors;" json:"colors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
}

// Size and Color are deduplicated lookup tables: one row per distinct
// string system-wide, attached to products through join tables.
type Size struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Size string `gorm:"uniqueIndex;not null" json:"size"`
}

type Color struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Color string `gorm:"uniqueIndex;not null" json:"color"`
}
