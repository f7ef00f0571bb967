package models

import "time"

type PaymentStatus string

const (
	// Every new order starts here and waits for manual admin review.
	PaymentVerificationPending PaymentStatus = "Verification Pending"
	PaymentSuccessful          PaymentStatus = "Successful"
	PaymentFailed              PaymentStatus = "Failed"
)

// IST is the fixed offset all order timestamps are stored and compared in.
var IST = time.FixedZone("IST", 5*3600+30*60)

// MaxCustomNameLen caps buyer-supplied personalization text.
const MaxCustomNameLen = 50

type Order struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	// TotalPrice is stored as submitted by the client at checkout; the
	// per-item price copies are the authoritative record.
	TotalPrice    float64       `gorm:"not null" json:"total_price"`
	TransactionID string        `json:"transaction_id"`
	ScreenshotURL string        `json:"screenshot_url"`
	PaidTo        string        `json:"paid_to"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(30);default:'Verification Pending'" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint   `gorm:"index;not null" json:"order_id"`
	ProductID  uint   `gorm:"not null" json:"product_id"`
	Quantity   int    `gorm:"not null" json:"quantity"`
	SizeID     *uint  `json:"size_id"`
	ColorID    *uint  `json:"color_id"`
	CustomName string `gorm:"size:50" json:"custom_name"`
	// Price is the unit price at time of purchase, copied from the
	// checkout payload so later catalog changes never touch placed orders.
	Price float64 `gorm:"not null" json:"price"`
}
