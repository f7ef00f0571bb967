package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/apperrors"
	productcontroller "github.com/Mrigankar1134/mascom-Server/controllers/product"
	"github.com/Mrigankar1134/mascom-Server/models"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID  uint    `json:"product_id" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Size       string  `json:"size"`
	Color      string  `json:"color"`
	CustomName string  `json:"custom_name"`
	Price      float64 `json:"price"`
}

type CreateOrderRequest struct {
	TotalPrice    float64          `json:"total_price" binding:"required"`
	TransactionID string           `json:"transaction_id" binding:"required"`
	ScreenshotURL string           `json:"screenshot_url"`
	PaidTo        string           `json:"paid_to" binding:"required"`
	OrderItems    []OrderItemInput `json:"order_items" binding:"required"`
}

// -------- Core Logic --------

// CreateOrder writes the order header and all its line items as one
// transaction, so a failed item insert never leaves a partial order.
//
// TotalPrice and the per-item prices are stored exactly as submitted by
// the client; the catalog is consulted only to confirm the products exist.
// Size/color strings that don't match a lookup row are stored as NULL
// rather than rejected, matching the checkout flow where unset variants
// arrive as free text.
func CreateOrder(db *gorm.DB, userID uint, req CreateOrderRequest) (*models.Order, error) {
	if len(req.OrderItems) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", apperrors.ErrValidation)
	}
	for _, item := range req.OrderItems {
		if len(item.CustomName) > models.MaxCustomNameLen {
			return nil, fmt.Errorf("%w: custom_name exceeds %d characters", apperrors.ErrValidation, models.MaxCustomNameLen)
		}
	}

	order := models.Order{
		UserID:        userID,
		TotalPrice:    req.TotalPrice,
		TransactionID: req.TransactionID,
		ScreenshotURL: req.ScreenshotURL,
		PaidTo:        req.PaidTo,
		PaymentStatus: models.PaymentVerificationPending,
		CreatedAt:     time.Now().In(models.IST),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, input := range req.OrderItems {
			var product models.Product
			if err := tx.First(&product, input.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, input.ProductID)
				}
				return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID:  input.ProductID,
				Quantity:   input.Quantity,
				SizeID:     productcontroller.ResolveSizeID(tx, input.Size),
				ColorID:    productcontroller.ResolveColorID(tx, input.Color),
				CustomName: input.CustomName,
				Price:      input.Price,
			})
		}

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetPaymentStatus moves an order out of Verification Pending. The guard
// is part of the UPDATE itself, so two admins racing on the same order can
// never both land a terminal state.
func SetPaymentStatus(db *gorm.DB, orderID uint, status models.PaymentStatus) error {
	if status != models.PaymentSuccessful && status != models.PaymentFailed {
		return fmt.Errorf("%w: invalid payment status %q", apperrors.ErrValidation, status)
	}

	result := db.Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", orderID, models.PaymentVerificationPending).
		Update("payment_status", status)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		if count == 0 {
			return fmt.Errorf("%w: order %d", apperrors.ErrNotFound, orderID)
		}
		return fmt.Errorf("%w: order %d is no longer pending verification", apperrors.ErrInvalidState, orderID)
	}
	return nil
}

// -------- Handlers --------

// POST /api/order
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := CreateOrder(db, c.GetUint("user_id"), req)
		if err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		notifyOrderEvent("order_created", *order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created successfully",
			"orderId": order.ID,
		})
	}
}

type orderItemView struct {
	ItemID          uint     `json:"item_id"`
	ProductID       uint     `json:"product_id"`
	ProductName     string   `json:"product_name"`
	Quantity        int      `json:"quantity"`
	SizeID          *uint    `json:"size_id"`
	ColorID         *uint    `json:"color_id"`
	Size            string   `json:"size"`
	Color           string   `json:"color"`
	CustomName      string   `json:"custom_name"`
	Price           float64  `json:"price"`
	AvailableSizes  []string `json:"available_sizes"`
	AvailableColors []string `json:"available_colors"`
}

type orderView struct {
	models.Order
	Items []orderItemView `json:"items"`
}

// GetUserOrdersHandler returns the caller's orders with each item joined
// to its size/color names plus the product's declared variant sets, so
// the variant editor knows what it may offer.
// GET /api/user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user orders"})
			return
		}
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No orders found for this user"})
			return
		}

		views := make([]orderView, 0, len(orders))
		for _, order := range orders {
			view := orderView{Order: order, Items: []orderItemView{}}
			view.Order.Items = nil
			for _, item := range order.Items {
				itemView := orderItemView{
					ItemID:     item.ID,
					ProductID:  item.ProductID,
					Quantity:   item.Quantity,
					SizeID:     item.SizeID,
					ColorID:    item.ColorID,
					CustomName: item.CustomName,
					Price:      item.Price,
				}

				var product models.Product
				if err := db.First(&product, item.ProductID).Error; err == nil {
					itemView.ProductName = product.Name
				}
				if item.SizeID != nil {
					var size models.Size
					if err := db.First(&size, *item.SizeID).Error; err == nil {
						itemView.Size = size.Size
					}
				}
				if item.ColorID != nil {
					var color models.Color
					if err := db.First(&color, *item.ColorID).Error; err == nil {
						itemView.Color = color.Color
					}
				}

				sizes, colors, err := productcontroller.ListAvailableVariants(db, item.ProductID)
				if err == nil {
					itemView.AvailableSizes = sizes
					itemView.AvailableColors = colors
				} else {
					itemView.AvailableSizes = []string{}
					itemView.AvailableColors = []string{}
				}

				view.Items = append(view.Items, itemView)
			}
			views = append(views, view)
		}

		c.JSON(http.StatusOK, gin.H{"orders": views})
	}
}
