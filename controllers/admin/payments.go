package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/apperrors"
	"github.com/Mrigankar1134/mascom-Server/config"
	orderControllers "github.com/Mrigankar1134/mascom-Server/controllers/order"
	"github.com/Mrigankar1134/mascom-Server/models"
)

type PaymentRow struct {
	ID            uint                 `json:"id"`
	TotalPrice    float64              `json:"total_price"`
	ScreenshotURL string               `json:"screenshot_url"`
	TransactionID string               `json:"transaction_id"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	BuyerName     string               `json:"buyer_name"`
}

// MyPaymentsHandler lists the payments addressed to the calling admin's
// payee name. Failed payments stay visible so a buyer who resubmits a
// corrected transaction reference can be re-reviewed.
// GET /api/admin/my-payments?adminId=
func MyPaymentsHandler(db *gorm.DB, payees config.Payees) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, err := strconv.ParseUint(c.Query("adminId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
			return
		}

		payeeName, ok := payees[uint(adminID)]
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
			return
		}

		var rows []PaymentRow
		err = db.Table("orders").
			Select("orders.id, orders.total_price, orders.screenshot_url, orders.transaction_id, orders.payment_status, users.name AS buyer_name").
			Joins("JOIN users ON users.id = orders.user_id").
			Where("orders.paid_to = ? AND orders.payment_status IN ?", payeeName,
				[]models.PaymentStatus{models.PaymentVerificationPending, models.PaymentFailed}).
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		if rows == nil {
			rows = []PaymentRow{}
		}

		c.JSON(http.StatusOK, rows)
	}
}

type PaymentActionRequest struct {
	OrderID uint `json:"orderId" binding:"required"`
}

func setStatusHandler(db *gorm.DB, status models.PaymentStatus, okMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId is required"})
			return
		}

		if err := orderControllers.SetPaymentStatus(db, req.OrderID, status); err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, req.OrderID).Error; err == nil {
			orderControllers.NotifyPaymentStatusChanged(order)
		}

		c.JSON(http.StatusOK, gin.H{"message": okMessage})
	}
}

// VerifyPaymentHandler marks a pending payment Successful.
// POST /api/admin/verify-payment
func VerifyPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return setStatusHandler(db, models.PaymentSuccessful, "Payment verified successfully")
}

// DeclinePaymentHandler marks a pending payment Failed.
// POST /api/admin/decline-payment
func DeclinePaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return setStatusHandler(db, models.PaymentFailed, "Payment declined successfully")
}
