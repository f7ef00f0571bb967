package adminController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/auth"
	"github.com/Mrigankar1134/mascom-Server/config"
	"github.com/Mrigankar1134/mascom-Server/models"
	"github.com/Mrigankar1134/mascom-Server/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
}

func newTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.ProductImage{},
		&models.Size{}, &models.Color{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func newRouter(db *gorm.DB, payees config.Payees) *gin.Engine {
	r := gin.New()
	routes.SetupRoutes(r, db, payees)
	return r
}

func createAdmin(t *testing.T, db *gorm.DB) (models.User, string) {
	admin := models.User{
		Name:       "Sanat",
		RollNumber: "ADM" + uuid.NewString()[:8],
		Email:      uuid.NewString() + "@example.com",
		Password:   "secret",
		UserType:   models.UserTypeStaffs,
		IsAdmin:    true,
	}
	require.NoError(t, db.Create(&admin).Error)
	token, err := auth.IssueToken(admin)
	require.NoError(t, err)
	return admin, token
}

func createBuyer(t *testing.T, db *gorm.DB, name string) models.User {
	buyer := models.User{
		Name:       name,
		RollNumber: "MBA" + uuid.NewString()[:8],
		Email:      uuid.NewString() + "@example.com",
		Password:   "secret",
		UserType:   models.UserTypeTitans,
	}
	require.NoError(t, db.Create(&buyer).Error)
	return buyer
}

func createOrder(t *testing.T, db *gorm.DB, buyer models.User, paidTo string, status models.PaymentStatus) models.Order {
	order := models.Order{
		UserID:        buyer.ID,
		TotalPrice:    750,
		TransactionID: "TXN-" + uuid.NewString()[:8],
		ScreenshotURL: "/uploads/screenshots/x.png",
		PaidTo:        paidTo,
		PaymentStatus: status,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMyPaymentsFiltersByPayeeAndStatus(t *testing.T) {
	db := newTestDB(t)
	payees := config.Payees{17: "Sanat", 18: "Suraj"}
	r := newRouter(db, payees)
	_, token := createAdmin(t, db)
	buyer := createBuyer(t, db, "Asha Rao")

	pending := createOrder(t, db, buyer, "Sanat", models.PaymentVerificationPending)
	failed := createOrder(t, db, buyer, "Sanat", models.PaymentFailed)
	createOrder(t, db, buyer, "Sanat", models.PaymentSuccessful)
	createOrder(t, db, buyer, "Suraj", models.PaymentVerificationPending)

	w := doJSON(r, "GET", "/api/admin/my-payments?adminId=17", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rows []struct {
		ID            uint    `json:"id"`
		TotalPrice    float64 `json:"total_price"`
		ScreenshotURL string  `json:"screenshot_url"`
		TransactionID string  `json:"transaction_id"`
		BuyerName     string  `json:"buyer_name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)

	ids := []uint{rows[0].ID, rows[1].ID}
	assert.ElementsMatch(t, []uint{pending.ID, failed.ID}, ids)
	for _, row := range rows {
		assert.Equal(t, "Asha Rao", row.BuyerName)
		assert.Equal(t, 750.0, row.TotalPrice)
		assert.NotEmpty(t, row.ScreenshotURL)
		assert.NotEmpty(t, row.TransactionID)
	}
}

func TestMyPaymentsUnmappedAdminForbidden(t *testing.T) {
	db := newTestDB(t)
	// Admin 6 has been removed from the mapping; 99 never existed.
	payees := config.Payees{17: "Sanat"}
	r := newRouter(db, payees)
	_, token := createAdmin(t, db)

	w := doJSON(r, "GET", "/api/admin/my-payments?adminId=6", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, "GET", "/api/admin/my-payments?adminId=99", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyThenDeclineRejected(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, config.LoadPayees())
	_, token := createAdmin(t, db)
	buyer := createBuyer(t, db, "Asha Rao")
	order := createOrder(t, db, buyer, "Sanat", models.PaymentVerificationPending)

	w := doJSON(r, "POST", "/api/admin/verify-payment", token, map[string]uint{"orderId": order.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, "POST", "/api/admin/decline-payment", token, map[string]uint{"orderId": order.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	var persisted models.Order
	require.NoError(t, db.First(&persisted, order.ID).Error)
	assert.Equal(t, models.PaymentSuccessful, persisted.PaymentStatus)
}

func TestDeclinedOrderStaysInQueue(t *testing.T) {
	db := newTestDB(t)
	payees := config.Payees{17: "Sanat"}
	r := newRouter(db, payees)
	_, token := createAdmin(t, db)
	buyer := createBuyer(t, db, "Asha Rao")
	order := createOrder(t, db, buyer, "Sanat", models.PaymentVerificationPending)

	w := doJSON(r, "POST", "/api/admin/decline-payment", token, map[string]uint{"orderId": order.ID})
	require.Equal(t, http.StatusOK, w.Code)

	// Declined payments remain visible for re-review.
	w = doJSON(r, "GET", "/api/admin/my-payments?adminId=17", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, config.LoadPayees())
	_, token := createAdmin(t, db)

	w := doJSON(r, "POST", "/api/admin/verify-payment", token, map[string]uint{"orderId": 404})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, config.LoadPayees())
	buyer := createBuyer(t, db, "Asha Rao")
	token, err := auth.IssueToken(buyer)
	require.NoError(t, err)

	w := doJSON(r, "GET", "/api/admin/my-payments?adminId=17", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, "GET", "/api/admin/my-payments?adminId=17", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
