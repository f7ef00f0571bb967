package productcontroller_test

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
	productcontroller "github.com/Mrigankar1134/mascom-Server/controllers/product"
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

func newRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	routes.SetupRoutes(r, db, config.LoadPayees())
	return r
}

func tokenFor(t *testing.T, db *gorm.DB, userType string, isAdmin bool) string {
	user := models.User{
		Name:       "Test User",
		RollNumber: "RN" + uuid.NewString()[:8],
		Email:      uuid.NewString() + "@example.com",
		Password:   "secret",
		UserType:   userType,
		IsAdmin:    isAdmin,
	}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.IssueToken(user)
	require.NoError(t, err)
	return token
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

func TestAddSizesInsertOrReuse(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	token := tokenFor(t, db, models.UserTypeStaffs, true)

	product := models.Product{Name: "Jersey", Price: 600, SizeAvailable: true}
	require.NoError(t, db.Create(&product).Error)

	path := fmt.Sprintf("/api/admin/products/%d/sizes", product.ID)
	w := doJSON(r, "POST", path, token, map[string][]string{"sizes": {"M", "L"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Posting the same strings again must not create new lookup rows.
	w = doJSON(r, "POST", path, token, map[string][]string{"sizes": {"M"}})
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.Size{}).Where("size = ?", "M").Count(&count)
	assert.Equal(t, int64(1), count)

	w = doJSON(r, "GET", path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Sizes []string `json:"sizes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"M", "L"}, resp.Sizes)
}

func TestSizeSharedAcrossProducts(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	token := tokenFor(t, db, models.UserTypeStaffs, true)

	first := models.Product{Name: "Jersey", Price: 600}
	second := models.Product{Name: "Hoodie", Price: 900}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	for _, p := range []models.Product{first, second} {
		path := fmt.Sprintf("/api/admin/products/%d/sizes", p.ID)
		w := doJSON(r, "POST", path, token, map[string][]string{"sizes": {"XL"}})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// One row system-wide, two join entries.
	var count int64
	db.Model(&models.Size{}).Where("size = ?", "XL").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestResolveVariantIDs(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Size{Size: "M"}).Error)

	id := productcontroller.ResolveSizeID(db, "M")
	require.NotNil(t, id)

	assert.Nil(t, productcontroller.ResolveSizeID(db, "XXL"))
	assert.Nil(t, productcontroller.ResolveSizeID(db, ""))
	assert.Nil(t, productcontroller.ResolveColorID(db, "Chartreuse"))
}

func TestCatalogVisibilityByUserType(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	titansOnly := models.Product{Name: "Titans Tee", Price: 500, Status: models.ProductStatusLive, AvailableFor: "Titans"}
	everyone := models.Product{Name: "Campus Mug", Price: 300, Status: models.ProductStatusLive}
	hidden := models.Product{Name: "Old Stock", Price: 100, Status: models.ProductStatusHidden}
	require.NoError(t, db.Create(&titansOnly).Error)
	require.NoError(t, db.Create(&everyone).Error)
	require.NoError(t, db.Create(&hidden).Error)

	listNames := func(token string) []string {
		w := doJSON(r, "GET", "/api/products", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp struct {
			Products []struct {
				Name string `json:"name"`
			} `json:"products"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		names := make([]string, 0, len(resp.Products))
		for _, p := range resp.Products {
			names = append(names, p.Name)
		}
		return names
	}

	titansToken := tokenFor(t, db, models.UserTypeTitans, false)
	assert.ElementsMatch(t, []string{"Titans Tee", "Campus Mug"}, listNames(titansToken))

	nyxenToken := tokenFor(t, db, models.UserTypeNyxen, false)
	assert.ElementsMatch(t, []string{"Campus Mug"}, listNames(nyxenToken))
}

func TestProductStatusToggle(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	superToken := tokenFor(t, db, models.UserTypeStaffs, true)

	var superAdmin models.User
	require.NoError(t, db.Where("is_admin = ?", true).First(&superAdmin).Error)
	require.NoError(t, db.Model(&superAdmin).Update("super_admin", true).Error)
	superToken, err := authTokenWithSuper(db, superAdmin.ID)
	require.NoError(t, err)

	product := models.Product{Name: "Jersey", Price: 600, Status: models.ProductStatusLive}
	require.NoError(t, db.Create(&product).Error)

	path := fmt.Sprintf("/api/admin/products/%d/status", product.ID)
	w := doJSON(r, "PATCH", path, superToken, map[string]string{"status": "hidden"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var persisted models.Product
	require.NoError(t, db.First(&persisted, product.ID).Error)
	assert.Equal(t, models.ProductStatusHidden, persisted.Status)

	w = doJSON(r, "PATCH", path, superToken, map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusToggleRequiresSuperAdmin(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	adminToken := tokenFor(t, db, models.UserTypeStaffs, true)

	product := models.Product{Name: "Jersey", Price: 600}
	require.NoError(t, db.Create(&product).Error)

	path := fmt.Sprintf("/api/admin/products/%d/status", product.ID)
	w := doJSON(r, "PATCH", path, adminToken, map[string]string{"status": "hidden"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteProductCascades(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	superAdmin := models.User{
		Name: "Root", RollNumber: "RN" + uuid.NewString()[:8],
		Email: uuid.NewString() + "@example.com", Password: "secret",
		UserType: models.UserTypeStaffs, IsAdmin: true, SuperAdmin: true,
	}
	require.NoError(t, db.Create(&superAdmin).Error)
	token, err := auth.IssueToken(superAdmin)
	require.NoError(t, err)

	product := models.Product{
		Name:   "Jersey",
		Price:  600,
		Images: []models.ProductImage{{URL: "/uploads/products/a.png"}},
	}
	require.NoError(t, db.Create(&product).Error)
	var size models.Size
	require.NoError(t, db.Where(models.Size{Size: "M"}).FirstOrCreate(&size).Error)
	require.NoError(t, db.Model(&product).Association("Sizes").Append(&size))

	w := doJSON(r, "DELETE", fmt.Sprintf("/api/admin/products/%d", product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var products, images int64
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.ProductImage{}).Count(&images)
	assert.Zero(t, products)
	assert.Zero(t, images)

	// The lookup row survives; only the association is removed.
	var sizes int64
	db.Model(&models.Size{}).Count(&sizes)
	assert.Equal(t, int64(1), sizes)
}

func authTokenWithSuper(db *gorm.DB, userID uint) (string, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return "", err
	}
	return auth.IssueToken(user)
}
