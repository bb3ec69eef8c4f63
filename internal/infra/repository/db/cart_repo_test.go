package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CartRepoTestSuite struct {
	suite.Suite
	db       *gorm.DB
	cartRepo *CartRepo
	user     *model.User
	product  *model.Product
}

// SetupSuite 在測試套件開始前執行
func (suite *CartRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_shopcenter", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)

	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.cartRepo = NewCartRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *CartRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM carts")
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM brands")
	suite.db.Exec("DELETE FROM categories")
	suite.db.Exec("DELETE FROM users")

	suite.user = &model.User{
		Email:          "cart-test@example.com",
		HashedPassword: "x",
		UserName:       "cart-test",
		Role:           model.RoleCustomer,
	}
	require.NoError(suite.T(), suite.db.Create(suite.user).Error)

	brand := &model.Brand{Name: "TestBrand", Slug: "test-brand"}
	require.NoError(suite.T(), suite.db.Create(brand).Error)
	category := &model.Category{Name: "TestCategory", Slug: "test-category"}
	require.NoError(suite.T(), suite.db.Create(category).Error)

	suite.product = &model.Product{
		Name:        "Test Jacket",
		Description: "test",
		BrandID:     brand.BrandID,
		CategoryID:  category.CategoryID,
		Price:       decimal.NewFromFloat(49.90),
		IsAvailable: true,
		Slug:        "test-jacket",
	}
	require.NoError(suite.T(), suite.db.Create(suite.product).Error)
}

// TearDownSuite 在測試套件結束後執行
func (suite *CartRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *CartRepoTestSuite) TestGetOrCreateCart() {
	ctx := context.Background()

	cart, err := suite.cartRepo.GetOrCreateCart(ctx, suite.user.UserID)
	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), cart.CartID)

	// 再呼叫一次拿到同一台車
	again, err := suite.cartRepo.GetOrCreateCart(ctx, suite.user.UserID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), cart.CartID, again.CartID)
}

func (suite *CartRepoTestSuite) TestAddItemMergesQuantity() {
	ctx := context.Background()

	cart, err := suite.cartRepo.GetOrCreateCart(ctx, suite.user.UserID)
	require.NoError(suite.T(), err)

	item, err := suite.cartRepo.AddItem(ctx, cart.CartID, suite.product.ProductID, 2)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 2, item.Quantity)

	// 同商品再次加入合併數量
	item, err = suite.cartRepo.AddItem(ctx, cart.CartID, suite.product.ProductID, 3)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 5, item.Quantity)

	reloaded, err := suite.cartRepo.GetCartByUserID(ctx, suite.user.UserID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), reloaded.Items, 1)
	require.Equal(suite.T(), 5, reloaded.TotalItems())
}

func (suite *CartRepoTestSuite) TestUpdateItemQuantity() {
	ctx := context.Background()

	cart, err := suite.cartRepo.GetOrCreateCart(ctx, suite.user.UserID)
	require.NoError(suite.T(), err)

	item, err := suite.cartRepo.AddItem(ctx, cart.CartID, suite.product.ProductID, 2)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.cartRepo.UpdateItemQuantity(ctx, item.ItemID, 7))

	saved, err := suite.cartRepo.GetCartItem(ctx, cart.CartID, item.ItemID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 7, saved.Quantity)

	// 不存在的item回ErrRecordNotFound
	err = suite.cartRepo.UpdateItemQuantity(ctx, 99999, 1)
	require.ErrorIs(suite.T(), err, ErrRecordNotFound)
}

func (suite *CartRepoTestSuite) TestClearCart() {
	ctx := context.Background()

	cart, err := suite.cartRepo.GetOrCreateCart(ctx, suite.user.UserID)
	require.NoError(suite.T(), err)

	_, err = suite.cartRepo.AddItem(ctx, cart.CartID, suite.product.ProductID, 2)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.cartRepo.ClearCart(ctx, cart.CartID))

	reloaded, err := suite.cartRepo.GetCartByUserID(ctx, suite.user.UserID)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), reloaded.Items)
}

func TestCartRepoTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping db integration test")
	}
	suite.Run(t, new(CartRepoTestSuite))
}
