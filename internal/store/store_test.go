package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.InitSchema())
	t.Cleanup(func() { s.Close() })
	return s
}

func newProduct(name string, price float64, categoryID int) *models.Product {
	return &models.Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		Brand:      "Test Brand",
		InStock:    true,
		StockCount: 10,
		Tags:       []string{"test"},
	}
}

func TestProductCRUD(t *testing.T) {
	s := newTestStore(t)

	p := newProduct("Fresh Organic Bananas", 2.99, 1)
	p.OriginalPrice = 3.49
	p.Features = []string{"Organic", "Non-GMO"}
	require.NoError(t, s.CreateProduct(p))
	require.NotZero(t, p.ID)

	got, err := s.GetProductByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Organic Bananas", got.Name)
	assert.Equal(t, 2.99, got.Price)
	assert.Equal(t, 3.49, got.OriginalPrice)
	assert.Equal(t, []string{"Organic", "Non-GMO"}, got.Features)
	assert.Equal(t, []string{"test"}, got.Tags)
	assert.True(t, got.IsActive)

	got.Price = 2.49
	got.StockCount = 5
	require.NoError(t, s.UpdateProduct(got))
	updated, err := s.GetProductByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.49, updated.Price)
	assert.Equal(t, 5, updated.StockCount)

	require.NoError(t, s.SetProductImage(p.ID, "/static/uploads/abc.jpg"))
	withImage, err := s.GetProductByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/abc.jpg", withImage.Image)

	_, err = s.GetProductByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.UpdateProduct(&models.Product{ID: 9999, Name: "x"}), ErrNotFound)
}

func TestProductSoftDelete(t *testing.T) {
	s := newTestStore(t)

	p := newProduct("Whole Grain Bread", 4.99, 5)
	require.NoError(t, s.CreateProduct(p))
	require.NoError(t, s.DeleteProduct(p.ID))

	// Row survives for order history.
	got, err := s.GetProductByID(p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// Active listing excludes it, the admin listing keeps it.
	active, total, err := s.ListProducts(ProductListQuery{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, active)
	assert.Zero(t, total)

	all, total, err := s.ListProducts(ProductListQuery{Limit: 10, IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, 1, total)
}

func TestListProductsFilters(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateProduct(newProduct("Fresh Organic Bananas", 2.99, 1)))
	require.NoError(t, s.CreateProduct(newProduct("Organic Spinach", 2.49, 2)))
	require.NoError(t, s.CreateProduct(newProduct("Whole Grain Bread", 4.99, 5)))

	byCategory, total, err := s.ListProducts(ProductListQuery{CategoryID: 2, Limit: 10})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Organic Spinach", byCategory[0].Name)

	bySearch, total, err := s.ListProducts(ProductListQuery{Search: "organic", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, bySearch, 2)
	assert.Equal(t, 2, total)

	paged, total, err := s.ListProducts(ProductListQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, paged, 2)
	assert.Equal(t, 3, total)

	rest, _, err := s.ListProducts(ProductListQuery{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestCategoryCRUDAndCounts(t *testing.T) {
	s := newTestStore(t)

	c := &models.Category{Name: "Fruits", Icon: "🍎", Color: "bg-red-100"}
	require.NoError(t, s.CreateCategory(c))
	require.NotZero(t, c.ID)

	require.NoError(t, s.CreateProduct(newProduct("Bananas", 2.99, c.ID)))
	require.NoError(t, s.CreateProduct(newProduct("Apples", 4.99, c.ID)))

	inactive := newProduct("Old Melon", 1.99, c.ID)
	require.NoError(t, s.CreateProduct(inactive))
	require.NoError(t, s.DeleteProduct(inactive.ID))

	got, err := s.GetCategoryByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ProductCount, "soft-deleted products do not count")

	list, err := s.ListCategories(false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ProductCount)

	got.Name = "Fresh Fruits"
	require.NoError(t, s.UpdateCategory(got))
	renamed, err := s.GetCategoryByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Fruits", renamed.Name)

	require.NoError(t, s.DeleteCategory(c.ID))
	list, err = s.ListCategories(false)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func sampleOrder() *models.Order {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.Order{
		ID:     uuid.New().String(),
		Ref:    "ORD-TEST01",
		UserID: "user-1",
		Items: []models.CartItem{
			{ProductID: 1, Name: "Fresh Organic Apples", Price: 4.99, Quantity: 2, InStock: true, MaxQuantity: 10},
			{ProductID: 2, Name: "Organic Milk", Price: 3.49, Quantity: 1, InStock: true, MaxQuantity: 5},
		},
		Subtotal:    13.47,
		Tax:         1.08,
		DeliveryFee: 4.99,
		Total:       19.54,
		DeliveryAddress: models.Address{
			Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62704",
		},
		PaymentMethod:  "pm_card_visa",
		DeliveryOption: "standard",
		Status:         models.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestOrderLifecycle(t *testing.T) {
	s := newTestStore(t)

	order := sampleOrder()
	require.NoError(t, s.CreateOrder(order))

	got, err := s.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Ref, got.Ref)
	assert.Equal(t, order.Total, got.Total)
	assert.Equal(t, models.OrderStatusPending, got.Status)
	assert.Equal(t, "Springfield", got.DeliveryAddress.City)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Fresh Organic Apples", got.Items[0].Name)
	assert.Equal(t, 2, got.Items[0].Quantity)

	require.NoError(t, s.UpdateOrderStatus(order.ID, models.OrderStatusConfirmed))
	confirmed, err := s.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, confirmed.Status)

	assert.Error(t, s.UpdateOrderStatus(order.ID, "shipped"), "status outside the enumeration")
	assert.ErrorIs(t, s.UpdateOrderStatus(uuid.New().String(), models.OrderStatusConfirmed), ErrNotFound)

	_, err = s.GetOrderByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrders(t *testing.T) {
	s := newTestStore(t)

	first := sampleOrder()
	require.NoError(t, s.CreateOrder(first))
	second := sampleOrder()
	second.ID = uuid.New().String()
	second.Ref = "ORD-TEST02"
	second.Status = models.OrderStatusDelivered
	require.NoError(t, s.CreateOrder(second))

	all, total, err := s.ListOrders("", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 2, total)
	for _, o := range all {
		assert.NotEmpty(t, o.Items, "listing loads line items")
	}

	delivered, total, err := s.ListOrders(models.OrderStatusDelivered, 10, 0)
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "ORD-TEST02", delivered[0].Ref)

	count, err := s.CountOrders()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUsers(t *testing.T) {
	s := newTestStore(t)

	admin := &models.User{Name: "Admin", Email: "admin@example.com", Role: "admin", Password: "hash"}
	require.NoError(t, s.CreateUser(admin))
	customer := &models.User{Name: "Casey", Email: "casey@example.com", Role: "customer"}
	require.NoError(t, s.CreateUser(customer))

	got, err := s.GetUserByEmail("ADMIN@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, "hash", got.Password)

	_, err = s.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	customers, total, err := s.ListCustomers(10, 0)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "casey@example.com", customers[0].Email)
}

func TestPayments(t *testing.T) {
	s := newTestStore(t)

	order := sampleOrder()
	require.NoError(t, s.CreateOrder(order))

	p := &models.Payment{
		ID: uuid.New().String(), OrderID: order.ID, IntentID: "pi_123",
		Amount: order.Total, Currency: "usd", Status: models.PaymentStatusSucceeded,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.RecordPayment(p))

	payments, total, err := s.ListPayments(10, 0)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, order.ID, payments[0].OrderID)
	assert.Equal(t, models.PaymentStatusSucceeded, payments[0].Status)
}

func TestDashboardStats(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateProduct(newProduct("Bananas", 2.99, 1)))
	require.NoError(t, s.CreateUser(&models.User{Name: "Casey", Email: "casey@example.com", Role: "customer"}))

	order := sampleOrder()
	require.NoError(t, s.CreateOrder(order))
	cancelled := sampleOrder()
	cancelled.ID = uuid.New().String()
	cancelled.Status = models.OrderStatusCancelled
	require.NoError(t, s.CreateOrder(cancelled))

	stats, err := s.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, order.Total, stats.Revenue, "cancelled orders excluded from revenue")
	assert.Equal(t, 1, stats.OrdersByStatus["pending"])
	assert.Equal(t, 1, stats.OrdersByStatus["cancelled"])
	assert.NotEmpty(t, stats.TopProducts)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Seed())
	products, firstTotal, err := s.ListProducts(ProductListQuery{Limit: 100})
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	require.NoError(t, s.Seed())
	_, secondTotal, err := s.ListProducts(ProductListQuery{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, firstTotal, secondTotal)
}
