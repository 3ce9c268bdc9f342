package store

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

// CreateOrder persists an order and its line-item snapshot in one
// transaction.
func (s *Store) CreateOrder(order *models.Order) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, ref, user_id, subtotal, tax, delivery_fee, discount, total,
			street, city, state, zip_code, instructions,
			payment_method, delivery_option, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(query,
		order.ID, order.Ref, order.UserID, order.Subtotal, order.Tax, order.DeliveryFee,
		order.Discount, order.Total,
		order.DeliveryAddress.Street, order.DeliveryAddress.City, order.DeliveryAddress.State,
		order.DeliveryAddress.ZipCode, order.DeliveryAddress.Instructions,
		order.PaymentMethod, order.DeliveryOption, string(order.Status),
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, name, price, quantity, image, in_stock, max_quantity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, item := range order.Items {
		if _, err := tx.Exec(itemQuery, order.ID, item.ProductID, item.Name, item.Price,
			item.Quantity, item.Image, item.InStock, item.MaxQuantity); err != nil {
			return errors.Wrap(err, "insert order item")
		}
	}

	return errors.Wrap(tx.Commit(), "commit order")
}

const orderColumns = `id, ref, COALESCE(user_id, ''), subtotal, tax, delivery_fee, discount, total,
	COALESCE(street, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip_code, ''),
	COALESCE(instructions, ''), COALESCE(payment_method, ''), COALESCE(delivery_option, ''),
	status, created_at, updated_at`

func (s *Store) GetOrderByID(id string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	o, err := scanOrder(s.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get order")
	}
	if err := s.loadOrderItems(o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrders pages through orders newest first, optionally narrowed to one
// status.
func (s *Store) ListOrders(status models.OrderStatus, limit, offset int) ([]models.Order, int, error) {
	cond := "1=1"
	var args []interface{}
	if status != "" {
		cond = "status = ?"
		args = append(args, string(status))
	}

	var total int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM orders WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count orders")
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + cond + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list orders")
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, errors.Wrap(err, "scan order")
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		if err := s.loadOrderItems(&orders[i]); err != nil {
			return nil, 0, err
		}
	}
	return orders, total, nil
}

// UpdateOrderStatus applies an admin status transition with last-writer-wins
// semantics. The status must be one of the fixed enumeration.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return errors.Errorf("invalid order status %q", status)
	}
	res, err := s.DB.Exec(`UPDATE orders SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		string(status), id)
	if err != nil {
		return errors.Wrap(err, "update order status")
	}
	return requireRows(res)
}

func (s *Store) CountOrders() (int, error) {
	var count int
	err := s.DB.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, errors.Wrap(err, "count orders")
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var o models.Order
	var status string
	err := row.Scan(&o.ID, &o.Ref, &o.UserID, &o.Subtotal, &o.Tax, &o.DeliveryFee,
		&o.Discount, &o.Total,
		&o.DeliveryAddress.Street, &o.DeliveryAddress.City, &o.DeliveryAddress.State,
		&o.DeliveryAddress.ZipCode, &o.DeliveryAddress.Instructions,
		&o.PaymentMethod, &o.DeliveryOption, &status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Status = models.OrderStatus(status)
	return &o, nil
}

func (s *Store) loadOrderItems(o *models.Order) error {
	rows, err := s.DB.Query(`
		SELECT product_id, name, price, quantity, COALESCE(image, ''), in_stock, max_quantity
		FROM order_items WHERE order_id = ? ORDER BY rowid
	`, o.ID)
	if err != nil {
		return errors.Wrap(err, "load order items")
	}
	defer rows.Close()

	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity,
			&item.Image, &item.InStock, &item.MaxQuantity); err != nil {
			return errors.Wrap(err, "scan order item")
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}
