package store

import (
	"database/sql"

	"github.com/pkg/errors"
)

type DashboardStats struct {
	TotalProducts  int                 `json:"totalProducts"`
	TotalOrders    int                 `json:"totalOrders"`
	TotalCustomers int                 `json:"totalCustomers"`
	Revenue        float64             `json:"revenue"`
	OrdersByStatus map[string]int      `json:"ordersByStatus"`
	TopProducts    []ProductOrderCount `json:"topProducts"`
}

type ProductOrderCount struct {
	ProductID  int    `json:"productId"`
	Name       string `json:"name"`
	OrderCount int    `json:"orderCount"`
}

func (s *Store) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int),
	}

	err := s.DB.QueryRow(`SELECT COUNT(*) FROM products WHERE is_active = 1`).Scan(&stats.TotalProducts)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "count products")
	}

	err = s.DB.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&stats.TotalOrders)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "count orders")
	}

	err = s.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE role != 'admin'`).Scan(&stats.TotalCustomers)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "count customers")
	}

	// Cancelled orders do not count toward revenue.
	err = s.DB.QueryRow(`SELECT COALESCE(SUM(total), 0) FROM orders WHERE status != 'cancelled'`).Scan(&stats.Revenue)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "sum revenue")
	}

	rows, err := s.DB.Query(`SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, errors.Wrap(err, "orders by status")
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, errors.Wrap(err, "scan status count")
		}
		stats.OrdersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	productRows, err := s.DB.Query(`
		SELECT oi.product_id, oi.name, COUNT(DISTINCT oi.order_id) as order_count
		FROM order_items oi
		GROUP BY oi.product_id, oi.name
		ORDER BY order_count DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, errors.Wrap(err, "top products")
	}
	defer productRows.Close()
	for productRows.Next() {
		var poc ProductOrderCount
		if err := productRows.Scan(&poc.ProductID, &poc.Name, &poc.OrderCount); err != nil {
			return nil, errors.Wrap(err, "scan top product")
		}
		stats.TopProducts = append(stats.TopProducts, poc)
	}

	return stats, productRows.Err()
}
