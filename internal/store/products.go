package store

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

// ProductListQuery narrows and pages a product listing.
type ProductListQuery struct {
	CategoryID      int
	Search          string
	IncludeInactive bool
	Limit           int
	Offset          int
}

const productColumns = `id, name, price, original_price, image, rating, review_count,
	category_id, COALESCE(category, '') as category, COALESCE(brand, '') as brand,
	in_stock, stock_count, COALESCE(description, '') as description,
	COALESCE(features, '') as features, COALESCE(tags, '') as tags,
	COALESCE(weight, '') as weight, COALESCE(origin, '') as origin,
	COALESCE(sku, '') as sku, is_active, created_at, updated_at`

func (s *Store) CreateProduct(p *models.Product) error {
	query := `
		INSERT INTO products (name, price, original_price, image, rating, review_count,
			category_id, category, brand, in_stock, stock_count, description,
			features, tags, weight, origin, sku, is_active,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	res, err := s.DB.Exec(query,
		p.Name, p.Price, p.OriginalPrice, p.Image, p.Rating, p.ReviewCount,
		p.CategoryID, p.Category, p.Brand, p.InStock, p.StockCount, p.Description,
		marshalList(p.Features), marshalList(p.Tags), p.Weight, p.Origin, p.SKU, true,
	)
	if err != nil {
		return errors.Wrap(err, "insert product")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "product id")
	}
	p.ID = int(id)
	p.IsActive = true
	return nil
}

func (s *Store) GetProductByID(id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	p, err := scanProduct(s.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	return p, nil
}

func (s *Store) UpdateProduct(p *models.Product) error {
	query := `
		UPDATE products
		SET name = ?, price = ?, original_price = ?, rating = ?, review_count = ?,
			category_id = ?, category = ?, brand = ?, in_stock = ?, stock_count = ?,
			description = ?, features = ?, tags = ?, weight = ?, origin = ?, sku = ?,
			is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	res, err := s.DB.Exec(query,
		p.Name, p.Price, p.OriginalPrice, p.Rating, p.ReviewCount,
		p.CategoryID, p.Category, p.Brand, p.InStock, p.StockCount,
		p.Description, marshalList(p.Features), marshalList(p.Tags),
		p.Weight, p.Origin, p.SKU, p.IsActive, p.ID,
	)
	if err != nil {
		return errors.Wrap(err, "update product")
	}
	return requireRows(res)
}

func (s *Store) SetProductImage(id int, imageURL string) error {
	res, err := s.DB.Exec(`UPDATE products SET image = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, imageURL, id)
	if err != nil {
		return errors.Wrap(err, "set product image")
	}
	return requireRows(res)
}

// DeleteProduct soft-deletes: the row stays for order history, the
// storefront stops listing it.
func (s *Store) DeleteProduct(id int) error {
	res, err := s.DB.Exec(`UPDATE products SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	return requireRows(res)
}

func (s *Store) ListProducts(q ProductListQuery) ([]models.Product, int, error) {
	where := []string{"1=1"}
	var args []interface{}

	if !q.IncludeInactive {
		where = append(where, "is_active = 1")
	}
	if q.CategoryID != 0 {
		where = append(where, "category_id = ?")
		args = append(args, q.CategoryID)
	}
	if q.Search != "" {
		where = append(where, "(name LIKE ? OR description LIKE ?)")
		pattern := "%" + q.Search + "%"
		args = append(args, pattern, pattern)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM products WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count products")
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + cond + ` ORDER BY created_at DESC, id DESC`
	if q.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, q.Limit, q.Offset)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list products")
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, errors.Wrap(err, "scan product")
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var features, tags string
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Image, &p.Rating,
		&p.ReviewCount, &p.CategoryID, &p.Category, &p.Brand, &p.InStock, &p.StockCount,
		&p.Description, &features, &tags, &p.Weight, &p.Origin, &p.SKU, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Features = unmarshalList(features)
	p.Tags = unmarshalList(tags)
	return &p, nil
}

func marshalList(list []string) string {
	if len(list) == 0 {
		return ""
	}
	b, err := json.Marshal(list)
	if err != nil {
		return ""
	}
	return string(b)
}

func unmarshalList(raw string) []string {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}

func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
