package store

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

func (s *Store) CreateCategory(c *models.Category) error {
	query := `
		INSERT INTO categories (name, icon, color, description, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	res, err := s.DB.Exec(query, c.Name, c.Icon, c.Color, c.Description)
	if err != nil {
		return errors.Wrap(err, "insert category")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "category id")
	}
	c.ID = int(id)
	c.IsActive = true
	return nil
}

func (s *Store) GetCategoryByID(id int) (*models.Category, error) {
	query := `
		SELECT c.id, c.name, COALESCE(c.icon, ''), COALESCE(c.color, ''),
			COALESCE(c.description, ''), c.is_active, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id AND p.is_active = 1)
		FROM categories c WHERE c.id = ?
	`
	var c models.Category
	err := s.DB.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Icon, &c.Color,
		&c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.ProductCount)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get category")
	}
	return &c, nil
}

// ListCategories returns active categories with their derived product
// counts, oldest first.
func (s *Store) ListCategories(includeInactive bool) ([]models.Category, error) {
	query := `
		SELECT c.id, c.name, COALESCE(c.icon, ''), COALESCE(c.color, ''),
			COALESCE(c.description, ''), c.is_active, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id AND p.is_active = 1)
		FROM categories c
	`
	if !includeInactive {
		query += ` WHERE c.is_active = 1`
	}
	query += ` ORDER BY c.id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.Description,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.ProductCount); err != nil {
			return nil, errors.Wrap(err, "scan category")
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) UpdateCategory(c *models.Category) error {
	query := `
		UPDATE categories
		SET name = ?, icon = ?, color = ?, description = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	res, err := s.DB.Exec(query, c.Name, c.Icon, c.Color, c.Description, c.IsActive, c.ID)
	if err != nil {
		return errors.Wrap(err, "update category")
	}
	return requireRows(res)
}

func (s *Store) DeleteCategory(id int) error {
	res, err := s.DB.Exec(`UPDATE categories SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete category")
	}
	return requireRows(res)
}
