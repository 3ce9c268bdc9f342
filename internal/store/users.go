package store

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

// CreateUser records a user. Admins carry a bcrypt hash; customer records
// created from order flows carry an empty password.
func (s *Store) CreateUser(u *models.User) error {
	query := `
		INSERT INTO users (name, email, phone, role, password, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	res, err := s.DB.Exec(query, u.Name, u.Email, u.Phone, u.Role, u.Password)
	if err != nil {
		return errors.Wrap(err, "insert user")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "user id")
	}
	u.ID = int(id)
	return nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	query := `SELECT id, COALESCE(name, ''), email, COALESCE(phone, ''), role, password, created_at
		FROM users WHERE LOWER(email) = LOWER(?)`
	var u models.User
	err := s.DB.QueryRow(query, email).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Password, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	return &u, nil
}

// ListCustomers pages through non-admin users, newest first.
func (s *Store) ListCustomers(limit, offset int) ([]models.User, int, error) {
	var total int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE role != 'admin'`).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count customers")
	}

	rows, err := s.DB.Query(`
		SELECT id, COALESCE(name, ''), email, COALESCE(phone, ''), role, created_at
		FROM users WHERE role != 'admin'
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list customers")
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.CreatedAt); err != nil {
			return nil, 0, errors.Wrap(err, "scan customer")
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}
