package store

import (
	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

func (s *Store) RecordPayment(p *models.Payment) error {
	query := `
		INSERT INTO payments (id, order_id, intent_id, amount, currency, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.DB.Exec(query, p.ID, p.OrderID, p.IntentID, p.Amount, p.Currency, string(p.Status), p.CreatedAt)
	return errors.Wrap(err, "insert payment")
}

// ListPayments pages through recorded payments, newest first.
func (s *Store) ListPayments(limit, offset int) ([]models.Payment, int, error) {
	var total int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM payments`).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count payments")
	}

	rows, err := s.DB.Query(`
		SELECT id, order_id, COALESCE(intent_id, ''), amount, currency, status, created_at
		FROM payments ORDER BY created_at DESC LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list payments")
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		var status string
		if err := rows.Scan(&p.ID, &p.OrderID, &p.IntentID, &p.Amount, &p.Currency, &status, &p.CreatedAt); err != nil {
			return nil, 0, errors.Wrap(err, "scan payment")
		}
		p.Status = models.PaymentStatus(status)
		payments = append(payments, p)
	}
	return payments, total, rows.Err()
}
