package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	for _, it := range items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return ErrInvalidItem
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, customer_name, customer_email, customer_phone,
			status, total, shipping_address, payment_intent_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW())
		RETURNING id, created_at
	`, o.CustomerID, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.Status, o.Total.String(), o.ShippingAddress, o.PaymentIntentID).
		Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].OrderID = o.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, name, price, quantity)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING id
		`, items[i].OrderID, items[i].ProductID, items[i].Name, items[i].Price.String(), items[i].Quantity).
			Scan(&items[i].ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func scanOrder(row pgx.Row) (*Order, error) {
	var (
		o     Order
		total string
	)
	if err := row.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.Status, &total, &o.ShippingAddress, &o.PaymentIntentID, &o.CreatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(total)
	if err != nil {
		return nil, err
	}
	o.Total = d
	return &o, nil
}

const orderCols = `id, customer_id, customer_name, customer_email, customer_phone,
	status, total::text, shipping_address, payment_intent_id, created_at`

func (r *PGRepo) GetByID(ctx context.Context, id int) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (r *PGRepo) ItemsByOrder(ctx context.Context, orderID int) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, name, price::text, quantity
		FROM order_items WHERE order_id=$1 ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Item{}
	for rows.Next() {
		var (
			it    Item
			price string
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &price, &it.Quantity); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		it.Price = d
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PGRepo) SetPaymentIntent(ctx context.Context, id int, intentID string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders SET payment_intent_id=$2 WHERE id=$1
		RETURNING `+orderCols+`
	`, id, intentID))
	if err != nil {
		return nil, ErrNotFound
	}
	return o, nil
}
