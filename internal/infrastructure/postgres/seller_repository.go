package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación de SellerRepository sobre PostgreSQL.
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

const sellerColumns = `id, name, email, phone, is_default, created_at`

// Create persiste un vendedor.
func (r *SellerRepo) Create(seller *entity.Seller) error {
	query := `
		INSERT INTO sellers (id, name, email, phone, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		seller.ID, seller.Name, nullIfEmpty(seller.Email), nullIfEmpty(seller.Phone),
		seller.IsDefault, seller.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// Upsert inserta o reemplaza por ID (restauración de backup).
func (r *SellerRepo) Upsert(seller *entity.Seller) error {
	query := `
		INSERT INTO sellers (id, name, email, phone, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			is_default = EXCLUDED.is_default`
	_, err := r.q.Exec(context.Background(), query,
		seller.ID, seller.Name, nullIfEmpty(seller.Email), nullIfEmpty(seller.Phone),
		seller.IsDefault, seller.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert seller: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID; nil si no existe.
func (r *SellerRepo) GetByID(id string) (*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1`
	var s entity.Seller
	var email, phone *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &email, &phone, &s.IsDefault, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller by id: %w", err)
	}
	s.Email, s.Phone = orEmpty(email), orEmpty(phone)
	return &s, nil
}

// List devuelve los vendedores, default primero y luego por nombre.
func (r *SellerRepo) List() ([]*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers ORDER BY is_default DESC, name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Seller
	for rows.Next() {
		var s entity.Seller
		var email, phone *string
		if err := rows.Scan(&s.ID, &s.Name, &email, &phone, &s.IsDefault, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		s.Email, s.Phone = orEmpty(email), orEmpty(phone)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza los datos del vendedor.
func (r *SellerRepo) Update(seller *entity.Seller) error {
	query := `
		UPDATE sellers SET name = $2, email = $3, phone = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		seller.ID, seller.Name, nullIfEmpty(seller.Email), nullIfEmpty(seller.Phone),
	)
	if err != nil {
		return fmt.Errorf("update seller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetDefault marca al vendedor y desmarca al resto en la misma operación.
func (r *SellerRepo) SetDefault(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `UPDATE sellers SET is_default = (id = $1)`, id); err != nil {
		return fmt.Errorf("set default seller: %w", err)
	}
	return nil
}

// Delete elimina un vendedor; sus facturas quedan con seller_id en NULL.
func (r *SellerRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `UPDATE invoices SET seller_id = NULL WHERE seller_id = $1`, id); err != nil {
		return fmt.Errorf("unlink invoices: %w", err)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
