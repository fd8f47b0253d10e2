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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, phone, email, address, notes, created_at`

// Create persiste un cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, phone, email, address, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, nullIfEmpty(client.Phone), nullIfEmpty(client.Email),
		nullIfEmpty(client.Address), nullIfEmpty(client.Notes), client.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// CreateMany inserta un lote de clientes (importación CSV) en un batch.
func (r *ClientRepo) CreateMany(clients []*entity.Client) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO clients (id, name, phone, email, address, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, c := range clients {
		batch.Queue(query,
			c.ID, c.Name, nullIfEmpty(c.Phone), nullIfEmpty(c.Email),
			nullIfEmpty(c.Address), nullIfEmpty(c.Notes), c.CreatedAt,
		)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()
	for range clients {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert clients: %w", err)
		}
	}
	return nil
}

// Upsert inserta o reemplaza por ID (restauración de backup).
func (r *ClientRepo) Upsert(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, phone, email, address, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			notes = EXCLUDED.notes`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, nullIfEmpty(client.Phone), nullIfEmpty(client.Email),
		nullIfEmpty(client.Address), nullIfEmpty(client.Notes), client.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get client by id: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes ordenados por nombre.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		c, err := scanClientRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, phone = $3, email = $4, address = $5, notes = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, nullIfEmpty(client.Phone), nullIfEmpty(client.Email),
		nullIfEmpty(client.Address), nullIfEmpty(client.Notes),
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente; sus facturas quedan con client_id en NULL.
func (r *ClientRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `UPDATE invoices SET client_id = NULL WHERE client_id = $1`, id); err != nil {
		return fmt.Errorf("unlink invoices: %w", err)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll vacía la tabla (restauración de backup).
func (r *ClientRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM clients`); err != nil {
		return fmt.Errorf("delete all clients: %w", err)
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var phone, email, address, notes *string
	err := row.Scan(&c.ID, &c.Name, &phone, &email, &address, &notes, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c.Phone, c.Email, c.Address, c.Notes = orEmpty(phone), orEmpty(email), orEmpty(address), orEmpty(notes)
	return &c, nil
}

func scanClientRow(rows pgx.Rows) (*entity.Client, error) {
	var c entity.Client
	var phone, email, address, notes *string
	if err := rows.Scan(&c.ID, &c.Name, &phone, &email, &address, &notes, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Phone, c.Email, c.Address, c.Notes = orEmpty(phone), orEmpty(email), orEmpty(address), orEmpty(notes)
	return &c, nil
}
