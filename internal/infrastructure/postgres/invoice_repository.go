package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
// Cabecera en invoices, líneas en invoice_products.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, ncf, invoice_date, client_id, seller_id,
	total_amount, rest_amount, rest_percentage, rest_commission, total_commission, created_at`

// Create persiste cabecera y líneas.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	ctx := context.Background()
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.NCF, invoice.InvoiceDate,
		nullIfEmpty(invoice.ClientID), nullIfEmpty(invoice.SellerID),
		invoice.TotalAmount, invoice.RestAmount, invoice.RestPercentage,
		invoice.RestCommission, invoice.TotalCommission, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return r.insertLines(ctx, invoice)
}

// Update reemplaza cabecera y líneas completas.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	ctx := context.Background()
	query := `
		UPDATE invoices SET ncf = $2, invoice_date = $3, client_id = $4, seller_id = $5,
			total_amount = $6, rest_amount = $7, rest_percentage = $8,
			rest_commission = $9, total_commission = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.NCF, invoice.InvoiceDate,
		nullIfEmpty(invoice.ClientID), nullIfEmpty(invoice.SellerID),
		invoice.TotalAmount, invoice.RestAmount, invoice.RestPercentage,
		invoice.RestCommission, invoice.TotalCommission,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM invoice_products WHERE invoice_id = $1`, invoice.ID); err != nil {
		return fmt.Errorf("delete invoice lines: %w", err)
	}
	return r.insertLines(ctx, invoice)
}

func (r *InvoiceRepo) insertLines(ctx context.Context, invoice *entity.Invoice) error {
	if len(invoice.Products) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO invoice_products (id, invoice_id, product_name, amount, percentage, commission)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, p := range invoice.Products {
		batch.Queue(query, p.ID, invoice.ID, p.ProductName, p.Amount, p.Percentage, p.Commission)
	}
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for range invoice.Products {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}
	return nil
}

// Delete elimina la factura y sus líneas.
func (r *InvoiceRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM invoice_products WHERE invoice_id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice lines: %w", err)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una factura con sus líneas; nil si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.getBy(`id = $1`, id)
}

// GetByNCF obtiene una factura por su NCF; nil si no existe.
func (r *InvoiceRepo) GetByNCF(ncf string) (*entity.Invoice, error) {
	return r.getBy(`ncf = $1`, ncf)
}

func (r *InvoiceRepo) getBy(cond string, arg any) (*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE ` + cond
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv == nil {
		return nil, nil
	}
	lines, err := r.linesFor(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Products = lines
	return inv, nil
}

// List devuelve todas las facturas con sus líneas, más reciente primero.
// Las líneas se cargan en una sola consulta y se cosen en memoria.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY invoice_date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	byID := map[string]*entity.Invoice{}
	for rows.Next() {
		inv, err := scanInvoiceRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
		byID[inv.ID] = inv
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	lineRows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, product_name, amount, percentage, commission
		FROM invoice_products ORDER BY invoice_id, id`)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer lineRows.Close()
	for lineRows.Next() {
		var p entity.InvoiceProduct
		if err := lineRows.Scan(&p.ID, &p.InvoiceID, &p.ProductName, &p.Amount, &p.Percentage, &p.Commission); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		if inv, ok := byID[p.InvoiceID]; ok {
			inv.Products = append(inv.Products, p)
		}
	}
	return list, lineRows.Err()
}

// UpdateProductPercentage reescribe porcentaje y comisión de una línea y el
// total de la cabecera. Dos statements sin transacción: es la unidad del
// rewrite masivo best-effort.
func (r *InvoiceRepo) UpdateProductPercentage(invoiceID, productName string, percentage, commission, totalCommission decimal.Decimal) error {
	ctx := context.Background()
	tag, err := r.q.Exec(ctx, `
		UPDATE invoice_products SET percentage = $3, commission = $4
		WHERE invoice_id = $1 AND product_name = $2`,
		invoiceID, productName, percentage, commission,
	)
	if err != nil {
		return fmt.Errorf("update invoice line percentage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `UPDATE invoices SET total_commission = $2 WHERE id = $1`, invoiceID, totalCommission); err != nil {
		return fmt.Errorf("update invoice total commission: %w", err)
	}
	return nil
}

// DeleteAll vacía facturas y líneas (restauración de backup).
func (r *InvoiceRepo) DeleteAll() error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM invoice_products`); err != nil {
		return fmt.Errorf("delete all invoice lines: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices`); err != nil {
		return fmt.Errorf("delete all invoices: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var clientID, sellerID *string
	err := row.Scan(
		&inv.ID, &inv.NCF, &inv.InvoiceDate, &clientID, &sellerID,
		&inv.TotalAmount, &inv.RestAmount, &inv.RestPercentage,
		&inv.RestCommission, &inv.TotalCommission, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	inv.ClientID, inv.SellerID = orEmpty(clientID), orEmpty(sellerID)
	return &inv, nil
}

func scanInvoiceRow(rows pgx.Rows) (*entity.Invoice, error) {
	var inv entity.Invoice
	var clientID, sellerID *string
	if err := rows.Scan(
		&inv.ID, &inv.NCF, &inv.InvoiceDate, &clientID, &sellerID,
		&inv.TotalAmount, &inv.RestAmount, &inv.RestPercentage,
		&inv.RestCommission, &inv.TotalCommission, &inv.CreatedAt,
	); err != nil {
		return nil, err
	}
	inv.ClientID, inv.SellerID = orEmpty(clientID), orEmpty(sellerID)
	return &inv, nil
}

func (r *InvoiceRepo) linesFor(ctx context.Context, invoiceID string) ([]entity.InvoiceProduct, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, product_name, amount, percentage, commission
		FROM invoice_products WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.InvoiceProduct
	for rows.Next() {
		var p entity.InvoiceProduct
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.ProductName, &p.Amount, &p.Percentage, &p.Commission); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		lines = append(lines, p)
	}
	return lines, rows.Err()
}
