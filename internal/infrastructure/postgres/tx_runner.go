package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
)

var _ usecase.RestoreTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRestore inicia una transacción, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback. Lo usa la restauración de backup: o entra todo el
// snapshot o la base queda como estaba.
func (r *TxRunner) RunRestore(ctx context.Context, fn func(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	sellers repository.SellerRepository,
	settings repository.SettingsRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invoiceRepo := NewInvoiceRepository(tx)
	clientRepo := NewClientRepository(tx)
	productRepo := NewProductRepository(tx)
	sellerRepo := NewSellerRepository(tx)
	settingsRepo := NewSettingsRepository(tx)

	if err := fn(invoiceRepo, clientRepo, productRepo, sellerRepo, settingsRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
