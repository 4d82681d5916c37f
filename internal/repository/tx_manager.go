package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type contextKey string

const txKey contextKey = "gorm_tx"

// TransactionManager manages database transactions via context injection.
// fn receives a context carrying the transaction; repositories pick it up through GetDB.
// Returning an error (or panicking) from fn rolls the whole unit back.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type transactionManager struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

// NewTransactionManager opens every unit with serializable isolation so that two
// permission replacements on the same key range cannot interleave.
func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &transactionManager{
		db:   db,
		opts: &sql.TxOptions{Isolation: sql.LevelSerializable},
	}
}

func (t *transactionManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	// Nested call: join the outer unit instead of opening a savepoint
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey, tx)
		return fn(txCtx)
	}, t.opts)
}

// GetDB extracts the transaction DB from context if present, otherwise returns root DB.
func GetDB(ctx context.Context, rootDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return rootDB.WithContext(ctx)
}
