package mysql

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/repository"
)

// MySQL server error numbers worth a retry
const (
	erTooManyConnections = 1040
	erLockWaitTimeout    = 1205
	erLockDeadlock       = 1213
)

type txKey struct{}

type transactor struct {
	DB *gorm.DB
}

var _ domain.Transactor = (*transactor)(nil)

// NewTransactor 创建跨 repository 的事务执行器
func NewTransactor(db *gorm.DB) *transactor {
	return &transactor{DB: db}
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return runInTx(ctx, t.DB, func(ctx context.Context, _ *gorm.DB) error {
		return fn(ctx)
	})
}

// runInTx joins the transaction carried by ctx, or opens a new one. Work
// queued with repository.AfterCommit runs only after a new transaction
// commits.
func runInTx(ctx context.Context, db *gorm.DB, fn func(ctx context.Context, tx *gorm.DB) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx, tx)
	}
	hctx, runHooks := repository.WithCommitHooks(ctx)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(hctx, txKey{}, tx), tx)
	})
	if err != nil {
		return translateError(err)
	}
	runHooks(ctx)
	return nil
}

// conn returns the transaction carried by ctx, if any.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// translateError maps driver and gorm errors onto the domain taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysqldriver.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrTransientStorage, err)
	}
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case erTooManyConnections, erLockWaitTimeout, erLockDeadlock:
			return fmt.Errorf("%w: %v", domain.ErrTransientStorage, err)
		}
	}
	return err
}
