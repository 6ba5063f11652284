// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATEs after which rerunning the whole transaction can succeed.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

type txManager struct {
	db         *gorm.DB
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewTransactionManager returns a TransactionManager that reruns a
// transaction aborted by a serialization failure or deadlock.
func NewTransactionManager(db *gorm.DB, cfg *config.Config, logger *slog.Logger) repository.TransactionManager {
	tm := &txManager{db: db, logger: logger, sleep: sleepCtx}
	if cfg.Database != nil {
		tm.maxRetries = cfg.Database.TxMaxRetries
		tm.backoff = cfg.Database.TxRetryBackoff
	}

	return tm
}

func (tm *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tm.retry(ctx, func() error { return tm.runOnce(ctx, fn) })
}

func (tm *txManager) retry(ctx context.Context, attemptTx func() error) error {
	wait := tm.backoff

	for attempt := 0; ; attempt++ {
		err := attemptTx()
		if err == nil || attempt >= tm.maxRetries || !isTransient(err) {
			return err
		}

		deliverycontext.GetLoggerOrDefault(ctx, tm.logger).Warn("Retrying aborted transaction",
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)

		// Up to a quarter of jitter keeps colliding writers from retrying in lockstep.
		jittered := wait + time.Duration(rand.Int64N(int64(wait/4)+1))
		if err := tm.sleep(ctx, jittered); err != nil {
			return errors.WithStack(err)
		}
		wait *= 2
	}
}

// runOnce runs fn in one transaction. Errors returned by fn pass through
// untouched; a failed begin or commit is joined with ErrTransactionFailed.
func (tm *txManager) runOnce(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return errors.Mark(err, domainerrors.ErrTransactionFailed)
	}
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) CartRepo() repository.CartRepository       { return NewCartRepository(r.tx) }
func (r txRepositories) ProductRepo() repository.ProductRepository { return NewProductRepository(r.tx) }
func (r txRepositories) ShopRepo() repository.ShopRepository       { return NewShopRepository(r.tx) }
func (r txRepositories) OrderRepo() repository.OrderRepository     { return NewOrderRepository(r.tx) }
func (r txRepositories) UserRepo() repository.UserRepository       { return NewUserRepository(r.tx) }

func (r txRepositories) NotificationRepo() repository.NotificationRepository {
	return NewNotificationRepository(r.tx)
}
