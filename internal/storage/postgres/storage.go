package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/polkiloo/outsourcing/internal/domain/repository"
)

// pgxPool is the subset of *pgxpool.Pool used by Storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *zap.Logger
}

// New connects to dsn and makes sure the schema exists.
func New(ctx context.Context, dsn string, logger *zap.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("postgres storage ready", zap.String("host", cfg.ConnConfig.Host))

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) Suppliers() repository.SupplierRepository {
	return &supplierRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS suppliers (
            id BIGINT PRIMARY KEY,
            name TEXT NOT NULL,
            contact TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            email TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            reliability TEXT NOT NULL,
            avg_delivery_days INTEGER NOT NULL,
            specialties TEXT[] NOT NULL DEFAULT '{}',
            status TEXT NOT NULL,
            rating DOUBLE PRECISION NOT NULL,
            notes TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS outsourced_orders (
            id TEXT PRIMARY KEY,
            quotation_id BIGINT,
            sales_order_id BIGINT,
            customer_id BIGINT,
            customer_name TEXT NOT NULL,
            product JSONB NOT NULL,
            supplier_id BIGINT NOT NULL,
            quantity INTEGER NOT NULL,
            agreed_price DOUBLE PRECISION NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            order_date TIMESTAMPTZ NOT NULL,
            expected_delivery TIMESTAMPTZ NOT NULL,
            actual_delivery TIMESTAMPTZ,
            payment_status TEXT NOT NULL,
            advance_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            supplier_order_ref TEXT NOT NULL DEFAULT '',
            tracking_info TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_outsourced_orders_created ON outsourced_orders(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_outsourced_orders_supplier ON outsourced_orders(supplier_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// whereBuilder accumulates positional filter clauses.
type whereBuilder struct {
	clauses []string
	args    []any
}

// add appends clause; every %[1]d in it becomes the placeholder of arg.
func (b *whereBuilder) add(clause string, arg any) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(clause, len(b.args)))
}

func (b *whereBuilder) String() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
