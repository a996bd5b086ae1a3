// Package sqlite is the default Template Store: one local database file per
// inspector device.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase/interfaces"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const seededKey = "templates_seeded"

// executor is satisfied by both *sqlx.DB and *sqlx.Tx.
type executor interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Store struct {
	db *sqlx.DB
}

var (
	_ interfaces.ITemplateStore          = (*Store)(nil)
	_ interfaces.IOrderPaymentRepository = (*Store)(nil)
)

// Open opens (creating if needed) the database at path and applies the
// embedded migrations. Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, interfaces.NewStoreError("open", "database", path, err)
			}
		}
	}

	db, err := sqlx.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, interfaces.NewStoreError("open", "database", path, err)
	}
	// A single connection keeps ":memory:" databases shared and serializes
	// writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, interfaces.NewStoreError("ping", "database", path, err)
	}
	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, interfaces.NewStoreError("migrate", "database", path, err)
	}
	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn inside a transaction, rolling back when fn fails.
func (s *Store) withTx(ctx context.Context, fn func(executor) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed after %v: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// =============================================================================
// Templates
// =============================================================================

type templateRow struct {
	ID       string `db:"id"`
	Position int64  `db:"position"`
	Body     string `db:"body"`
}

func (s *Store) LoadTemplates(ctx context.Context) ([]entities.ChecklistTemplate, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, interfaces.NewStoreError("seed", "templates", "", err)
	}

	var rows []templateRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, position, body FROM templates ORDER BY position`); err != nil {
		return nil, interfaces.NewStoreError("load", "templates", "", err)
	}
	out := make([]entities.ChecklistTemplate, 0, len(rows))
	for _, r := range rows {
		var t entities.ChecklistTemplate
		if err := json.Unmarshal([]byte(r.Body), &t); err != nil {
			return nil, interfaces.NewStoreError("decode", "template", r.ID, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// SaveTemplate upserts by id. A new template goes after every existing one;
// a replaced template keeps its position.
func (s *Store) SaveTemplate(ctx context.Context, t entities.ChecklistTemplate) error {
	if err := s.ensureSeeded(ctx); err != nil {
		return interfaces.NewStoreError("seed", "templates", "", err)
	}
	body, err := json.Marshal(t)
	if err != nil {
		return interfaces.NewStoreError("encode", "template", t.ID, err)
	}
	if err := upsertTemplate(ctx, s.db, t.ID, body); err != nil {
		return interfaces.NewStoreError("save", "template", t.ID, err)
	}
	return nil
}

func upsertTemplate(ctx context.Context, ex executor, id string, body []byte) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO templates (id, position, body, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM templates), ?, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		id, string(body), nowString(),
	)
	return err
}

// ensureSeeded installs the presets the first time the store is read. The
// marker row makes seeding a one-time event even if every template is later
// gone.
func (s *Store) ensureSeeded(ctx context.Context) error {
	return s.withTx(ctx, func(ex executor) error {
		var marker int
		if err := ex.GetContext(ctx, &marker, `SELECT COUNT(*) FROM store_meta WHERE key = ?`, seededKey); err != nil {
			return err
		}
		if marker > 0 {
			return nil
		}

		var count int
		if err := ex.GetContext(ctx, &count, `SELECT COUNT(*) FROM templates`); err != nil {
			return err
		}
		if count == 0 {
			for _, t := range entities.DefaultTemplates() {
				body, err := json.Marshal(t)
				if err != nil {
					return err
				}
				if err := upsertTemplate(ctx, ex, t.ID, body); err != nil {
					return err
				}
			}
		}
		_, err := ex.ExecContext(ctx, `INSERT INTO store_meta (key, value) VALUES (?, ?)`, seededKey, nowString())
		return err
	})
}

// =============================================================================
// Orders
// =============================================================================

type orderRow struct {
	Seq  int64  `db:"seq"`
	ID   string `db:"id"`
	Body string `db:"body"`
}

func (s *Store) LoadOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	var rows []orderRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT seq, id, body FROM orders ORDER BY seq`); err != nil {
		return nil, interfaces.NewStoreError("load", "orders", "", err)
	}
	out := make([]entities.ServiceOrder, 0, len(rows))
	for _, r := range rows {
		var o entities.ServiceOrder
		if err := json.Unmarshal([]byte(r.Body), &o); err != nil {
			return nil, interfaces.NewStoreError("decode", "order", r.ID, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// AppendOrder inserts o at the end of the log. An id already in the log is
// rejected; entries are never rewritten.
func (s *Store) AppendOrder(ctx context.Context, o entities.ServiceOrder) error {
	body, err := json.Marshal(o)
	if err != nil {
		return interfaces.NewStoreError("encode", "order", o.ID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO orders (id, body, created_at) VALUES (?, ?, ?)`,
		o.ID, string(body), nowString(),
	)
	if err != nil {
		return interfaces.NewStoreError("append", "order", o.ID, err)
	}
	return nil
}

// =============================================================================
// Order payments
// =============================================================================

type paymentRow struct {
	ID           string         `db:"id"`
	OrderID      string         `db:"order_id"`
	Date         string         `db:"date"`
	Status       string         `db:"status"`
	MPPayloadRaw sql.NullString `db:"mp_payload_raw"`
}

func (s *Store) Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO order_payments (id, order_id, date, status, mp_payload_raw) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.OrderID, p.Date.UTC().Format(time.RFC3339Nano), string(p.Status),
		sql.NullString{String: string(p.MPPayloadRaw), Valid: len(p.MPPayloadRaw) > 0},
	)
	if err != nil {
		return entities.OrderPayment{}, interfaces.NewStoreError("create", "payment", p.ID, err)
	}
	return p, nil
}

// GetByID returns the zero payment when id is unknown.
func (s *Store) GetByID(ctx context.Context, id string) (entities.OrderPayment, error) {
	var r paymentRow
	err := s.db.GetContext(ctx, &r, `SELECT id, order_id, date, status, mp_payload_raw FROM order_payments WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderPayment{}, nil
	}
	if err != nil {
		return entities.OrderPayment{}, interfaces.NewStoreError("get", "payment", id, err)
	}
	return fromPaymentRow(r), nil
}

func (s *Store) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	var rows []paymentRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, order_id, date, status, mp_payload_raw FROM order_payments WHERE order_id = ? ORDER BY date`, orderID)
	if err != nil {
		return nil, interfaces.NewStoreError("list", "payments", orderID, err)
	}
	out := make([]entities.OrderPayment, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromPaymentRow(r))
	}
	return out, nil
}

func fromPaymentRow(r paymentRow) entities.OrderPayment {
	dt, _ := time.Parse(time.RFC3339Nano, r.Date)
	p := entities.OrderPayment{
		ID:      r.ID,
		OrderID: r.OrderID,
		Date:    dt,
		Status:  entities.PaymentStatus(r.Status),
	}
	if r.MPPayloadRaw.Valid {
		p.MPPayloadRaw = json.RawMessage(r.MPPayloadRaw.String)
		_ = json.Unmarshal(p.MPPayloadRaw, &p.MPPayload)
	}
	return p
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
