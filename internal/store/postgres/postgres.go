// Package postgres implements the remote expense store on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	// postgres driver
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const table = "expenses"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store keeps expenses in a PostgreSQL table.
type Store struct {
	db *sql.DB
}

var _ store.Remote = (*Store)(nil)

// Open connects to the database at dsn and runs the schema migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to database: %w", err)
	}

	if err = migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func migrateUp(db *sql.DB) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func listQuery(owner string) sq.SelectBuilder {
	return psql.Select("id", "user_id", "name", "category", "amount", "date").
		From(table).
		Where(sq.Eq{"user_id": owner}).
		OrderBy("seq")
}

func insertQuery(e models.Expense) sq.InsertBuilder {
	return psql.Insert(table).
		Columns("id", "user_id", "name", "category", "amount", "date").
		Values(string(e.ID), e.UserID, e.Name, string(e.Category), e.Amount, e.Date.UTC())
}

func updateQuery(owner string, id models.ExpenseID, fields store.Fields) sq.UpdateBuilder {
	return psql.Update(table).
		Set("name", fields.Name).
		Set("category", string(fields.Category)).
		Set("amount", fields.Amount).
		Where(sq.Eq{"id": string(id), "user_id": owner})
}

func deleteQuery(owner string, id models.ExpenseID) sq.DeleteBuilder {
	return psql.Delete(table).
		Where(sq.Eq{"id": string(id), "user_id": owner})
}

func (s *Store) ListByOwner(ctx context.Context, owner string) ([]models.Expense, error) {
	rows, err := listQuery(owner).RunWith(s.db).QueryContext(ctx)
	if err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("listing expenses")
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error().Err(err).Msg("closing rows")
		}
	}()

	expenses := []models.Expense{}
	for rows.Next() {
		var (
			e        models.Expense
			id       string
			category string
		)

		if err := rows.Scan(&id, &e.UserID, &e.Name, &category, &e.Amount, &e.Date); err != nil {
			return nil, fmt.Errorf("listing expenses: %w", err)
		}

		e.ID = models.ExpenseID(id)
		e.Category = models.Category(category)
		e.Date = e.Date.UTC()
		e.Origin = models.OriginRemote
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return expenses, nil
}

func (s *Store) Create(ctx context.Context, e models.Expense) error {
	_, err := insertQuery(e).RunWith(s.db).ExecContext(ctx)
	if err != nil {
		log.Error().Err(err).Str("id", string(e.ID)).Msg("adding expense")
		return fmt.Errorf("adding expense: %w", err)
	}

	return nil
}

func (s *Store) Update(ctx context.Context, owner string, id models.ExpenseID, fields store.Fields) error {
	res, err := updateQuery(owner, id, fields).RunWith(s.db).ExecContext(ctx)
	if err != nil {
		log.Error().Err(err).Str("id", string(id)).Msg("updating expense")
		return fmt.Errorf("updating expense: %w", err)
	}

	return affected(res, id)
}

func (s *Store) Delete(ctx context.Context, owner string, id models.ExpenseID) error {
	res, err := deleteQuery(owner, id).RunWith(s.db).ExecContext(ctx)
	if err != nil {
		log.Error().Err(err).Str("id", string(id)).Msg("deleting expense")
		return fmt.Errorf("deleting expense: %w", err)
	}

	return affected(res, id)
}

func affected(res sql.Result, id models.ExpenseID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w expense with id %s", models.ErrResourceNotFound, id)
	}

	return nil
}
