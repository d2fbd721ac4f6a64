package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Connect opens the SQLite database at dsn, migrates the schema and
// registers the error rewriting callbacks.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: queryLogger{log: log.Logger.With().Str("component", "gorm").Logger()},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite only allows one writer, a single connection avoids SQLITE_BUSY
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = Migrate(db)
	if err != nil {
		return nil, err
	}

	callbacks := []struct {
		name     string
		register func() error
	}{
		{"query", func() error {
			return db.Callback().Query().After("*").Register("expense_tracker:after_query", queryCallback)
		}},
		{"query_general", func() error {
			return db.Callback().Query().After("*").Register("expense_tracker:after_query_general", generalCallback)
		}},
		{"create", func() error {
			return db.Callback().Create().After("*").Register("expense_tracker:after_create", createUpdateCallback)
		}},
		{"create_general", func() error {
			return db.Callback().Create().After("*").Register("expense_tracker:after_create_general", generalCallback)
		}},
		{"update", func() error {
			return db.Callback().Update().After("*").Register("expense_tracker:after_update", createUpdateCallback)
		}},
		{"update_general", func() error {
			return db.Callback().Update().After("*").Register("expense_tracker:after_update_general", generalCallback)
		}},
		{"delete_general", func() error {
			return db.Callback().Delete().After("*").Register("expense_tracker:after_delete_general", generalCallback)
		}},
	}

	for _, c := range callbacks {
		if err := c.register(); err != nil {
			return nil, fmt.Errorf("failed to register %s callback: %w", c.name, err)
		}
	}

	return db, nil
}

// Migrate migrates all models to the schema defined in the code.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Expense{}, User{}, Session{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name describes the type of resource
		name := strings.TrimSuffix(strings.ReplaceAll(db.Statement.Table, "_", " "), "s")
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: users.email") {
		db.Error = ErrEmailInUse
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}
