package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/logging"
)

var schemas = map[string]string{}

// RegisterSchema lets schemas register themselves.
func RegisterSchema(
	table string,
	schema string,
) {
	schemas[table] = schema
}

// CreateDBTables creates the registry DB tables if they don't exist.
func CreateDBTables(
	ctx context.Context,
	db *sqlx.DB,
) error {
	for name, sch := range schemas {
		logging.Logf(ctx, "Executing schema: table=%s", name)
		_, err := db.Exec(sch)
		if err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}
