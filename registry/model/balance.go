package model

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/token"
)

// Balance represents a holder's balance on the single global fungible token
// pool. All assets share this pool; per-asset accounting is kept separately
// in holdings. Balances are updated as tokens are minted, purchased or
// transferred.
type Balance struct {
	Token   string
	Created time.Time

	Holder string // Holder username.
	Value  Amount
}

// CreateBalance creates and store a new Balance object. Only one balance can
// exist per holder. Existing balances should be retrieved and updated
// instead.
func CreateBalance(
	ctx context.Context,
	holder string,
	value Amount,
) (*Balance, error) {
	balance := Balance{
		Token:   token.New("balance"),
		Created: time.Now().UTC(),

		Holder: holder,
		Value:  value,
	}

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO balances
  (token, created, holder, value)
VALUES
  (:token, :created, :holder, :value)
`, balance); err != nil {
		switch err := err.(type) {
		case *pq.Error:
			if err.Code.Name() == "unique_violation" {
				return nil, errors.Trace(ErrUniqueConstraintViolation{err})
			}
		case sqlite3.Error:
			if err.ExtendedCode == sqlite3.ErrConstraintUnique {
				return nil, errors.Trace(ErrUniqueConstraintViolation{err})
			}
		}
		return nil, errors.Trace(err)
	}

	return &balance, nil
}

// Save updates the object database representation with the in-memory values.
func (b *Balance) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
UPDATE balances
SET value = :value
WHERE token = :token
`, b)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadBalanceByHolder attempts to load a balance for the given holder.
func LoadBalanceByHolder(
	ctx context.Context,
	holder string,
) (*Balance, error) {
	balance := Balance{
		Holder: holder,
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM balances
WHERE holder = :holder
`, balance); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, nil
	} else if err := rows.StructScan(&balance); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &balance, nil
}

// LoadOrCreateBalanceByHolder loads an existing balance for the specified
// holder or creates one (with a 0 value) if it does not exist.
func LoadOrCreateBalanceByHolder(
	ctx context.Context,
	holder string,
) (*Balance, error) {
	balance, err := LoadBalanceByHolder(ctx, holder)
	if err != nil {
		return nil, errors.Trace(err)
	} else if balance == nil {
		balance, err = CreateBalance(ctx, holder, Amount{})
		if err != nil {
			return nil, errors.Trace(err)
		}
	}
	return balance, nil
}
