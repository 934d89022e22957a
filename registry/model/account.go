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

// Account represents a holder's monetary settlement account. Purchases debit
// the buyer account and credit the asset owner account under the same
// transaction as the token moves. A frozen account rejects credits and
// debits, which aborts the enclosing settlement entirely.
type Account struct {
	Token   string
	Created time.Time

	Holder string // Holder username.
	Funds  Amount
	Status AcStatus
}

// CreateAccount creates and stores a new Account object. Only one account
// can exist per holder.
func CreateAccount(
	ctx context.Context,
	holder string,
	funds Amount,
) (*Account, error) {
	account := Account{
		Token:   token.New("account"),
		Created: time.Now().UTC(),

		Holder: holder,
		Funds:  funds,
		Status: AcStOpen,
	}

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO accounts
  (token, created, holder, funds, status)
VALUES
  (:token, :created, :holder, :funds, :status)
`, account); err != nil {
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

	return &account, nil
}

// Save updates the object database representation with the in-memory values.
func (a *Account) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
UPDATE accounts
SET funds = :funds, status = :status
WHERE token = :token
`, a)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadAccountByHolder attempts to load an account for the given holder.
func LoadAccountByHolder(
	ctx context.Context,
	holder string,
) (*Account, error) {
	account := Account{
		Holder: holder,
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM accounts
WHERE holder = :holder
`, account); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, nil
	} else if err := rows.StructScan(&account); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &account, nil
}
