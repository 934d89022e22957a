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

// Holding represents the portion of a holder's tokens attributable to a
// specific asset (the sub-balance). For each asset the holding values sum to
// the asset total token supply. Holdings are never deleted; a zero value is
// a valid terminal state.
type Holding struct {
	Token   string
	Created time.Time

	Asset  int64  // Asset id.
	Holder string // Holder username.
	Value  Amount
}

// CreateHolding creates and stores a new Holding object. Only one holding
// can exist for an asset, holder pair. Existing holdings should be retrieved
// and updated instead.
func CreateHolding(
	ctx context.Context,
	asset int64,
	holder string,
	value Amount,
) (*Holding, error) {
	holding := Holding{
		Token:   token.New("holding"),
		Created: time.Now().UTC(),

		Asset:  asset,
		Holder: holder,
		Value:  value,
	}

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO holdings
  (token, created, asset, holder, value)
VALUES
  (:token, :created, :asset, :holder, :value)
`, holding); err != nil {
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

	return &holding, nil
}

// Save updates the object database representation with the in-memory values.
func (h *Holding) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
UPDATE holdings
SET value = :value
WHERE token = :token
`, h)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadHoldingByAssetHolder attempts to load a holding for the given asset id
// and holder.
func LoadHoldingByAssetHolder(
	ctx context.Context,
	asset int64,
	holder string,
) (*Holding, error) {
	holding := Holding{
		Asset:  asset,
		Holder: holder,
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM holdings
WHERE asset = :asset
  AND holder = :holder
`, holding); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, nil
	} else if err := rows.StructScan(&holding); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &holding, nil
}

// LoadOrCreateHoldingByAssetHolder loads an existing holding for the
// specified asset and holder or creates one (with a 0 value) if it does not
// exist.
func LoadOrCreateHoldingByAssetHolder(
	ctx context.Context,
	asset int64,
	holder string,
) (*Holding, error) {
	holding, err := LoadHoldingByAssetHolder(ctx, asset, holder)
	if err != nil {
		return nil, errors.Trace(err)
	} else if holding == nil {
		holding, err = CreateHolding(ctx, asset, holder, Amount{})
		if err != nil {
			return nil, errors.Trace(err)
		}
	}
	return holding, nil
}
