package model

import (
	"context"
	"math/big"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/token"
)

// Asset represents a tokenized property. Assets are created by users
// (owners); the total value and total token supply are fixed at creation and
// never change afterwards. Only the active flag is mutable, by admins.
type Asset struct {
	ID      int64
	Token   string
	Created time.Time

	Location    string
	TotalValue  Amount `db:"total_value"`
	TotalTokens Amount `db:"total_tokens"`
	Active      bool
	Owner       string // Owner username.
}

// CreateAsset creates and stores a new Asset object, allocating the next
// sequential id (1-based). The id allocation reads MAX(id) under the current
// transaction so that it is serialized with the insert; the primary key acts
// as a backstop against double allocation.
func CreateAsset(
	ctx context.Context,
	location string,
	totalValue Amount,
	totalTokens Amount,
	owner string,
) (*Asset, error) {
	ext := db.Ext(ctx)

	var lastID int64
	if rows, err := sqlx.NamedQuery(ext, `
SELECT COALESCE(MAX(id), 0) AS last_id
FROM assets
`, map[string]interface{}{}); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, errors.Newf("Impossible to retrieve last asset id")
	} else if err := rows.Scan(&lastID); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	asset := Asset{
		ID:      lastID + 1,
		Token:   token.New("asset"),
		Created: time.Now().UTC(),

		Location:    location,
		TotalValue:  totalValue,
		TotalTokens: totalTokens,
		Active:      true,
		Owner:       owner,
	}

	if _, err := sqlx.NamedExec(ext, `
INSERT INTO assets
  (id, token, created, location, total_value, total_tokens, active, owner)
VALUES
  (:id, :token, :created, :location, :total_value, :total_tokens, :active,
   :owner)
`, asset); err != nil {
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

	return &asset, nil
}

// PricePerToken returns the derived price of one token in the smallest
// monetary unit: total_value / total_tokens with integer truncation. It is
// computed on demand and never stored.
func (a *Asset) PricePerToken() *big.Int {
	return new(big.Int).Quo(
		(*big.Int)(&a.TotalValue), (*big.Int)(&a.TotalTokens))
}

// Save updates the object database representation with the in-memory values.
// Only the active flag is mutable.
func (a *Asset) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
UPDATE assets
SET active = :active
WHERE token = :token
`, a)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadAssetByID attempts to load an asset by its sequential id.
func LoadAssetByID(
	ctx context.Context,
	id int64,
) (*Asset, error) {
	asset := Asset{
		ID: id,
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM assets
WHERE id = :id
`, asset); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, nil
	} else if err := rows.StructScan(&asset); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &asset, nil
}

// LoadAssets loads all assets ordered by id.
func LoadAssets(
	ctx context.Context,
) ([]*Asset, error) {
	ext := db.Ext(ctx)
	rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM assets
ORDER BY id
`, map[string]interface{}{})
	if err != nil {
		return nil, errors.Trace(err)
	}

	assets := []*Asset{}

	defer rows.Close()
	for rows.Next() {
		a := Asset{}
		err := rows.StructScan(&a)
		if err != nil {
			return nil, errors.Trace(err)
		}
		assets = append(assets, &a)
	}

	return assets, nil
}

// CountAssets returns the number of assets in the registry.
func CountAssets(
	ctx context.Context,
) (int64, error) {
	ext := db.Ext(ctx)
	rows, err := sqlx.NamedQuery(ext, `
SELECT COUNT(*) AS count
FROM assets
`, map[string]interface{}{})
	if err != nil {
		return 0, errors.Trace(err)
	}

	var count int64
	if !rows.Next() {
		return 0, errors.Newf("Impossible to count assets")
	} else if err := rows.Scan(&count); err != nil {
		defer rows.Close()
		return 0, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return 0, errors.Trace(err)
	}

	return count, nil
}
