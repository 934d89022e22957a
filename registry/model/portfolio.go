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

// PortfolioEntry records that a holder acquired a nonzero sub-balance in an
// asset at least once. Entries are appended exactly once per (holder, asset)
// pair, the first time the holding transitions from zero to nonzero, and are
// never removed, even if the holding later returns to zero.
type PortfolioEntry struct {
	Token   string
	Created time.Time

	Holder   string // Holder username.
	Asset    int64  // Asset id.
	Position int64  // 1-based append order within the holder's portfolio.
}

// CreatePortfolioEntry creates and stores a new PortfolioEntry, appending it
// at the end of the holder's portfolio. The position is computed under the
// current transaction.
func CreatePortfolioEntry(
	ctx context.Context,
	holder string,
	asset int64,
) (*PortfolioEntry, error) {
	ext := db.Ext(ctx)

	var lastPosition int64
	if rows, err := sqlx.NamedQuery(ext, `
SELECT COALESCE(MAX(position), 0) AS last_position
FROM portfolios
WHERE holder = :holder
`, map[string]interface{}{
		"holder": holder,
	}); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, errors.Newf("Impossible to retrieve last position")
	} else if err := rows.Scan(&lastPosition); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	entry := PortfolioEntry{
		Token:   token.New("portfolio"),
		Created: time.Now().UTC(),

		Holder:   holder,
		Asset:    asset,
		Position: lastPosition + 1,
	}

	if _, err := sqlx.NamedExec(ext, `
INSERT INTO portfolios
  (token, created, holder, asset, position)
VALUES
  (:token, :created, :holder, :asset, :position)
`, entry); err != nil {
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

	return &entry, nil
}

// LoadPortfolioEntryByHolderAsset attempts to load the portfolio entry for
// the given holder and asset id.
func LoadPortfolioEntryByHolderAsset(
	ctx context.Context,
	holder string,
	asset int64,
) (*PortfolioEntry, error) {
	entry := PortfolioEntry{
		Holder: holder,
		Asset:  asset,
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM portfolios
WHERE holder = :holder
  AND asset = :asset
`, entry); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, nil
	} else if err := rows.StructScan(&entry); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &entry, nil
}

// LoadPortfolioByHolder loads all portfolio entries for the given holder in
// append order.
func LoadPortfolioByHolder(
	ctx context.Context,
	holder string,
) ([]*PortfolioEntry, error) {
	query := map[string]interface{}{
		"holder": holder,
	}

	ext := db.Ext(ctx)
	rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM portfolios
WHERE holder = :holder
ORDER BY position
`, query)
	if err != nil {
		return nil, errors.Trace(err)
	}

	entries := []*PortfolioEntry{}

	defer rows.Close()
	for rows.Next() {
		e := PortfolioEntry{}
		err := rows.StructScan(&e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		entries = append(entries, &e)
	}

	return entries, nil
}
