package model

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/token"
)

// Event represents an observable registry event (asset tokenized, tokens
// purchased, tokens transferred, asset activated or deactivated). Events are
// written under the same transaction as the mutation they describe so that
// external indexers never observe an event for a mutation that rolled back.
type Event struct {
	Token   string
	Created time.Time

	Type        EvType
	Asset       int64   // Asset id.
	Holder      string  // Primary holder (creator, buyer or source).
	Counterpart *string // Destination username, if any.
	Amount      Amount  // Token amount moved, 0 for status flips.
	Payment     Amount  // Monetary value settled, 0 when not a purchase.
}

// CreateEvent creates and stores a new Event object.
func CreateEvent(
	ctx context.Context,
	typ EvType,
	asset int64,
	holder string,
	counterpart *string,
	amount Amount,
	payment Amount,
) (*Event, error) {
	event := Event{
		Token:   token.New("event"),
		Created: time.Now().UTC(),

		Type:        typ,
		Asset:       asset,
		Holder:      holder,
		Counterpart: counterpart,
		Amount:      amount,
		Payment:     payment,
	}

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO events
  (token, created, type, asset, holder, counterpart, amount, payment)
VALUES
  (:token, :created, :type, :asset, :holder, :counterpart, :amount, :payment)
`, event); err != nil {
		return nil, errors.Trace(err)
	}

	return &event, nil
}

// LoadEvents loads the events for the registry in creation order, optionally
// filtered by asset id (0 filters nothing).
func LoadEvents(
	ctx context.Context,
	asset int64,
) ([]*Event, error) {
	query := map[string]interface{}{
		"asset": asset,
	}

	sql := `
SELECT *
FROM events
ORDER BY created, token
`
	if asset != 0 {
		sql = `
SELECT *
FROM events
WHERE asset = :asset
ORDER BY created, token
`
	}

	ext := db.Ext(ctx)
	rows, err := sqlx.NamedQuery(ext, sql, query)
	if err != nil {
		return nil, errors.Trace(err)
	}

	events := []*Event{}

	defer rows.Close()
	for rows.Next() {
		e := Event{}
		err := rows.StructScan(&e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		events = append(events, &e)
	}

	return events, nil
}
