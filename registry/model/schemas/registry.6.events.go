package schemas

import "github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"

const (
	eventsSQL = `
CREATE TABLE IF NOT EXISTS events(
  token VARCHAR(256) NOT NULL,       -- token
  created TIMESTAMP NOT NULL,

  type VARCHAR(32) NOT NULL,         -- event type
  asset BIGINT NOT NULL,             -- asset id
  holder VARCHAR(256) NOT NULL,      -- primary holder
  counterpart VARCHAR(256),          -- destination holder, if any
  amount VARCHAR(64) NOT NULL,       -- token amount moved
  payment VARCHAR(64) NOT NULL,      -- monetary value settled

  PRIMARY KEY(token)
);
`
)

func init() {
	db.RegisterSchema(
		"events",
		eventsSQL,
	)
}
