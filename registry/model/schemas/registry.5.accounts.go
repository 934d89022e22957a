package schemas

import "github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"

const (
	accountsSQL = `
CREATE TABLE IF NOT EXISTS accounts(
  token VARCHAR(256) NOT NULL,  -- token
  created TIMESTAMP NOT NULL,

  holder VARCHAR(256) NOT NULL, -- holder username
  funds VARCHAR(64) NOT NULL,   -- available funds, smallest monetary unit
  status VARCHAR(32) NOT NULL,  -- status (open, frozen)

  PRIMARY KEY(token),
  CONSTRAINT accounts_holder_u UNIQUE (holder)
);
`
)

func init() {
	db.RegisterSchema(
		"accounts",
		accountsSQL,
	)
}
