package schemas

import "github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"

const (
	balancesSQL = `
CREATE TABLE IF NOT EXISTS balances(
  token VARCHAR(256) NOT NULL,  -- token
  created TIMESTAMP NOT NULL,

  holder VARCHAR(256) NOT NULL, -- holder username
  value VARCHAR(64) NOT NULL,   -- balance on the global fungible pool

  PRIMARY KEY(token),
  CONSTRAINT balances_holder_u UNIQUE (holder)
);
`
)

func init() {
	db.RegisterSchema(
		"balances",
		balancesSQL,
	)
}
