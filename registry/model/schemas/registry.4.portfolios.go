package schemas

import "github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"

const (
	portfoliosSQL = `
CREATE TABLE IF NOT EXISTS portfolios(
  token VARCHAR(256) NOT NULL,  -- token
  created TIMESTAMP NOT NULL,

  holder VARCHAR(256) NOT NULL, -- holder username
  asset BIGINT NOT NULL,        -- asset id
  position BIGINT NOT NULL,     -- append order within the holder portfolio

  PRIMARY KEY(token),
  CONSTRAINT portfolios_holder_asset_u UNIQUE (holder, asset)
);
`
)

func init() {
	db.RegisterSchema(
		"portfolios",
		portfoliosSQL,
	)
}
