package schemas

import "github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"

const (
	holdingsSQL = `
CREATE TABLE IF NOT EXISTS holdings(
  token VARCHAR(256) NOT NULL,  -- token
  created TIMESTAMP NOT NULL,

  asset BIGINT NOT NULL,        -- asset id
  holder VARCHAR(256) NOT NULL, -- holder username
  value VARCHAR(64) NOT NULL,   -- sub-balance for the asset

  PRIMARY KEY(token),
  CONSTRAINT holdings_asset_holder_u UNIQUE (asset, holder)
);
`
)

func init() {
	db.RegisterSchema(
		"holdings",
		holdingsSQL,
	)
}
