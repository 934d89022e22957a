package schemas

import "github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"

const (
	assetsSQL = `
CREATE TABLE IF NOT EXISTS assets(
  id BIGINT NOT NULL,                -- sequential id, 1-based, never reused
  token VARCHAR(256) NOT NULL,       -- token
  created TIMESTAMP NOT NULL,

  location VARCHAR(256) NOT NULL,    -- property location
  total_value VARCHAR(64) NOT NULL,  -- total value, smallest monetary unit
  total_tokens VARCHAR(64) NOT NULL, -- total token supply, fixed at creation
  active BOOL NOT NULL,              -- inactive assets accept no purchases
  owner VARCHAR(256) NOT NULL,       -- owner username

  PRIMARY KEY(id),
  CONSTRAINT assets_token_u UNIQUE (token)
);
`
)

func init() {
	db.RegisterSchema(
		"assets",
		assetsSQL,
	)
}
