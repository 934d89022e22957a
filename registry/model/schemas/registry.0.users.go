package schemas

import "github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"

const (
	usersSQL = `
CREATE TABLE IF NOT EXISTS users(
  token VARCHAR(256) NOT NULL,         -- token
  created TIMESTAMP NOT NULL,

  username VARCHAR(256) NOT NULL,      -- username, doubles as holder identity
  password_hash VARCHAR(256) NOT NULL, -- scrypt hash of the password
  admin BOOL NOT NULL,                 -- admin users create other users

  PRIMARY KEY(token),
  CONSTRAINT users_username_u UNIQUE (username)
);
`
)

func init() {
	db.RegisterSchema(
		"users",
		usersSQL,
	)
}
