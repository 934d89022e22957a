package model

import (
	"context"
	"encoding/base64"
	"regexp"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/token"
	"golang.org/x/crypto/scrypt"
)

// UsernameRegexp is used to validate usernames at creation. Usernames double
// as holder identities on the ledger.
var UsernameRegexp = regexp.MustCompile("^[a-z0-9\\-_\\.]{1,64}$")

// User represents a caller identity known to the registry. The username is
// the holder identity used by balances, holdings and portfolios. Admin users
// can create other users.
type User struct {
	Token   string
	Created time.Time

	Username     string
	PasswordHash string `db:"password_hash"`
	Admin        bool
}

// CreateUser creates and stores a new User object.
func CreateUser(
	ctx context.Context,
	username string,
	password string,
	admin bool,
) (*User, error) {
	user := User{
		Token:   token.New("user"),
		Created: time.Now().UTC(),

		Username: username,
		Admin:    admin,
	}

	h, err := scrypt.Key([]byte(password), []byte(user.Token), 16384, 8, 1, 64)
	if err != nil {
		return nil, errors.Trace(err)
	}

	user.PasswordHash = base64.StdEncoding.EncodeToString(h)

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO users
  (token, created, username, password_hash, admin)
VALUES
  (:token, :created, :username, :password_hash, :admin)
`, user); err != nil {
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

	return &user, nil
}

// CheckPassword checks the provided password against the stored hash.
func (u *User) CheckPassword(
	ctx context.Context,
	password string,
) error {
	h, err := scrypt.Key([]byte(password), []byte(u.Token), 16384, 8, 1, 64)
	if err != nil {
		return errors.Trace(err)
	}

	if u.PasswordHash != base64.StdEncoding.EncodeToString(h) {
		return errors.Newf("Password mismatch")
	}
	return nil
}

// Save updates the object database representation with the in-memory values.
func (u *User) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
UPDATE users
SET password_hash = :password_hash, admin = :admin
WHERE token = :token
`, u)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadUserByUsername attempts to load a user by its username.
func LoadUserByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	user := User{
		Username: username,
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM users
WHERE username = :username
`, user); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, nil
	} else if err := rows.StructScan(&user); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &user, nil
}
