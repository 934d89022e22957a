package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	goji "goji.io"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/env"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/recoverer"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/requestlogger"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/svc"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/token"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/app"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/lib/authentication"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"

	// force initialization of schemas
	_ "github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model/schemas"
)

// Registry represents a test registry backed by an in-memory DB.
type Registry struct {
	Server *httptest.Server
	Env    *env.Env
	Ctx    context.Context
}

// User represents a user of a test registry, with the password it was
// created with.
type User struct {
	*model.User
	Password string
	Registry *Registry
}

// CreateRegistry creates a new test registry with an in-memory DB.
func CreateRegistry(
	t *testing.T,
) *Registry {
	ctx := context.Background()

	registryEnv := env.Env{
		Environment: env.QA,
		Config:      map[env.ConfigKey]string{},
	}
	ctx = env.With(ctx, &registryEnv)

	registryDB, err := db.NewSqlite3DBInMemory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	err = db.CreateDBTables(ctx, registryDB)
	if err != nil {
		t.Fatal(err)
	}
	ctx = db.WithDB(ctx, registryDB)

	mux := goji.NewMux()
	mux.Use(requestlogger.Middleware)
	mux.Use(recoverer.Middleware)
	mux.Use(db.Middleware(db.GetDB(ctx)))
	mux.Use(env.Middleware(env.Get(ctx)))
	mux.Use(authentication.Middleware)

	(&app.Controller{}).Bind(mux)

	return &Registry{
		Server: httptest.NewServer(mux),
		Env:    &registryEnv,
		Ctx:    ctx,
	}
}

// CreateUser creates a non-admin user with an open settlement account and
// returns it.
func (r *Registry) CreateUser(
	t *testing.T,
) *User {
	username := strings.ToLower(token.New("u"))
	password := token.New("pwd")

	ctx := db.Begin(r.Ctx)
	defer db.LoggedRollback(ctx)

	user, err := model.CreateUser(ctx, username, password, false)
	if err != nil {
		t.Fatal(err)
	}
	_, err = model.CreateAccount(ctx, user.Username, model.Amount{})
	if err != nil {
		t.Fatal(err)
	}

	db.Commit(ctx)

	return &User{
		User:     user,
		Password: password,
		Registry: r,
	}
}

// CreateAdmin creates an admin user with an open settlement account and
// returns it.
func (r *Registry) CreateAdmin(
	t *testing.T,
) *User {
	username := strings.ToLower(token.New("adm"))
	password := token.New("pwd")

	ctx := db.Begin(r.Ctx)
	defer db.LoggedRollback(ctx)

	user, err := model.CreateUser(ctx, username, password, true)
	if err != nil {
		t.Fatal(err)
	}
	_, err = model.CreateAccount(ctx, user.Username, model.Amount{})
	if err != nil {
		t.Fatal(err)
	}

	db.Commit(ctx)

	return &User{
		User:     user,
		Password: password,
		Registry: r,
	}
}

// FundAccount credits the user settlement account with the provided funds.
func (u *User) FundAccount(
	t *testing.T,
	funds int64,
) {
	ctx := db.Begin(u.Registry.Ctx)
	defer db.LoggedRollback(ctx)

	account, err := model.LoadAccountByHolder(ctx, u.Username)
	if err != nil {
		t.Fatal(err)
	}
	(*big.Int)(&account.Funds).Add(
		(*big.Int)(&account.Funds), big.NewInt(funds))
	err = account.Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	db.Commit(ctx)
}

// FreezeAccount freezes the user settlement account.
func (u *User) FreezeAccount(
	t *testing.T,
) {
	ctx := db.Begin(u.Registry.Ctx)
	defer db.LoggedRollback(ctx)

	account, err := model.LoadAccountByHolder(ctx, u.Username)
	if err != nil {
		t.Fatal(err)
	}
	account.Status = model.AcStFrozen
	err = account.Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	db.Commit(ctx)
}

// Post posts a form to the test registry as the user and returns the status
// code along with the decoded response.
func (u *User) Post(
	t *testing.T,
	path string,
	values url.Values,
) (int, svc.Resp) {
	req, err := http.NewRequest("POST",
		u.Registry.Server.URL+path,
		strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(u.Username, u.Password)

	return execute(t, req)
}

// Get performs an authenticated GET against the test registry and returns
// the status code along with the decoded response.
func (u *User) Get(
	t *testing.T,
	path string,
) (int, svc.Resp) {
	req, err := http.NewRequest("GET",
		u.Registry.Server.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	req.SetBasicAuth(u.Username, u.Password)

	return execute(t, req)
}

// Get performs an unauthenticated GET against the test registry and returns
// the status code along with the decoded response.
func (r *Registry) Get(
	t *testing.T,
	path string,
) (int, svc.Resp) {
	req, err := http.NewRequest("GET", r.Server.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}

	return execute(t, req)
}

func execute(
	t *testing.T,
	req *http.Request,
) (int, svc.Resp) {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	raw := svc.Resp{}
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatal(fmt.Errorf("non JSON body: %s: %s", err.Error(), body))
	}

	return resp.StatusCode, raw
}
