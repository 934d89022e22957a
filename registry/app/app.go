package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	goji "goji.io"

	"github.com/facebookgo/grace/gracehttp"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/env"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/logging"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/recoverer"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/requestlogger"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/lib/authentication"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"

	// force initialization of schemas
	_ "github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model/schemas"
)

// BackgroundContextFromFlags initializes a background context fully loaded
// with everything that could be extracted from the flags.
func BackgroundContextFromFlags(
	envFlag string, // environment
	hstFlag string, // registry host
	prtFlag string, // registry port
	dsnFlag string, // registry DSN
	admFlag string, // admin username
	pwdFlag string, // admin password
) (context.Context, error) {
	ctx := context.Background()

	registryEnv := env.Env{
		Environment: env.QA,
		Config:      map[env.ConfigKey]string{},
	}
	if envFlag == "production" || envFlag == "prod" {
		registryEnv.Environment = env.Production
	}

	if prtFlag == "" {
		prtFlag = fmt.Sprintf("%d",
			registry.DefaultPort[registryEnv.Environment])
	}

	registryEnv.Config[registry.EnvCfgHost] = hstFlag
	registryEnv.Config[registry.EnvCfgPort] = prtFlag

	ctx = env.With(ctx, &registryEnv)

	registryDB, err := db.NewDBForDSN(ctx,
		dsnFlag,
		fmt.Sprintf("sqlite3://~/.registry/registry-%s.db",
			env.Get(ctx).Environment))
	if err != nil {
		return nil, errors.Trace(err)
	}
	err = db.CreateDBTables(ctx, registryDB)
	if err != nil {
		return nil, errors.Trace(err)
	}
	ctx = db.WithDB(ctx, registryDB)

	// Bootstrap the admin user if credentials were passed and the user does
	// not exist yet. The admin is the only user able to create other users.
	if admFlag != "" && pwdFlag != "" {
		err := func(ctx context.Context) error {
			ctx = db.Begin(ctx)
			defer db.LoggedRollback(ctx)

			admin, err := model.LoadUserByUsername(ctx, admFlag)
			if err != nil {
				return errors.Trace(err)
			} else if admin == nil {
				admin, err = model.CreateUser(ctx, admFlag, pwdFlag, true)
				if err != nil {
					return errors.Trace(err)
				}
				_, err = model.CreateAccount(ctx,
					admin.Username, model.Amount{})
				if err != nil {
					return errors.Trace(err)
				}
				logging.Logf(ctx, "Bootstrapped admin: username=%s",
					admin.Username)
			}

			db.Commit(ctx)
			return nil
		}(ctx)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	return ctx, nil
}

// Build initializes the app and its web stack.
func Build(
	ctx context.Context,
) (*goji.Mux, error) {
	if registry.GetPort(ctx) == "" {
		return nil, errors.Trace(errors.Newf(
			"You must set the `-port` flag"))
	}
	mux := goji.NewMux()
	mux.Use(requestlogger.Middleware)
	mux.Use(recoverer.Middleware)
	mux.Use(db.Middleware(db.GetDB(ctx)))
	mux.Use(env.Middleware(env.Get(ctx)))
	mux.Use(authentication.Middleware)

	logging.Logf(ctx, "Initializing: environment=%s host=%s port=%s",
		env.Get(ctx).Environment,
		registry.GetHost(ctx), registry.GetPort(ctx))

	(&Controller{}).Bind(mux)

	return mux, nil
}

// Serve the goji mux.
func Serve(
	ctx context.Context,
	mux *goji.Mux,
) error {
	s := &http.Server{
		Addr:         fmt.Sprintf(":%s", registry.GetPort(ctx)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		Handler:      mux,
	}

	logging.Logf(ctx, "Listening: port=%s", registry.GetPort(ctx))

	err := gracehttp.Serve(s)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}
