package main

import (
	"flag"
	"log"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/app"
)

var envFlag string
var hstFlag string
var prtFlag string
var dsnFlag string
var admFlag string
var pwdFlag string

func init() {
	flag.StringVar(&envFlag, "env",
		"qa", "The environment to run in (qa, production), default: qa")
	flag.StringVar(&hstFlag, "host",
		"", "The host the registry is served from")
	flag.StringVar(&prtFlag, "port",
		"", "The port the registry listens on, default: 3047 (qa), 2047 (production)")
	flag.StringVar(&dsnFlag, "db_dsn",
		"", "The DSN of the database to use, default: sqlite3://~/.registry/registry-$env.db")
	flag.StringVar(&admFlag, "admin_username",
		"", "The username of the admin user to bootstrap at startup")
	flag.StringVar(&pwdFlag, "admin_password",
		"", "The password of the admin user to bootstrap at startup")

	if fl := log.Flags(); fl&log.Ltime != 0 {
		log.SetFlags(fl | log.Lmicroseconds)
	}
}

func main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	ctx, err := app.BackgroundContextFromFlags(
		envFlag,
		hstFlag, prtFlag,
		dsnFlag,
		admFlag, pwdFlag,
	)
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	mux, err := app.Build(ctx)
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	err = app.Serve(ctx, mux)
	if err != nil {
		log.Fatal(errors.Details(err))
	}
}
