package main

import (
	"context"
	"flag"
	"log"
	"math/big"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/out"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/app"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"
)

func main() {
	var fct = flag.String("function", "create_user", "the function to execute")
	var env = flag.String("env", "qa", "the environment to run in")
	var dsn = flag.String("db_dsn", "", "the DSN of the database to use")
	var usr = flag.String("username", "", "the username to operate on")
	var pas = flag.String("password", "", "the password of the user to create")
	var adm = flag.Bool("admin", false, "whether the created user is an admin")
	var fnd = flag.String("funds", "0", "the funds to credit")
	var ast = flag.Int64("asset", 0, "the asset id to operate on")
	flag.Parse()

	ctx, err := app.BackgroundContextFromFlags(
		*env, "", "", *dsn, "", "")
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	switch *fct {
	case "create_user":
		createUser(ctx, *usr, *pas, *adm)
	case "fund_account":
		fundAccount(ctx, *usr, *fnd)
	case "freeze_account":
		freezeAccount(ctx, *usr)
	case "show_asset":
		showAsset(ctx, *ast)
	default:
		out.Errof("[Error] Unknown function: %s\n", *fct)
	}
}

func createUser(
	ctx context.Context,
	username string,
	password string,
	admin bool,
) {
	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	user, err := model.LoadUserByUsername(ctx, username)
	if err != nil {
		log.Fatal(errors.Details(err))
	}
	if user != nil {
		out.Warnf("[Warning] User already exists: %s\n", username)
		return
	}

	user, err = model.CreateUser(ctx, username, password, admin)
	if err != nil {
		log.Fatal(errors.Details(err))
	}
	_, err = model.CreateAccount(ctx, user.Username, model.Amount{})
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	db.Commit(ctx)

	out.Boldf("User created:\n")
	out.Normf("  Username : ")
	out.Valuf("%s\n", user.Username)
	out.Normf("  Admin    : ")
	out.Valuf("%t\n", user.Admin)
}

func fundAccount(
	ctx context.Context,
	username string,
	funds string,
) {
	amount, ok := new(big.Int).SetString(funds, 10)
	if !ok || amount.Sign() < 0 {
		out.Errof("[Error] Invalid funds: %s\n", funds)
		return
	}

	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	account, err := model.LoadAccountByHolder(ctx, username)
	if err != nil {
		log.Fatal(errors.Details(err))
	}
	if account == nil {
		out.Errof("[Error] Account not found: %s\n", username)
		return
	}

	(*big.Int)(&account.Funds).Add((*big.Int)(&account.Funds), amount)
	err = account.Save(ctx)
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	db.Commit(ctx)

	out.Boldf("Account funded:\n")
	out.Normf("  Holder : ")
	out.Valuf("%s\n", account.Holder)
	out.Normf("  Funds  : ")
	out.Valuf("%s\n", (*big.Int)(&account.Funds).String())
}

func freezeAccount(
	ctx context.Context,
	username string,
) {
	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	account, err := model.LoadAccountByHolder(ctx, username)
	if err != nil {
		log.Fatal(errors.Details(err))
	}
	if account == nil {
		out.Errof("[Error] Account not found: %s\n", username)
		return
	}

	account.Status = model.AcStFrozen
	err = account.Save(ctx)
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	db.Commit(ctx)

	out.Boldf("Account frozen:\n")
	out.Normf("  Holder : ")
	out.Valuf("%s\n", account.Holder)
}

func showAsset(
	ctx context.Context,
	id int64,
) {
	asset, err := model.LoadAssetByID(ctx, id)
	if err != nil {
		log.Fatal(errors.Details(err))
	}
	if asset == nil {
		out.Errof("[Error] Asset not found: %d\n", id)
		return
	}

	out.Boldf("Asset:\n")
	out.Normf("  ID             : ")
	out.Valuf("%d\n", asset.ID)
	out.Normf("  Location       : ")
	out.Valuf("%s\n", asset.Location)
	out.Normf("  Total value    : ")
	out.Valuf("%s\n", (*big.Int)(&asset.TotalValue).String())
	out.Normf("  Total tokens   : ")
	out.Valuf("%s\n", (*big.Int)(&asset.TotalTokens).String())
	out.Normf("  Price per token: ")
	out.Valuf("%s\n", asset.PricePerToken().String())
	out.Normf("  Active         : ")
	out.Valuf("%t\n", asset.Active)
	out.Normf("  Owner          : ")
	out.Valuf("%s\n", asset.Owner)
}
