package endpoint

import (
	"context"
	"math/big"
	"net/http"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/format"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/ptr"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/svc"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/lib/authentication"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"
)

const (
	// EndPtCreateUser creates a new user along with its settlement account.
	EndPtCreateUser EndPtName = "CreateUser"
)

func init() {
	registrar[EndPtCreateUser] = NewCreateUser
}

// CreateUser controls the creation of new users. Only admins can create
// users. The created user receives a settlement account funded with the
// specified initial funds.
type CreateUser struct {
	Username string
	Password string
	Funds    big.Int
	Admin    bool
}

// NewCreateUser constructs and initialiezes the endpoint.
func NewCreateUser(
	r *http.Request,
) (Endpoint, error) {
	return &CreateUser{}, nil
}

// Validate validates the input parameters.
func (e *CreateUser) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	if !authentication.Get(ctx).User.Admin {
		return errors.Trace(errors.NewUserErrorf(nil,
			401, "not_authorized",
			"You must be an admin to create users.",
		))
	}

	username, err := ValidateUsername(ctx, r.PostFormValue("username"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Username = username

	if r.PostFormValue("password") == "" {
		return errors.Trace(errors.NewUserErrorf(nil,
			400, "password_invalid",
			"The password you provided is empty.",
		))
	}
	e.Password = r.PostFormValue("password")

	funds := r.PostFormValue("funds")
	if funds == "" {
		funds = "0"
	}
	f, err := ValidateAmount(ctx, funds)
	if err != nil {
		return errors.Trace(err)
	}
	e.Funds = *f

	e.Admin = r.PostFormValue("admin") == "true"

	return nil
}

// Execute executes the endpoint.
func (e *CreateUser) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	user, err := model.CreateUser(ctx,
		e.Username,
		e.Password,
		e.Admin,
	)
	if err != nil {
		switch err := errors.Cause(err).(type) {
		case model.ErrUniqueConstraintViolation:
			return nil, nil, errors.Trace(errors.NewUserErrorf(err,
				400, "user_already_exists",
				"A user with the same username already exists: %s.",
				e.Username,
			))
		default:
			return nil, nil, errors.Trace(err) // 500
		}
	}

	account, err := model.CreateAccount(ctx,
		user.Username,
		model.Amount(e.Funds),
	)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusCreated), &svc.Resp{
		"user":    format.JSONPtr(registry.NewUserResource(ctx, user)),
		"account": format.JSONPtr(registry.NewAccountResource(ctx, account)),
	}, nil
}
