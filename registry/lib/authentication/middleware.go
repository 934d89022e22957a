package authentication

import (
	"context"
	"net/http"
	"regexp"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/logging"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/respond"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"
)

// ContextKey is the type of the key used with context to carry contextual
// authentication status.
type ContextKey string

const (
	// statusKey the context.Context key to store the authentication status.
	statusKey ContextKey = "authentication.status"
)

// AutStatus indicates the status of the authentication.
type AutStatus string

const (
	// AutStSucceeded indicates a successful authentication.
	AutStSucceeded AutStatus = "succeeded"
	// AutStSkipped indicates a skipped authentication.
	AutStSkipped AutStatus = "skipped"
	// AutStFailed indicates a failed authentication.
	AutStFailed AutStatus = "failed"
)

// Status stores the authentication information, the status and authenticated
// user if applicable.
type Status struct {
	Status AutStatus
	User   *model.User
}

// With stores the authentication information in a new context.
func With(
	ctx context.Context,
	status Status,
) context.Context {
	return context.WithValue(ctx, statusKey, status)
}

// Get retrieves the authentication information from the context.
func Get(
	ctx context.Context,
) Status {
	return ctx.Value(statusKey).(Status)
}

// SkipRule defines a skip rule for authentication.
type SkipRule struct {
	Method  string
	Pattern *regexp.Regexp
}

// SkipList is the list of endpoints that do not require authentication
// (public reads).
var SkipList = []*SkipRule{
	{"GET", regexp.MustCompile("^/assets$")},
	{"GET", regexp.MustCompile("^/assets/[0-9]+$")},
	{"GET", regexp.MustCompile("^/assets/[0-9]+/holdings/[a-z0-9\\-_\\.]+$")},
	{"GET", regexp.MustCompile("^/balances/[a-z0-9\\-_\\.]+$")},
	{"GET", regexp.MustCompile("^/portfolios/[a-z0-9\\-_\\.]+$")},
	{"GET", regexp.MustCompile("^/events$")},
}

type middleware struct {
	http.Handler
}

// ServeHTTP handles incoming HTTP requests and attempt to authenticate them
// against the users table.
func (m middleware) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	ctx := r.Context()
	withStatus := With(ctx, Status{AutStFailed, nil})

	username, password, _ := r.BasicAuth()
	skip := false
	for _, s := range SkipList {
		if s.Method == r.Method && s.Pattern.MatchString(r.URL.Path) {
			skip = true
		}
	}

	// Helper closure to fallback to the skiplist or log and return an
	// authentication error.
	failedAuth := func(err error) {
		if skip {
			withStatus = With(ctx, Status{AutStSkipped, nil})
			logging.Logf(ctx,
				"Authentication: status=%q username=%q",
				Get(withStatus).Status, username)

			m.Handler.ServeHTTP(w, r.WithContext(withStatus))
		} else {
			withStatus = With(ctx, Status{AutStFailed, nil})
			logging.Logf(ctx,
				"Authentication: status=%q username=%q",
				Get(withStatus).Status, username)

			respond.Error(ctx, w, errors.Trace(errors.NewUserErrorf(err,
				401, "not_authorized",
				"You must authenticate with a valid username and password "+
					"to access this endpoint.",
			)))
		}
	}

	user, err := model.LoadUserByUsername(ctx, username)
	if err != nil {
		failedAuth(errors.Trace(err))
		return
	} else if user == nil {
		failedAuth(errors.Newf("Username not found: %s", username))
		return
	}

	if err := user.CheckPassword(ctx, password); err != nil {
		failedAuth(errors.Trace(err))
		return
	}

	withStatus = With(ctx, Status{AutStSucceeded, user})
	logging.Logf(ctx,
		"Authentication: status=%q username=%q admin=%t",
		Get(withStatus).Status, user.Username, user.Admin)

	m.Handler.ServeHTTP(w, r.WithContext(withStatus))
}

// Middleware that authenticates requests using HTTP basic auth against the
// users table, with a skip list for public reads.
func Middleware(h http.Handler) http.Handler {
	return middleware{h}
}
