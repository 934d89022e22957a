package endpoint

import (
	"context"
	"math/big"
	"strconv"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"
)

// ValidateAssetID validates and parses an asset id from a route parameter.
// The id is only checked syntactically here; existence is checked by the
// endpoints under their transaction.
func ValidateAssetID(
	ctx context.Context,
	id string,
) (int64, error) {
	a, err := strconv.ParseInt(id, 10, 64)
	if err != nil || a < 1 {
		return 0, errors.Trace(errors.NewUserErrorf(err,
			400, "asset_invalid",
			"The asset id you provided is invalid: %s. Asset ids are "+
				"positive integers.",
			id,
		))
	}

	return a, nil
}

// ValidateAmount validates a token or monetary amount. Amounts must be
// integers between 0 and 2^128; zero amounts are rejected by the endpoints
// that require strictly positive values, after their other preconditions.
func ValidateAmount(
	ctx context.Context,
	amount string,
) (*big.Int, error) {
	var a big.Int
	_, success := a.SetString(amount, 10)
	if !success ||
		a.Cmp(new(big.Int)) < 0 ||
		a.Cmp(model.MaxAmount) >= 0 {
		return nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "amount_invalid",
			"The amount you provided is invalid: %s. Amounts must be "+
				"integers between 0 and 2^128.",
			amount,
		))
	}

	return &a, nil
}

// ValidateUsername validates a holder username.
func ValidateUsername(
	ctx context.Context,
	username string,
) (string, error) {
	if !model.UsernameRegexp.MatchString(username) {
		return "", errors.Trace(errors.NewUserErrorf(nil,
			400, "username_invalid",
			"The username you provided is invalid: %s. Usernames can use "+
				"alphanumeric lowercased, `-`, `_` and `.` characters only.",
			username,
		))
	}

	return username, nil
}
