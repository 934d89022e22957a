package model

import (
	"database/sql/driver"
	"math/big"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
)

// MaxAmount is the maximum value handled by the registry (2^128), used to
// bound token amounts as well as monetary values.
var MaxAmount = new(big.Int).Exp(
	new(big.Int).SetInt64(2), new(big.Int).SetInt64(128), nil)

// Amount extends big.Int to implement sql.Scanner and driver.Valuer. Amounts
// are stored as decimal strings in the DB.
type Amount big.Int

// Scan implements sql.Scanner.
func (b *Amount) Scan(src interface{}) error {
	switch src := src.(type) {
	case int64:
		(*big.Int)(b).SetInt64(src)
	case []byte:
		if _, success := (*big.Int)(b).SetString(string(src), 10); !success {
			return errors.Newf("Impossible to set Amount with string: %q", src)
		}
	case string:
		if _, success := (*big.Int)(b).SetString(src, 10); !success {
			return errors.Newf("Impossible to set Amount with string: %q", src)
		}
	default:
		return errors.Newf("Incompatible type for Amount with value: %q", src)
	}

	return nil
}

// Value implements driver.Valuer.
func (b Amount) Value() (value driver.Value, err error) {
	return (*big.Int)(&b).String(), nil
}

// AcStatus is the status of a settlement account.
type AcStatus string

const (
	// AcStOpen is used to mark an account as open.
	AcStOpen AcStatus = "open"
	// AcStFrozen is used to mark an account as frozen. Frozen accounts
	// reject credits and debits, which aborts any settlement involving them.
	AcStFrozen AcStatus = "frozen"
)

// Value implements driver.Valuer.
func (s AcStatus) Value() (value driver.Value, err error) {
	return string(s), nil
}

// Scan implements sql.Scanner.
func (s *AcStatus) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		*s = AcStatus(src)
	case string:
		*s = AcStatus(src)
	default:
		return errors.Newf(
			"Incompatible status for AcStatus with value: %q", src)
	}

	return nil
}

// EvType is the type of an observable registry event.
type EvType string

const (
	// EvTpAssetTokenized is emitted when an asset is tokenized.
	EvTpAssetTokenized EvType = "asset_tokenized"
	// EvTpTokensPurchased is emitted when tokens are purchased.
	EvTpTokensPurchased EvType = "tokens_purchased"
	// EvTpTokensTransferred is emitted when tokens are transferred peer to
	// peer.
	EvTpTokensTransferred EvType = "tokens_transferred"
	// EvTpAssetActivated is emitted when an asset is activated.
	EvTpAssetActivated EvType = "asset_activated"
	// EvTpAssetDeactivated is emitted when an asset is deactivated.
	EvTpAssetDeactivated EvType = "asset_deactivated"
)

// Value implements driver.Valuer.
func (t EvType) Value() (value driver.Value, err error) {
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *EvType) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		*t = EvType(src)
	case string:
		*t = EvType(src)
	default:
		return errors.Newf(
			"Incompatible type for EvType with value: %q", src)
	}

	return nil
}
