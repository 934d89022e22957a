package model

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricePerTokenTruncates(
	t *testing.T,
) {
	asset := Asset{
		TotalValue:  Amount(*big.NewInt(1000000)),
		TotalTokens: Amount(*big.NewInt(1000)),
	}
	assert.Equal(t, "1000", asset.PricePerToken().String())

	// The division truncates toward zero.
	asset = Asset{
		TotalValue:  Amount(*big.NewInt(100)),
		TotalTokens: Amount(*big.NewInt(1000)),
	}
	assert.Equal(t, "0", asset.PricePerToken().String())

	asset = Asset{
		TotalValue:  Amount(*big.NewInt(999)),
		TotalTokens: Amount(*big.NewInt(100)),
	}
	assert.Equal(t, "9", asset.PricePerToken().String())
}
