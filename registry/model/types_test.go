package model

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountScan(
	t *testing.T,
) {
	var a Amount

	err := a.Scan(int64(42))
	assert.Nil(t, err)
	assert.Equal(t, "42", (*big.Int)(&a).String())

	err = a.Scan("123456789012345678901234567890")
	assert.Nil(t, err)
	assert.Equal(t,
		"123456789012345678901234567890", (*big.Int)(&a).String())

	err = a.Scan([]byte("99"))
	assert.Nil(t, err)
	assert.Equal(t, "99", (*big.Int)(&a).String())

	err = a.Scan("not-a-number")
	assert.NotNil(t, err)

	err = a.Scan(3.14)
	assert.NotNil(t, err)
}

func TestAmountValue(
	t *testing.T,
) {
	a := Amount(*big.NewInt(1000))
	v, err := a.Value()
	assert.Nil(t, err)
	assert.Equal(t, "1000", v)
}

func TestAcStatusScan(
	t *testing.T,
) {
	var s AcStatus

	err := s.Scan("frozen")
	assert.Nil(t, err)
	assert.Equal(t, AcStFrozen, s)

	err = s.Scan([]byte("open"))
	assert.Nil(t, err)
	assert.Equal(t, AcStOpen, s)

	err = s.Scan(42)
	assert.NotNil(t, err)
}
