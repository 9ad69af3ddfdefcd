package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt64OrZero(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int64
	}{
		{name: "Inteiro válido", input: "1234", expected: 1234},
		{name: "String vazia vale zero", input: "", expected: 0},
		{name: "Valor malformado vale zero", input: "abc", expected: 0},
		{name: "Decimal não é inteiro e vale zero", input: "12.5", expected: 0},
		{name: "Negativo coage para zero", input: "-7", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseInt64OrZero(tc.input))
		})
	}
}

func TestZeroIfNegative(t *testing.T) {
	assert.Equal(t, 12.5, ZeroIfNegative(12.5))
	assert.Equal(t, 0.0, ZeroIfNegative(0))
	assert.Equal(t, 0.0, ZeroIfNegative(-2.5))
}

func TestMicrosToUnits(t *testing.T) {
	assert.Equal(t, 1.5, MicrosToUnits(1_500_000))
	assert.Equal(t, 0.0, MicrosToUnits(0))
	assert.Equal(t, 0.000001, MicrosToUnits(1))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.234))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
