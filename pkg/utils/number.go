package utils

import (
	"math"
	"strconv"
)

const microsPerUnit = 1_000_000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseInt64OrZero converte métricas inteiras vindas da API como string.
// Valor ausente, malformado ou negativo vale zero, nunca aborta a linha:
// todo componente do vetor de métricas é não negativo.
func ParseInt64OrZero(s string) int64 {
	if s == "" {
		return 0
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

// ZeroIfNegative aplica a mesma regra aos decimais que chegam como número
// no fio.
func ZeroIfNegative(f float64) float64 {
	if f < 0 {
		return 0
	}

	return f
}

// MicrosToUnits converte custo em micros (padrão da API) para unidades de moeda.
func MicrosToUnits(micros int64) float64 {
	return float64(micros) / microsPerUnit
}
