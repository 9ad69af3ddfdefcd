package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandTermList(t *testing.T) {
	testCases := []struct {
		name     string
		terms    []string
		expected []string
	}{
		{
			name:     "Remove entradas vazias e espaços nas pontas",
			terms:    []string{" food sisters ", "", "  ", "fs24"},
			expected: []string{"food sisters", "fs24"},
		},
		{
			name:     "Lista vazia continua vazia",
			terms:    nil,
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := Report{BrandTerms: tc.terms}
			assert.Equal(t, tc.expected, report.BrandTermList())
		})
	}
}

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		report        Report
		expectedStart string
		expectedEnd   string
		expectedErr   bool
	}{
		{
			name:          "Datas explícitas são usadas como estão",
			report:        Report{StartDate: "2025-01-01", EndDate: "2025-02-28"},
			expectedStart: "2025-01-01",
			expectedEnd:   "2025-02-28",
		},
		{
			name:          "Lookback termina ontem",
			report:        Report{LookbackDays: 7},
			expectedStart: "2025-03-08",
			expectedEnd:   "2025-03-14",
		},
		{
			name:        "Data final anterior à inicial é erro",
			report:      Report{StartDate: "2025-02-01", EndDate: "2025-01-01"},
			expectedErr: true,
		},
		{
			name:        "Data inicial sem data final é erro",
			report:      Report{StartDate: "2025-01-01"},
			expectedErr: true,
		},
		{
			name:        "Data malformada é erro",
			report:      Report{StartDate: "01/01/2025", EndDate: "2025-02-28"},
			expectedErr: true,
		},
		{
			name:        "Sem datas e sem lookback é erro",
			report:      Report{},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := tc.report.ResolveDateRange(now)

			if tc.expectedErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedStart, start.Format(time.DateOnly))
			assert.Equal(t, tc.expectedEnd, end.Format(time.DateOnly))
		})
	}
}

func TestScopeList(t *testing.T) {
	auth := GoogleAuth{Scopes: "https://www.googleapis.com/auth/adwords, https://www.googleapis.com/auth/spreadsheets ,"}

	assert.Equal(t, []string{
		"https://www.googleapis.com/auth/adwords",
		"https://www.googleapis.com/auth/spreadsheets",
	}, auth.ScopeList())
}
