package classifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()

	matcher, err := NewMatcher([]string{"foodsisters", "foodsister"})
	require.NoError(t, err)

	return matcher
}

func TestStandardClassifier_CenarioCompleto(t *testing.T) {
	classifier := NewStandardClassifier(newTestMatcher(t), domain.GranularityMonth, domain.ChannelSearch)

	rows := []domain.SearchTermRow{
		{
			SearchTerm: "foodsisters tee",
			PeriodRaw:  "2024-01-01",
			Metrics:    domain.Metrics{Impressions: 100, Clicks: 10, Cost: 5.00, Conversions: 1, ConversionsValue: 20},
		},
		{
			SearchTerm: "red tee",
			PeriodRaw:  "2024-01-01",
			Metrics:    domain.Metrics{Impressions: 200, Clicks: 20, Cost: 10.00, Conversions: 2, ConversionsValue: 40},
		},
		{
			SearchTerm: "foodsister hat",
			PeriodRaw:  "2024-02-01",
			Metrics:    domain.Metrics{Impressions: 50, Clicks: 5, Cost: 2.50},
		},
	}

	for _, row := range rows {
		assert.True(t, classifier.Ingest(row))
	}

	result := classifier.Result()

	january := result.Periods["2024-01"]
	require.NotNil(t, january)
	assert.Equal(t, domain.Metrics{Impressions: 100, Clicks: 10, Cost: 5.00, Conversions: 1, ConversionsValue: 20}, *january[domain.ClassificationBranded])
	assert.Equal(t, domain.Metrics{Impressions: 200, Clicks: 20, Cost: 10.00, Conversions: 2, ConversionsValue: 40}, *january[domain.ClassificationNonBranded])

	february := result.Periods["2024-02"]
	require.NotNil(t, february)
	assert.Equal(t, domain.Metrics{Impressions: 50, Clicks: 5, Cost: 2.50}, *february[domain.ClassificationBranded])
	assert.Nil(t, february[domain.ClassificationNonBranded])

	// Totais devem bater com a soma dos períodos
	assert.Equal(t, domain.Metrics{Impressions: 150, Clicks: 15, Cost: 7.50, Conversions: 1, ConversionsValue: 20}, *result.Totals[domain.ClassificationBranded])
	assert.Equal(t, domain.Metrics{Impressions: 200, Clicks: 20, Cost: 10.00, Conversions: 2, ConversionsValue: 40}, *result.Totals[domain.ClassificationNonBranded])
}

func TestStandardClassifier_LinhaSemPeriodo(t *testing.T) {
	classifier := NewStandardClassifier(newTestMatcher(t), domain.GranularityMonth, domain.ChannelShopping)

	ok := classifier.Ingest(domain.SearchTermRow{
		SearchTerm: "foodsisters tee",
		PeriodRaw:  "",
		Metrics:    domain.Metrics{Impressions: 10},
	})

	assert.False(t, ok)
	assert.Empty(t, classifier.Result().Periods)
	assert.Empty(t, classifier.Result().Totals)
}

func TestExclusionAwareClassifier_Ingest(t *testing.T) {
	tests := []struct {
		name          string
		allNonBranded bool
		row           domain.PMaxSearchTermRow
		expectedKept  bool
		expected      domain.Classification
	}{
		{
			name: "Status ADDED_EXCLUDED descarta a linha inteira",
			row: domain.PMaxSearchTermRow{
				SearchTermRow:   domain.SearchTermRow{SearchTerm: "foodsisters tee", PeriodRaw: "2024-01-01", Metrics: domain.Metrics{Impressions: 10}},
				TargetingStatus: "ADDED_EXCLUDED",
			},
			expectedKept: false,
		},
		{
			name: "Status EXCLUDED descarta mesmo com override ativo",
			allNonBranded: true,
			row: domain.PMaxSearchTermRow{
				SearchTermRow:   domain.SearchTermRow{SearchTerm: "red tee", PeriodRaw: "2024-01-01", Metrics: domain.Metrics{Impressions: 10}},
				TargetingStatus: "excluded",
			},
			expectedKept: false,
		},
		{
			name: "Termo de marca classifica como branded",
			row: domain.PMaxSearchTermRow{
				SearchTermRow:   domain.SearchTermRow{SearchTerm: "foodsisters tee", PeriodRaw: "2024-01-01", Metrics: domain.Metrics{Impressions: 10}},
				TargetingStatus: "NONE",
			},
			expectedKept: true,
			expected:     domain.ClassificationBranded,
		},
		{
			name:          "Override força non-branded mesmo com termo de marca",
			allNonBranded: true,
			row: domain.PMaxSearchTermRow{
				SearchTermRow:   domain.SearchTermRow{SearchTerm: "foodsisters tee", PeriodRaw: "2024-01-01", Metrics: domain.Metrics{Impressions: 10}},
				TargetingStatus: "NONE",
			},
			expectedKept: true,
			expected:     domain.ClassificationNonBranded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewExclusionAwareClassifier(newTestMatcher(t), domain.GranularityMonth, tt.allNonBranded)

			kept := classifier.Ingest(tt.row)
			assert.Equal(t, tt.expectedKept, kept)

			result := classifier.Result()
			if !tt.expectedKept {
				// Linha excluída não aparece nem como zero
				assert.Empty(t, result.Periods)
				assert.Empty(t, result.Totals)
				return
			}

			bucket := result.Periods["2024-01"]
			require.NotNil(t, bucket)
			assert.Equal(t, tt.row.Metrics, *bucket[tt.expected])
		})
	}
}

func TestCategoryClassifier_Ingest(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected domain.Classification
	}{
		{
			name:     "Rótulo vazio vira Blank",
			label:    "",
			expected: domain.ClassificationBlank,
		},
		{
			name:     "Rótulo só com espaços vira Blank",
			label:    "   ",
			expected: domain.ClassificationBlank,
		},
		{
			name:     "Rótulo com termo de marca vira Branded",
			label:    "foodsisters gift",
			expected: domain.ClassificationBranded,
		},
		{
			name:     "Rótulo comum vira NonBranded",
			label:    "running shoes",
			expected: domain.ClassificationNonBranded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewCategoryClassifier(newTestMatcher(t))

			kept := classifier.Ingest("2024-01", domain.CategoryRow{
				Label:   tt.label,
				Metrics: domain.Metrics{Impressions: 30, Clicks: 3, Cost: 9.99, Conversions: 1, ConversionsValue: 15},
			})
			require.True(t, kept)

			result := classifier.Result()
			bucket := result.Periods["2024-01"]
			require.NotNil(t, bucket)

			metrics := bucket[tt.expected]
			require.NotNil(t, metrics)

			// Custo é forçado a zero: a fonte de categorias não o fornece
			assert.Equal(t, domain.Metrics{Impressions: 30, Clicks: 3, Cost: 0, Conversions: 1, ConversionsValue: 15}, *metrics)
			assert.Equal(t, *metrics, *result.Totals[tt.expected])
		})
	}
}

func TestCategoryClassifier_SemChaveDePeriodo(t *testing.T) {
	classifier := NewCategoryClassifier(newTestMatcher(t))

	assert.False(t, classifier.Ingest("", domain.CategoryRow{Label: "running shoes"}))
	assert.Empty(t, classifier.Result().Periods)
}
