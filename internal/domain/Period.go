package domain

import (
	"fmt"
	"time"
)

// Granularity define o agrupamento temporal de uma execução inteira do
// relatório. Nunca há mistura de granularidades numa mesma execução.
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityWeek  Granularity = "week"
)

const (
	monthKeyLayout = "2006-01"
	dateLayout     = "2006-01-02"
)

func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(value) {
	case GranularityMonth:
		return GranularityMonth, nil
	case GranularityWeek:
		return GranularityWeek, nil
	}

	return "", fmt.Errorf("granularidade inválida: %q (esperado month ou week)", value)
}

// PeriodWindow é uma janela discreta de consulta, usada pelas fontes que não
// filtram por segmento de data e precisam de uma consulta por período.
type PeriodWindow struct {
	Key   string
	Start time.Time
	End   time.Time
}

// PeriodKeyFor converte o valor bruto de período de uma linha na chave
// canônica: "YYYY-MM" para mês, data da segunda-feira "YYYY-MM-DD" para
// semana. Os dois formatos ordenam cronologicamente por comparação de
// strings. Valor ausente ou ilegível retorna ok=false e a linha deve ser
// descartada, nunca agregada num período padrão.
func PeriodKeyFor(granularity Granularity, raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		if granularity == GranularityMonth {
			if month, monthErr := time.Parse(monthKeyLayout, raw); monthErr == nil {
				return month.Format(monthKeyLayout), true
			}
		}

		return "", false
	}

	if granularity == GranularityMonth {
		return date.Format(monthKeyLayout), true
	}

	return mondayOnOrBefore(date).Format(dateLayout), true
}

// FormatPeriodLabel formata a chave canônica para exibição na planilha.
func FormatPeriodLabel(granularity Granularity, key string) string {
	if granularity == GranularityMonth {
		month, err := time.Parse(monthKeyLayout, key)
		if err != nil {
			return key
		}

		return month.Format("January 2006")
	}

	return "week commencing " + key
}

// EnumeratePeriods gera a sequência ordenada de janelas cobrindo o intervalo
// [start, end]. Janelas mensais são recortadas nas duas pontas do intervalo.
// Janelas semanais são ancoradas na segunda-feira igual ou anterior ao
// início, têm sete dias cada e apenas a última é recortada no fim.
func EnumeratePeriods(granularity Granularity, start, end time.Time) []PeriodWindow {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if end.Before(start) {
		return nil
	}

	if granularity == GranularityMonth {
		return enumerateMonths(start, end)
	}

	return enumerateWeeks(start, end)
}

func enumerateMonths(start, end time.Time) []PeriodWindow {
	var windows []PeriodWindow

	cursor := start
	for !cursor.After(end) {
		monthEnd := endOfMonth(cursor)
		windowEnd := monthEnd
		if windowEnd.After(end) {
			windowEnd = end
		}

		windows = append(windows, PeriodWindow{
			Key:   cursor.Format(monthKeyLayout),
			Start: cursor,
			End:   windowEnd,
		})

		cursor = monthEnd.AddDate(0, 0, 1)
	}

	return windows
}

func enumerateWeeks(start, end time.Time) []PeriodWindow {
	var windows []PeriodWindow

	cursor := mondayOnOrBefore(start)
	for !cursor.After(end) {
		windowEnd := cursor.AddDate(0, 0, 6)
		if windowEnd.After(end) {
			windowEnd = end
		}

		windows = append(windows, PeriodWindow{
			Key:   cursor.Format(dateLayout),
			Start: cursor,
			End:   windowEnd,
		})

		cursor = cursor.AddDate(0, 0, 7)
	}

	return windows
}

func mondayOnOrBefore(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

func endOfMonth(date time.Time) time.Time {
	firstOfNext := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
