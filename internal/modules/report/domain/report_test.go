package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fieldreport/internal/modules/report/domain"
)

func mustMonth(t *testing.T, key string) domain.Month {
	t.Helper()
	m, err := domain.ParseMonth(key)
	require.NoError(t, err)
	return m
}

func TestAggregateNormalisesMinutes(t *testing.T) {
	t.Parallel()
	month := mustMonth(t, "2026-03")
	facts := []domain.Fact{
		{Date: "2026-03-02", Hours: 1, Minutes: 45, Category: "Campo"},
		{Date: "2026-03-09", Hours: 0, Minutes: 30, Category: "Campo"},
	}
	s := domain.Aggregate(month, facts)
	require.Equal(t, 2, s.Hours)
	require.Equal(t, 15, s.Minutes)
	require.Equal(t, "2h 15m", s.HoursLabel())
}

func TestAggregateIgnoresOrderAndOtherMonths(t *testing.T) {
	t.Parallel()
	month := mustMonth(t, "2026-03")
	facts := []domain.Fact{
		{Date: "2026-03-01", Hours: 0, Minutes: 50, Category: "Revisitas", Publications: 2},
		{Date: "2026-03-31", Hours: 2, Minutes: 40, Category: "Estudo Bíblico", ReopenedVisits: 1},
		{Date: "2026-02-28", Hours: 9, Minutes: 0, Category: "Campo"},
		{Date: "2026-04-01", Hours: 9, Minutes: 0, Category: "Revisitas"},
		{Date: "2026-03-15", Hours: 1, Minutes: 55, Category: "Cartas", Letters: 4},
		{Date: "2026-03-20", Hours: 0, Minutes: 15, Category: "Revisitas"},
	}
	forward := domain.Aggregate(month, facts)
	reversed := make([]domain.Fact, len(facts))
	for i := range facts {
		reversed[len(facts)-1-i] = facts[i]
	}
	backward := domain.Aggregate(month, reversed)

	require.Equal(t, forward, backward)
	require.Equal(t, 5, forward.Hours)
	require.Equal(t, 40, forward.Minutes)
	require.Equal(t, 2, forward.ReturnVisits)
	require.Equal(t, 1, forward.BibleStudies)
	require.Equal(t, 2, forward.Publications)
	require.Equal(t, 1, forward.ReopenedVisits)
	require.Equal(t, 4, forward.Letters)
	require.Equal(t, 4, forward.Entries)
}

func TestPrevRollsJanuaryBack(t *testing.T) {
	t.Parallel()
	prev := mustMonth(t, "2026-01").Prev()
	require.Equal(t, 2025, prev.Year)
	require.Equal(t, time.December, prev.Month)
	require.Equal(t, "2025-12", prev.Key())
	require.Equal(t, "2026-02", mustMonth(t, "2026-03").Prev().Key())
	require.Equal(t, "Dezembro de 2025", prev.Label())

	_, err := domain.ParseMonth("2026-13")
	require.Error(t, err)
	_, err = domain.NewMonth(2026, 0)
	require.Error(t, err)
}

func TestCompareMessages(t *testing.T) {
	t.Parallel()
	month := mustMonth(t, "2026-03")
	summary := func(h, m int) domain.Summary { return domain.Summary{Month: month, Hours: h, Minutes: m} }

	none := domain.Compare(summary(5, 0), summary(0, 0))
	require.False(t, none.HasPercent)
	require.Equal(t, "Sem dados do mês anterior.", none.Message)

	more := domain.Compare(summary(12, 30), summary(10, 0))
	require.True(t, more.HasPercent)
	require.InDelta(t, 25.0, more.Percent, 1e-9)
	require.Equal(t, "Você fez 2.5h a mais que o mês anterior (+25.0%).", more.Message)

	less := domain.Compare(summary(8, 0), summary(10, 0))
	require.Equal(t, "Você fez 2.0h a menos que o mês anterior (-20.0%).", less.Message)

	same := domain.Compare(summary(10, 0), summary(10, 0))
	require.Equal(t, "Você fez exatamente as mesmas horas do mês anterior.", same.Message)
}

func TestProgressAndGoalLabel(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0.0, domain.Progress(10, 0, false))
	require.Equal(t, 50.0, domain.Progress(25, 50, true))
	require.Equal(t, 100.0, domain.Progress(80, 50, true))
	require.Equal(t, "50.0h", domain.GoalLabel(50, true))
	require.Equal(t, "—", domain.GoalLabel(0, false))
}

func TestPublisherWithoutActivity(t *testing.T) {
	t.Parallel()
	month := mustMonth(t, "2026-03")
	text := domain.Text(domain.Header{Name: "Ana", Congregation: "Centro"}, domain.Aggregate(month, nil))
	want := "Relatório – Março de 2026\n" +
		"Publicador: Ana\n" +
		"Congregação: Centro\n\n" +
		"Participei no ministério: Não\n" +
		"\nEnviado via app de relatório de campo."
	require.Equal(t, want, text)
}

func TestPublisherWithActivityListsOnlyNonZeroCounters(t *testing.T) {
	t.Parallel()
	month := mustMonth(t, "2026-03")
	s := domain.Summary{Month: month, Hours: 3, ReturnVisits: 2, Letters: 1}
	text := domain.Text(domain.Header{Name: "Ana", Congregation: "Centro"}, s)
	want := "Relatório – Março de 2026\n" +
		"Publicador: Ana\n" +
		"Congregação: Centro\n\n" +
		"Participei no ministério: Sim\n" +
		"Revisitas: 2\n" +
		"Cartas: 1\n" +
		"\nEnviado via app de relatório de campo."
	require.Equal(t, want, text)
}

func TestPioneerAlwaysStatesHoursAndVisits(t *testing.T) {
	t.Parallel()
	month := mustMonth(t, "2026-01")
	s := domain.Summary{Month: month, Hours: 50, Minutes: 5, Publications: 12}
	text := domain.Text(domain.Header{Name: "João", Congregation: "Norte", Pioneer: true}, s)
	want := "Relatório – Janeiro de 2026\n" +
		"Publicador: João\n" +
		"Congregação: Norte\n\n" +
		"Total de horas: 50h 05m\n" +
		"Revisitas: 0\n" +
		"Estudos bíblicos: 0\n" +
		"Publicações: 12\n" +
		"\nEnviado via app de relatório de campo."
	require.Equal(t, want, text)
}

func TestShareLinkEncodesLikeURIComponent(t *testing.T) {
	t.Parallel()
	text := "Relatório – Março\nHoras: 2h (total)!"
	require.Equal(t,
		"https://wa.me/?text=Relat%C3%B3rio%20%E2%80%93%20Mar%C3%A7o%0AHoras%3A%202h%20(total)!",
		domain.ShareLink(text, ""))
	require.Equal(t, "https://wa.me/5511999990000?text=a%2Bb%20c", domain.ShareLink("a+b c", "5511999990000"))
}
