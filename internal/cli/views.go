package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Nojands/FinanzApp/internal/domain/alert"
	"github.com/Nojands/FinanzApp/internal/domain/dashboard"
	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/simulation"
)

func writeProjection(w io.Writer, title string, p *projection.Projection) {
	fmt.Fprintln(w, RenderTitle(title))
	fmt.Fprintf(w, "  Saldo atual: %s\n", Signed(p.StartingBalance))
	if p.InProgress != nil {
		fmt.Fprintf(w, "  %s\n", Muted("Período em andamento: %s, saldo ao final %s", p.InProgress.Label, Money(p.InProgress.Balance)))
	}
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(p.Periods))
	for _, period := range p.Periods {
		rows = append(rows, []string{
			period.Label,
			Money(period.Income),
			Money(period.Obligations),
			Signed(period.Balance),
			RiskBadge(period.Risk),
		})
	}

	fmt.Fprint(w, RenderTable(Table{
		Headers: []string{"Período", "Receitas", "Obrigações", "Saldo", "Situação"},
		Rows:    rows,
	}))
}

func writeSimulation(w io.Writer, outcome *simulation.Outcome) {
	r := outcome.Result
	fmt.Fprintln(w, RenderTitle("SIMULAÇÃO DE COMPRA"))
	fmt.Fprintf(w, "  Produto: %s\n", r.Product)
	fmt.Fprintf(w, "  Preço: %s em %d parcelas de %s\n", Money(r.Price), r.Term, Money(r.MonthlyPayment))
	fmt.Fprintf(w, "  Saldo atual: %s\n\n", Signed(r.StartingBalance))

	rows := make([][]string, 0, len(r.Months))
	for _, m := range r.Months {
		rows = append(rows, []string{
			m.Label,
			Money(m.Installment),
			Signed(m.BalanceWithout),
			Signed(m.BalanceWith),
			RiskBadge(m.StateWith),
		})
	}
	fmt.Fprint(w, RenderTable(Table{
		Headers: []string{"Mês", "Parcela", "Sem compra", "Com compra", "Situação"},
		Rows:    rows,
	}))

	fmt.Fprintf(w, "\n  Veredito: %s\n", VerdictBadge(r.Verdict))
	if r.CriticalMonth != nil {
		fmt.Fprintf(w, "  Primeiro mês crítico: %s\n", *r.CriticalMonth)
	}
	fmt.Fprintf(w, "  Menor saldo: %s (%s)\n", Signed(r.MinimumBalance), r.MinimumBalanceMonth)
	if outcome.Record != nil {
		fmt.Fprintf(w, "  %s\n", Muted("Registro: %s", outcome.Record.Id))
	}
}

func writeAlerts(w io.Writer, alerts []alert.Alert) {
	fmt.Fprintln(w, RenderTitle("PRÓXIMOS PAGAMENTOS"))
	if len(alerts) == 0 {
		fmt.Fprintf(w, "  %s\n", Muted("Nenhum pagamento nos próximos dias."))
		return
	}

	rows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, []string{
			a.Name,
			Money(a.Amount),
			a.DueDate.Format("02/01/2006"),
			strconv.Itoa(a.DaysRemaining),
			urgencyBadge(a.Urgency),
		})
	}
	fmt.Fprint(w, RenderTable(Table{
		Headers: []string{"Item", "Valor", "Vencimento", "Dias", "Urgência"},
		Rows:    rows,
	}))
}

func urgencyBadge(u alert.Urgency) string {
	switch u {
	case alert.UrgencyUrgent:
		return redStyle.Render("URGENTE")
	case alert.UrgencySoon:
		return yellowStyle.Render("EM BREVE")
	default:
		return greenStyle.Render("AGENDADO")
	}
}

func writeDashboard(w io.Writer, d *dashboard.Dashboard) {
	fmt.Fprintln(w, RenderTitle("PAINEL"))
	fmt.Fprintf(w, "  Saldo atual: %s\n", Signed(d.CurrentBalance))
	fmt.Fprintf(w, "  Compromissos de %s: %s\n", d.Month, Money(d.MonthlyCommitments))
	fmt.Fprintf(w, "  Receitas recorrentes: %s\n", Money(d.RecurringIncome))
	if d.LowestPeriod != nil {
		fmt.Fprintf(w, "  Menor saldo projetado: %s (%s) %s\n", Signed(d.MinProjectedBalance), d.LowestPeriod.Label, RiskBadge(d.LowestPeriod.Risk))
	} else {
		fmt.Fprintf(w, "  Menor saldo projetado: %s\n", Signed(d.MinProjectedBalance))
	}
	fmt.Fprintln(w)

	if len(d.RecentEntries) == 0 {
		fmt.Fprintf(w, "  %s\n", Muted("Nenhum lançamento registrado."))
		return
	}

	rows := make([][]string, 0, len(d.RecentEntries))
	for _, e := range d.RecentEntries {
		kind := "Receita"
		if e.Kind == ledger.KindExpense {
			kind = "Despesa"
		}
		rows = append(rows, []string{
			e.Date.Format("02/01/2006"),
			e.Description,
			kind,
			Money(e.Amount),
		})
	}
	fmt.Fprint(w, RenderTable(Table{
		Headers: []string{"Data", "Descrição", "Tipo", "Valor"},
		Rows:    rows,
	}))
}
