package entity

import "github.com/shopspring/decimal"

// FinanceKPIs is the ephemeral value object produced by the aggregation engine.
// It is recomputed on every request and never persisted.
//
// MonthlyMean is filter-independent: it always covers the trailing six calendar
// months of outflows regardless of the caller's current view filter, so the
// dashboard keeps a stable baseline. OutflowVariation mirrors MonthlyVariation
// under a second name because external consumers depend on both fields.
type FinanceKPIs struct {
	Balance           decimal.Decimal `json:"saldo"`
	TotalInflow       decimal.Decimal `json:"totalEntradas"`
	TotalOutflow      decimal.Decimal `json:"totalSaidas"`
	NetProfit         decimal.Decimal `json:"lucroLiquido"`
	NetMargin         decimal.Decimal `json:"margemLiquida"`
	AvgOutflowTicket  decimal.Decimal `json:"ticketMedioSaidas"`
	AvgInflowTicket   decimal.Decimal `json:"ticketMedioEntradas"`
	MonthlyMean       decimal.Decimal `json:"mediaMensal"`
	MonthlyVariation  decimal.Decimal `json:"variacaoMensal"`
	OutflowVariation  decimal.Decimal `json:"variacaoSaidas"`
	AbsoluteVariation decimal.Decimal `json:"variacaoAbsoluta"`
	TransactionCount  int             `json:"totalTransacoes"`
}

// CategoryShare is one slice of the expense distribution view.
type CategoryShare struct {
	Category   string          `json:"categoria"`
	Amount     decimal.Decimal `json:"valor"`
	Percentage decimal.Decimal `json:"percentual"`
}
