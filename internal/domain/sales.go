package domain

import "github.com/shopspring/decimal"

type SalesGranularity string

const (
	SalesGranularityMonthly SalesGranularity = "monthly"
	SalesGranularityWeekly  SalesGranularity = "weekly"
)

// SalesPoint representa a receita e o lucro de um período (mês ou dia da semana)
type SalesPoint struct {
	Period  string          `json:"period"` // Rótulo livre, ex: "Июль 2025" ou "Авг 01"
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// PeriodSales é o resultado da busca de um período. Found=false implica receita e lucro zerados
type PeriodSales struct {
	Period  string          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
	Found   bool            `json:"found"`
}

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// SalesTrend compara um período com o período imediatamente anterior da série
type SalesTrend struct {
	Period               string          `json:"period"`
	PreviousPeriod       string          `json:"previous_period,omitempty"`
	RevenueChange        decimal.Decimal `json:"revenue_change"`
	RevenueChangePercent decimal.Decimal `json:"revenue_change_percent"`
	ProfitChange         decimal.Decimal `json:"profit_change"`
	Direction            TrendDirection  `json:"direction"`
}
