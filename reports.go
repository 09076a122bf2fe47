package pnl

import "time"

// Adjustments carries the caller-supplied scalars that the engine does
// not derive itself: manual accounting adjustments, the externally
// computed Volcker components, the greek shift scenario, the carry
// parameters and the cash flows.
type Adjustments struct {
	FXRevaluation  Money
	Provisions     Money
	MarketMaking   Money
	Hedging        Money
	Proprietary    Money
	OverheadCosts  Money
	CapitalCharges Money
	Allocations    Money

	PriceChange      Rate
	VolatilityChange Rate

	RateDiff      Rate
	HoldingPeriod Quantity

	CashInflows  []Money
	CashOutflows []Money
}

// DecompositionReport contains every PnL decomposition for one book,
// computed at a single point in time.
type DecompositionReport struct {
	AsOf              time.Time
	ReportingCurrency string

	Clean           Money
	Hypothetical    Money
	Books           Money
	GeneralLedger   Money
	Volcker         Money
	Finance         Money
	FundingCost     Money
	Greek           Money
	Carry           Money
	CashFlow        Money
	MarkToMarket    Money
	MarkToModel     Money
	AggregateGreeks Money

	Adjustments Adjustments
}

// NewDecompositionReport runs every decomposition with the given
// adjustments. It fails when the mark-to-X computations find the
// market data misaligned with the position book.
func (e *Engine) NewDecompositionReport(adj Adjustments) (*DecompositionReport, error) {
	mtm, err := e.MarkToMarketPnL()
	if err != nil {
		return nil, err
	}
	mtmodel, err := e.MarkToModelPnL()
	if err != nil {
		return nil, err
	}

	return &DecompositionReport{
		AsOf:              time.Now(),
		ReportingCurrency: e.ReportingCurrency,
		Clean:             e.CleanPnL(),
		Hypothetical:      e.HypotheticalPnL(),
		Books:             e.BooksPnL(),
		GeneralLedger:     e.GLPnL(adj.FXRevaluation, adj.Provisions),
		Volcker:           e.VolckerPnL(adj.MarketMaking, adj.Hedging, adj.Proprietary),
		Finance:           e.FinancePnL(adj.OverheadCosts, adj.CapitalCharges, adj.Allocations),
		FundingCost:       e.FundingCostPnL(),
		Greek:             e.GreekPnL(adj.PriceChange, adj.VolatilityChange),
		Carry:             e.CarryPnL(adj.RateDiff, adj.HoldingPeriod),
		CashFlow:          e.CashFlowPnL(adj.CashInflows, adj.CashOutflows),
		MarkToMarket:      mtm,
		MarkToModel:       mtmodel,
		AggregateGreeks:   e.AggregateGreeksPnL(adj.PriceChange, adj.VolatilityChange),
		Adjustments:       adj,
	}, nil
}
