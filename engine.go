package pnl

import (
	"errors"
	"fmt"
)

// ErrMisaligned reports that MarketData and PositionBook row counts
// differ for a computation that pairs them row by row.
var ErrMisaligned = errors.New("market data and position book rows are misaligned")

// BookAdjuster transforms the raw position reduction into the books
// view. The default, identity, keeps BooksPnL equal to HypotheticalPnL
// until desk-specific adjustments are given real content.
type BookAdjuster func(Money) Money

// Engine computes the PnL decompositions of one trading book.
//
// It holds read-only references to the caller-owned datasets and keeps
// no state of its own: every computation is a pure reduction over the
// current dataset content, recomputed on each call. Construction
// performs no validation of the datasets; shapes and sign conventions
// are the caller's contract (see CheckAlignment for an opt-in check).
type Engine struct {
	Trades  *TradeLedger
	Book    *PositionBook
	Market  *MarketData
	Funding Rate
	Greeks  GreekSet

	// ReportingCurrency stamps results of computations whose inputs
	// carry no currency of their own (the greek expansion).
	ReportingCurrency string

	// BookAdjust, when non-nil, is applied by BooksPnL on top of the
	// raw position reduction.
	BookAdjust BookAdjuster
}

// NewEngine creates an engine over the given datasets and risk parameters.
func NewEngine(trades *TradeLedger, book *PositionBook, market *MarketData, funding Rate, greeks GreekSet, reportingCurrency string) (*Engine, error) {
	if reportingCurrency != "" {
		if err := ValidateCurrency(reportingCurrency); err != nil {
			return nil, fmt.Errorf("invalid reporting currency: %w", err)
		}
	}
	return &Engine{
		Trades:            trades,
		Book:              book,
		Market:            market,
		Funding:           funding,
		Greeks:            greeks,
		ReportingCurrency: reportingCurrency,
	}, nil
}

// CleanPnL is the realized trading PnL net of transaction costs:
// the sum over all trades of (sell-buy)*quantity - cost.
func (e *Engine) CleanPnL() Money {
	var total Money
	for t := range e.Trades.Trades() {
		total = total.Add(t.SellPrice.Sub(t.BuyPrice).Mul(t.Quantity).Sub(t.Cost))
	}
	return total
}

// HypotheticalPnL is the unrealized PnL of the open positions: the sum
// of priceChange*quantity over the book.
func (e *Engine) HypotheticalPnL() Money {
	var total Money
	for p := range e.Book.Positions() {
		total = total.Add(p.PriceChange.Mul(p.Quantity))
	}
	return total
}

// BooksPnL is the book view of the unrealized PnL: the same reduction
// as HypotheticalPnL passed through the engine's BookAdjust hook.
func (e *Engine) BooksPnL() Money {
	total := e.HypotheticalPnL()
	if e.BookAdjust != nil {
		return e.BookAdjust(total)
	}
	return total
}

// GLPnL is the general-ledger view: BooksPnL plus the manual FX
// revaluation and provision adjustments supplied by the caller.
func (e *Engine) GLPnL(fxRevaluation, provisions Money) Money {
	return e.BooksPnL().Add(fxRevaluation).Add(provisions)
}

// VolckerPnL is the regulatory decomposition. Proprietary trading PnL
// is subtracted: the measure is permitted activity (market making and
// hedging) minus disallowed proprietary activity.
func (e *Engine) VolckerPnL(marketMaking, hedging, proprietary Money) Money {
	return marketMaking.Add(hedging).Sub(proprietary)
}

// FinancePnL is the finance view: total trading PnL (clean plus
// hypothetical) with overhead costs, capital charges and allocations
// layered on top.
func (e *Engine) FinancePnL(overheadCosts, capitalCharges, allocations Money) Money {
	totalTrading := e.CleanPnL().Add(e.HypotheticalPnL())
	return totalTrading.Add(overheadCosts).Add(capitalCharges).Add(allocations)
}

// FundingCostPnL applies the flat funding rate to the book's total
// notional. The result's sign follows the notional sign convention.
func (e *Engine) FundingCostPnL() Money {
	return e.Book.TotalNotional().MulRate(e.Funding)
}

// GreekPnL is the second-order Taylor approximation of the PnL for a
// price shift and a volatility shift:
//
//	delta*dp + 0.5*gamma*dp^2 + vega*dv
//
// The delta term is odd in dp and the gamma term even, so the result is
// symmetric in dp only for a delta-neutral book.
func (e *Engine) GreekPnL(priceChange, volatilityChange Rate) Money {
	return e.greekExpansion(priceChange, volatilityChange)
}

// AggregateGreeksPnL is the portfolio-aggregate entry point for the
// greek approximation. The sensitivities held by the engine are already
// aggregate coefficients, so it delegates to the same expansion as
// GreekPnL; the two names serve the two call contexts.
func (e *Engine) AggregateGreeksPnL(priceChange, volatilityChange Rate) Money {
	return e.greekExpansion(priceChange, volatilityChange)
}

func (e *Engine) greekExpansion(dp, dv Rate) Money {
	delta := e.Greeks.Delta.Mul(dp)
	gamma := R(0.5).Mul(e.Greeks.Gamma).Mul(dp).Mul(dp)
	vega := e.Greeks.Vega.Mul(dv)
	return M(delta.Add(gamma).Add(vega).value, e.ReportingCurrency)
}

// CarryPnL accrues the interest rate differential over each position's
// notional for the holding period.
func (e *Engine) CarryPnL(rateDiff Rate, holdingPeriod Quantity) Money {
	var total Money
	for p := range e.Book.Positions() {
		total = total.Add(p.Notional.MulRate(rateDiff).Mul(holdingPeriod))
	}
	return total
}

// CashFlowPnL is the plain difference between total inflows and total
// outflows. It reads none of the engine's datasets.
func (e *Engine) CashFlowPnL(inflows, outflows []Money) Money {
	var total Money
	for _, in := range inflows {
		total = total.Add(in)
	}
	for _, out := range outflows {
		total = total.Sub(out)
	}
	return total
}

// MarkToMarketPnL revalues the book against current market quotes: the
// sum over aligned rows of (current-previous)*quantity. It fails with
// ErrMisaligned when the two collections have different row counts.
func (e *Engine) MarkToMarketPnL() (Money, error) {
	return e.markPnL(func(r MarkRow) Money { return r.Current.Sub(r.Previous) })
}

// MarkToModelPnL revalues the book against model prices: the sum over
// aligned rows of (model-previousModel)*quantity. Same alignment
// requirement as MarkToMarketPnL.
func (e *Engine) MarkToModelPnL() (Money, error) {
	return e.markPnL(func(r MarkRow) Money { return r.Model.Sub(r.PreviousModel) })
}

func (e *Engine) markPnL(move func(MarkRow) Money) (Money, error) {
	if err := CheckAlignment(e.Market, e.Book); err != nil {
		return Money{}, err
	}
	var total Money
	i := 0
	for p := range e.Book.Positions() {
		total = total.Add(move(e.Market.Row(i)).Mul(p.Quantity))
		i++
	}
	return total, nil
}
