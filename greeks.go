package pnl

// GreekSet holds the option sensitivity coefficients used by the greek
// PnL approximation. The coefficients are supplied, never derived here.
type GreekSet struct {
	Delta Rate
	Gamma Rate
	Vega  Rate
}
