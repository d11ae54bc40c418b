package payroll

import "github.com/shopspring/decimal"

// FlatRateBand is a social-security style band: when the taxed amount
// falls at or below UpTo, the band's single rate applies to the whole
// amount (the bands are not marginal).
type FlatRateBand struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

// FlatRateTable holds ordered flat-rate bands plus a fixed Ceiling
// returned for any amount above the top band.
type FlatRateTable struct {
	Bands   []FlatRateBand
	Ceiling decimal.Decimal
}

// MarginalBand is an income-tax style band expressed as a rate and a
// subtractive adjustment: tax = base*Rate - Deduction, floored at zero.
type MarginalBand struct {
	UpTo      decimal.Decimal
	Rate      decimal.Decimal
	Deduction decimal.Decimal
}

// MarginalTable holds ordered marginal bands plus the open-ended top
// band applied above the last bound.
type MarginalTable struct {
	Bands        []MarginalBand
	TopRate      decimal.Decimal
	TopDeduction decimal.Decimal
}

// Statutory 2024 tables. These are jurisdiction- and year-specific, so
// they live as data rather than inline branches; callers may substitute
// their own tables when the rates change.

func DefaultSocialSecurityTable() FlatRateTable {
	return FlatRateTable{
		Bands: []FlatRateBand{
			{UpTo: decimal.NewFromFloat(1412.00), Rate: decimal.NewFromFloat(0.075)},
			{UpTo: decimal.NewFromFloat(2666.68), Rate: decimal.NewFromFloat(0.09)},
			{UpTo: decimal.NewFromFloat(4000.03), Rate: decimal.NewFromFloat(0.12)},
			{UpTo: decimal.NewFromFloat(7786.02), Rate: decimal.NewFromFloat(0.14)},
		},
		Ceiling: decimal.NewFromFloat(908.85),
	}
}

func DefaultIncomeTaxTable() MarginalTable {
	return MarginalTable{
		Bands: []MarginalBand{
			{UpTo: decimal.NewFromFloat(2259.20), Rate: decimal.Zero, Deduction: decimal.Zero},
			{UpTo: decimal.NewFromFloat(2826.65), Rate: decimal.NewFromFloat(0.075), Deduction: decimal.NewFromFloat(169.44)},
			{UpTo: decimal.NewFromFloat(3751.05), Rate: decimal.NewFromFloat(0.15), Deduction: decimal.NewFromFloat(381.44)},
			{UpTo: decimal.NewFromFloat(4664.68), Rate: decimal.NewFromFloat(0.225), Deduction: decimal.NewFromFloat(662.77)},
		},
		TopRate:      decimal.NewFromFloat(0.275),
		TopDeduction: decimal.NewFromFloat(896.00),
	}
}

// DefaultStatutoryFundRate is the employer fund contribution rate (8%
// of gross). Not a bracket lookup.
func DefaultStatutoryFundRate() decimal.Decimal {
	return decimal.NewFromFloat(0.08)
}
