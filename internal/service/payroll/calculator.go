package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/joabe-nascimento/talents-flow/internal/domain/payroll"
)

var oneHundred = decimal.NewFromInt(100)

// TaxBreakdown holds the statutory deductions derived from one gross
// salary. Rates are effective percentages of gross, not bracket rates.
type TaxBreakdown struct {
	SocialSecurityValue decimal.Decimal
	SocialSecurityRate  decimal.Decimal
	IncomeTaxValue      decimal.Decimal
	IncomeTaxRate       decimal.Decimal
	StatutoryFundValue  decimal.Decimal
}

// TaxCalculator applies the statutory tables. Social security is a
// flat-rate bracket over full gross with a ceiling; income tax is
// marginal over gross minus social security; the fund contribution is
// a single rate over gross. All values rounded to 2 decimal places.
type TaxCalculator struct {
	socialSecurity payroll.FlatRateTable
	incomeTax      payroll.MarginalTable
	fundRate       decimal.Decimal
}

func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{
		socialSecurity: payroll.DefaultSocialSecurityTable(),
		incomeTax:      payroll.DefaultIncomeTaxTable(),
		fundRate:       payroll.DefaultStatutoryFundRate(),
	}
}

// NewTaxCalculatorWithTables builds a calculator over custom tables,
// for when the statutory rates change.
func NewTaxCalculatorWithTables(ss payroll.FlatRateTable, it payroll.MarginalTable, fundRate decimal.Decimal) *TaxCalculator {
	return &TaxCalculator{socialSecurity: ss, incomeTax: it, fundRate: fundRate}
}

func (c *TaxCalculator) Calculate(gross decimal.Decimal) TaxBreakdown {
	ss := c.socialSecurityValue(gross)
	it := c.incomeTaxValue(gross.Sub(ss))
	fund := gross.Mul(c.fundRate).Round(2)

	return TaxBreakdown{
		SocialSecurityValue: ss,
		SocialSecurityRate:  effectiveRate(ss, gross),
		IncomeTaxValue:      it,
		IncomeTaxRate:       effectiveRate(it, gross),
		StatutoryFundValue:  fund,
	}
}

func (c *TaxCalculator) socialSecurityValue(gross decimal.Decimal) decimal.Decimal {
	for _, band := range c.socialSecurity.Bands {
		if gross.LessThanOrEqual(band.UpTo) {
			return gross.Mul(band.Rate).Round(2)
		}
	}
	return c.socialSecurity.Ceiling
}

func (c *TaxCalculator) incomeTaxValue(base decimal.Decimal) decimal.Decimal {
	rate, deduction := c.incomeTax.TopRate, c.incomeTax.TopDeduction
	for _, band := range c.incomeTax.Bands {
		if base.LessThanOrEqual(band.UpTo) {
			rate, deduction = band.Rate, band.Deduction
			break
		}
	}

	tax := base.Mul(rate).Sub(deduction).Round(2)
	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}

// effectiveRate is the deduction as a percentage of gross, 2 decimal
// places. Zero gross yields a zero rate rather than a division error.
func effectiveRate(value, gross decimal.Decimal) decimal.Decimal {
	if gross.IsZero() {
		return decimal.Zero
	}
	return value.DivRound(gross, 4).Mul(oneHundred)
}
