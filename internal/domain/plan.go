package domain

import (
	"github.com/shopspring/decimal"
)

// DebtPayment records a lump-sum payment made against one debt.
type DebtPayment struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	FullyPaid bool            `json:"fully_paid"`
}

// Calculations are the derived, year-scoped metrics of a plan year.
type Calculations struct {
	// Start of year
	StartingAssets                  decimal.Decimal   `json:"starting_total_assets_this_year"`
	StartingLiabilities             decimal.Decimal   `json:"starting_total_liabilities_this_year"`
	StartingNetWorth                decimal.Decimal   `json:"starting_net_worth_this_year"`
	StartingHelocRoom               decimal.Decimal   `json:"starting_heloc_room"`
	StartingHelocBalance            decimal.Decimal   `json:"starting_heloc_balance"`
	StartingMortgageBalance         decimal.Decimal   `json:"starting_mortgage_balance"`
	StartingPolicyLoanBalance       decimal.Decimal   `json:"starting_policy_loan_balance"`
	InitialGrossPolicyLoanAvailable decimal.Decimal   `json:"initial_gross_policy_loan_available"`
	InitialNetPolicyLoanAvailable   decimal.Decimal   `json:"initial_net_policy_loan_available"`
	EndingPolicyCashValue           decimal.Decimal   `json:"ending_policy_cash_value"`
	CreditInitialMonthlyPayments    []decimal.Decimal `json:"credit_item_initial_monthly_payments,omitempty"`
	LoanInitialMonthlyPayments      []decimal.Decimal `json:"loan_item_initial_monthly_payments,omitempty"`

	// Premium
	PolicyPremiumCost                   decimal.Decimal `json:"policy_premium_cost"`
	PremiumFundedFromSurplus            bool            `json:"premium_funded_from_surplus"`
	FirstHelocDraw                      decimal.Decimal `json:"first_heloc_draw"`
	HelocBalanceAfterFirstDraw          decimal.Decimal `json:"heloc_balance_after_first_draw"`
	HelocRoomAfterFirstDraw             decimal.Decimal `json:"heloc_room_after_first_draw"`
	SupplementRequiredForInitialPremium decimal.Decimal `json:"supplement_required_for_initial_premium_payment"`

	// Borrow
	AdditionalPolicyLoanTaken                        decimal.Decimal `json:"additional_policy_loan_taken"`
	PolicyLoanBalanceAfterAdditionalLoan             decimal.Decimal `json:"policy_loan_balance_after_additional_loan"`
	HelocRoomIncreaseAfterAdditionalPrincipalPayment decimal.Decimal `json:"heloc_room_increase_after_additional_principal_payment"`

	// Principal
	TotalOutstandingDebtBalances                   decimal.Decimal `json:"total_outstanding_debt_balances"`
	AdditionalMortgagePrincipalPayment             decimal.Decimal `json:"additional_mortgage_principal_payment"`
	MortgageBalanceAfterAdditionalPrincipalPayment decimal.Decimal `json:"mortgage_balance_after_additional_principal_payment"`
	HelocRoomAfterAdditionalPrincipalPayment       decimal.Decimal `json:"heloc_room_after_additional_principal_payment"`

	// Debts
	CreditPayments                                  []DebtPayment   `json:"credit_payments,omitempty"`
	LoanPayments                                    []DebtPayment   `json:"loan_payments,omitempty"`
	TotalCreditPaidThisYear                         decimal.Decimal `json:"total_credit_paid_this_year"`
	TotalLoanPaidThisYear                           decimal.Decimal `json:"total_loan_paid_this_year"`
	TotalDebtPaidThisYear                           decimal.Decimal `json:"total_debt_paid_this_year"`
	AnnualizedCreditPaymentsRedirectedThisYear      decimal.Decimal `json:"annualized_credit_payments_redirected_this_year"`
	AnnualizedLoanPaymentsRedirectedThisYear        decimal.Decimal `json:"annualized_loan_payments_redirected_this_year"`
	TotalAnnualizedCreditPaymentsRedirectedSoFar    decimal.Decimal `json:"total_annualized_credit_payments_redirected_so_far"`
	TotalAnnualizedLoanPaymentsRedirectedSoFar      decimal.Decimal `json:"total_annualized_loan_payments_redirected_so_far"`
	TotalAnnualizedDebtPaymentsRedirectedSoFar      decimal.Decimal `json:"total_annualized_debt_payments_redirected_so_far"`
	ExcessHelocFundsUsedToPayBackPolicyLoanThisYear decimal.Decimal `json:"excess_heloc_funds_used_to_pay_back_policy_loan_this_year"`
	SecondHelocDraw                                 decimal.Decimal `json:"second_heloc_draw"`
	HelocBalanceAfterSecondDraw                     decimal.Decimal `json:"heloc_balance_after_second_draw"`
	HelocRoomAfterSecondDraw                        decimal.Decimal `json:"heloc_room_after_second_draw"`

	// Repay
	MonthlySurplusBudget                   decimal.Decimal `json:"monthly_surplus_budget"`
	AnnualSurplusBudgetAvailable           decimal.Decimal `json:"annual_surplus_budget_available"`
	PolicyLoanInterestThisYear             decimal.Decimal `json:"policy_loan_interest_this_year"`
	PolicyLoanRepaidFromRedirectedPayments decimal.Decimal `json:"policy_loan_repaid_from_redirected_payments"`
	PolicyLoanRepaidFromSurplus            decimal.Decimal `json:"policy_loan_repaid_from_surplus"`
	HelocRepaidFromRedirectedPayments      decimal.Decimal `json:"heloc_repaid_from_redirected_payments"`
	AnnualizedHelocPrincipalPaid           decimal.Decimal `json:"annualized_total_heloc_principal_paid"`
	AnnualizedHelocInterestPaid            decimal.Decimal `json:"annualized_total_heloc_interest_paid"`
	PrincipalPortionOfEMIForNextYear       decimal.Decimal `json:"principal_portion_of_emi_for_next_year"`
	InterestPortionOfEMIForNextYear        decimal.Decimal `json:"interest_portion_of_emi_for_next_year"`
	TotalHelocRoomAfterEMI                 decimal.Decimal `json:"total_heloc_room_after_emi"`

	// End of year
	EndingMortgageBalance   decimal.Decimal `json:"ending_mortgage_balance"`
	EndingHelocBalance      decimal.Decimal `json:"ending_heloc_balance"`
	EndingHelocRoom         decimal.Decimal `json:"ending_heloc_room"`
	EndingPolicyLoanBalance decimal.Decimal `json:"ending_policy_loan_balance"`
	EndingAssets            decimal.Decimal `json:"ending_total_assets_this_year"`
	EndingLiabilities       decimal.Decimal `json:"ending_total_liabilities_this_year"`
	EndingNetWorth          decimal.Decimal `json:"ending_net_worth_this_year"`
}

// amounts lists every scalar money field so they can be rounded together.
func (c *Calculations) amounts() []*decimal.Decimal {
	return []*decimal.Decimal{
		&c.StartingAssets, &c.StartingLiabilities, &c.StartingNetWorth,
		&c.StartingHelocRoom, &c.StartingHelocBalance, &c.StartingMortgageBalance,
		&c.StartingPolicyLoanBalance, &c.InitialGrossPolicyLoanAvailable, &c.InitialNetPolicyLoanAvailable,
		&c.EndingPolicyCashValue,
		&c.PolicyPremiumCost, &c.FirstHelocDraw, &c.HelocBalanceAfterFirstDraw, &c.HelocRoomAfterFirstDraw,
		&c.SupplementRequiredForInitialPremium,
		&c.AdditionalPolicyLoanTaken, &c.PolicyLoanBalanceAfterAdditionalLoan,
		&c.HelocRoomIncreaseAfterAdditionalPrincipalPayment,
		&c.TotalOutstandingDebtBalances, &c.AdditionalMortgagePrincipalPayment,
		&c.MortgageBalanceAfterAdditionalPrincipalPayment, &c.HelocRoomAfterAdditionalPrincipalPayment,
		&c.TotalCreditPaidThisYear, &c.TotalLoanPaidThisYear, &c.TotalDebtPaidThisYear,
		&c.AnnualizedCreditPaymentsRedirectedThisYear, &c.AnnualizedLoanPaymentsRedirectedThisYear,
		&c.TotalAnnualizedCreditPaymentsRedirectedSoFar, &c.TotalAnnualizedLoanPaymentsRedirectedSoFar,
		&c.TotalAnnualizedDebtPaymentsRedirectedSoFar, &c.ExcessHelocFundsUsedToPayBackPolicyLoanThisYear,
		&c.SecondHelocDraw, &c.HelocBalanceAfterSecondDraw, &c.HelocRoomAfterSecondDraw,
		&c.MonthlySurplusBudget, &c.AnnualSurplusBudgetAvailable, &c.PolicyLoanInterestThisYear,
		&c.PolicyLoanRepaidFromRedirectedPayments, &c.PolicyLoanRepaidFromSurplus,
		&c.HelocRepaidFromRedirectedPayments, &c.AnnualizedHelocPrincipalPaid, &c.AnnualizedHelocInterestPaid,
		&c.PrincipalPortionOfEMIForNextYear, &c.InterestPortionOfEMIForNextYear, &c.TotalHelocRoomAfterEMI,
		&c.EndingMortgageBalance, &c.EndingHelocBalance, &c.EndingHelocRoom, &c.EndingPolicyLoanBalance,
		&c.EndingAssets, &c.EndingLiabilities, &c.EndingNetWorth,
	}
}

// Round rounds every money field to cents in place.
func (c *Calculations) Round() {
	for _, p := range c.amounts() {
		*p = p.Round(2)
	}
	for i := range c.CreditInitialMonthlyPayments {
		c.CreditInitialMonthlyPayments[i] = c.CreditInitialMonthlyPayments[i].Round(2)
	}
	for i := range c.LoanInitialMonthlyPayments {
		c.LoanInitialMonthlyPayments[i] = c.LoanInitialMonthlyPayments[i].Round(2)
	}
	for i := range c.CreditPayments {
		c.CreditPayments[i].Amount = c.CreditPayments[i].Amount.Round(2)
	}
	for i := range c.LoanPayments {
		c.LoanPayments[i].Amount = c.LoanPayments[i].Amount.Round(2)
	}
}

// Clone copies the calculations including their slices.
func (c Calculations) Clone() Calculations {
	out := c
	out.CreditInitialMonthlyPayments = append([]decimal.Decimal(nil), c.CreditInitialMonthlyPayments...)
	out.LoanInitialMonthlyPayments = append([]decimal.Decimal(nil), c.LoanInitialMonthlyPayments...)
	out.CreditPayments = append([]DebtPayment(nil), c.CreditPayments...)
	out.LoanPayments = append([]DebtPayment(nil), c.LoanPayments...)
	return out
}

// PlanYear is one simulated year: the financial state at the end of the
// year plus the metrics derived while simulating it. Year 0 is the
// prepared input.
type PlanYear struct {
	Year           int `json:"year"`
	FinancialState `yaml:",inline"`
	Calculations   Calculations `json:"calculations"`
}

// Plan is the ordered output of a simulation.
type Plan struct {
	Name        string      `json:"name,omitempty"`
	AsOf        Date        `json:"as_of"`
	Secured     bool        `json:"secured"`
	Assumptions Assumptions `json:"assumptions"`
	Years       []PlanYear  `json:"years"`
	// Exhausted is true when the policy schedule ran out before every
	// debt reached zero.
	Exhausted bool `json:"exhausted"`
}

// Final returns the last simulated year.
func (p *Plan) Final() PlanYear {
	if p == nil || len(p.Years) == 0 {
		return PlanYear{}
	}
	return p.Years[len(p.Years)-1]
}
