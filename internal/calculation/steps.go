package calculation

import (
	"time"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// simulator carries what stays fixed for the length of one plan.
type simulator struct {
	assumptions domain.Assumptions
	factors     PolicyLoanFactors
	schedule    []domain.PolicyYear
	asOf        time.Time
	supplement  bool
	debug       bool
	log         Logger
}

// yearState is the plan year being simulated. It is private to the
// simulator until the year is finished and appended to the plan.
type yearState struct {
	year   int
	state  domain.FinancialState
	calc   domain.Calculations
	policy domain.PolicyYear

	// proceeds is the policy loan cash not yet applied to any debt.
	proceeds decimal.Decimal
}

// secured reports whether the year carries a mortgage and HELOC.
func (ys *yearState) secured() bool {
	return ys.state.Property != nil
}

func (ys *yearState) heloc() *domain.Heloc {
	return ensureHeloc(ys.state.Property)
}

// startOffset is the month offset of the start of the year relative to the
// as-of date; endOffset is the start of the following year.
func (ys *yearState) startOffset() int { return 12 * (ys.year - 1) }
func (ys *yearState) endOffset() int   { return 12 * ys.year }

func (s *simulator) debugf(format string, args ...any) {
	if s.debug {
		s.log.Debugf(format, args...)
	}
}

func (s *simulator) room(ys *yearState) decimal.Decimal {
	return refreshProperty(ys.state.Property, s.assumptions.MinimumHelocEquity)
}

// helocAvailable reports whether the year started with enough HELOC room
// to fund the whole premium.
func (s *simulator) helocAvailable(ys *yearState) bool {
	return ys.secured() && ys.calc.StartingHelocRoom.GreaterThanOrEqual(ys.policy.Cost())
}

// prepare turns the input into year 0: balances brought to the as-of date,
// minimum payments and totals computed, and nothing borrowed yet.
func (s *simulator) prepare(input domain.FinancialState) domain.PlanYear {
	st := input.Clone()

	if st.Property != nil {
		prepareLoan(st.Property.Mortgage, s.asOf)
		ensureHeloc(st.Property)
		st.Property.Heloc.Balance = money.NonNegative(st.Property.Heloc.Balance)
		refreshProperty(st.Property, s.assumptions.MinimumHelocEquity)
	}
	for i := range st.Loans {
		prepareLoan(&st.Loans[i], s.asOf)
	}
	for i := range st.Credit {
		c := &st.Credit[i]
		refreshCredit(c)
		if !c.InitialMinimumPayment.IsPositive() {
			c.InitialMinimumPayment = c.MinimumPayment
		}
	}
	st.Expenses.PolicyPremium = zero
	RecalculateTotals(&st)

	var calc domain.Calculations
	for _, i := range byRateDesc(len(st.Credit), func(i int) decimal.Decimal { return st.Credit[i].InterestRate }) {
		calc.CreditInitialMonthlyPayments = append(calc.CreditInitialMonthlyPayments, st.Credit[i].InitialMinimumPayment)
	}
	for _, i := range byRateDesc(len(st.Loans), func(i int) decimal.Decimal { return st.Loans[i].InterestRate }) {
		calc.LoanInitialMonthlyPayments = append(calc.LoanInitialMonthlyPayments, st.Loans[i].InitialMonthlyPayment)
	}

	assets, liabilities, net := BalanceSheet(st, zero, zero)
	calc.StartingAssets, calc.StartingLiabilities, calc.StartingNetWorth = assets, liabilities, net
	calc.EndingAssets, calc.EndingLiabilities, calc.EndingNetWorth = assets, liabilities, net
	calc.StartingMortgageBalance = mortgageBalance(st.Property)
	calc.EndingMortgageBalance = calc.StartingMortgageBalance
	calc.StartingHelocBalance = helocBalance(st.Property)
	calc.EndingHelocBalance = calc.StartingHelocBalance
	if st.Property != nil {
		calc.StartingHelocRoom = st.Property.Heloc.RoomAvailable
		calc.EndingHelocRoom = calc.StartingHelocRoom
	}
	calc.MonthlySurplusBudget = money.NonNegative(st.Totals.MonthlyFinalSurplus)
	calc.AnnualSurplusBudgetAvailable = money.Annual(calc.MonthlySurplusBudget)
	calc.Round()

	return domain.PlanYear{Year: 0, FinancialState: st, Calculations: calc}
}

// simulateYear derives plan year `year` from the previous one.
func (s *simulator) simulateYear(prev domain.PlanYear, year int) domain.PlanYear {
	ys := s.initialize(prev, year)
	s.payPremium(ys)
	s.borrow(ys)
	if ys.secured() {
		s.payMortgagePrincipal(ys)
	}
	s.payDebts(ys)
	s.repay(ys)
	return s.finish(ys)
}

// initialize clones the prior year, applies growth, brings every balance to
// the start of the year and records the opening position.
func (s *simulator) initialize(prev domain.PlanYear, year int) *yearState {
	ys := &yearState{
		year:   year,
		state:  prev.FinancialState.Clone(),
		policy: s.schedule[year-1],
	}
	if year > 1 {
		s.grow(&ys.state)
	}

	prevCalc := prev.Calculations
	ys.calc = domain.Calculations{
		CreditInitialMonthlyPayments:                 append([]decimal.Decimal(nil), prevCalc.CreditInitialMonthlyPayments...),
		LoanInitialMonthlyPayments:                   append([]decimal.Decimal(nil), prevCalc.LoanInitialMonthlyPayments...),
		TotalAnnualizedCreditPaymentsRedirectedSoFar: prevCalc.TotalAnnualizedCreditPaymentsRedirectedSoFar,
		TotalAnnualizedLoanPaymentsRedirectedSoFar:   prevCalc.TotalAnnualizedLoanPaymentsRedirectedSoFar,
		TotalAnnualizedDebtPaymentsRedirectedSoFar:   prevCalc.TotalAnnualizedDebtPaymentsRedirectedSoFar,
	}
	calc := &ys.calc
	st := &ys.state
	offset := ys.startOffset()

	st.Expenses.PolicyPremium = zero
	room := zero
	if ys.secured() {
		refreshLoan(st.Property.Mortgage, s.asOf, offset)
		room = s.room(ys)
	}
	for i := range st.Loans {
		refreshLoan(&st.Loans[i], s.asOf, offset)
	}
	for i := range st.Credit {
		refreshCredit(&st.Credit[i])
	}
	RecalculateTotals(st)

	startingPolicyLoan := prevCalc.EndingPolicyLoanBalance
	calc.StartingAssets, calc.StartingLiabilities, calc.StartingNetWorth =
		BalanceSheet(*st, startingPolicyLoan, prevCalc.EndingPolicyCashValue)

	calc.StartingHelocRoom = money.Cents(room)
	calc.StartingPolicyLoanBalance = startingPolicyLoan
	calc.EndingPolicyLoanBalance = startingPolicyLoan
	calc.PolicyPremiumCost = ys.policy.Cost()

	gross := s.factors.Available(year, s.schedule, zero)
	if year == 1 && ys.secured() && !room.GreaterThan(calc.PolicyPremiumCost) && !s.supplement {
		// Nothing is lent in year one unless the HELOC can carry the
		// first premium or the client supplements it.
		gross = zero
	}
	calc.InitialGrossPolicyLoanAvailable = gross
	if year == 1 {
		calc.InitialNetPolicyLoanAvailable = gross
	} else {
		calc.InitialNetPolicyLoanAvailable = s.factors.Available(year, s.schedule, startingPolicyLoan)
	}
	calc.EndingPolicyCashValue = ys.policy.TotalCashValue

	calc.StartingHelocBalance = helocBalance(st.Property)
	calc.EndingHelocBalance = calc.StartingHelocBalance
	calc.StartingMortgageBalance = mortgageBalance(st.Property)

	s.debugf("year %d: start net worth %s, policy loan available %s, heloc room %s",
		year, calc.StartingNetWorth.StringFixed(2), calc.InitialNetPolicyLoanAvailable.StringFixed(2), calc.StartingHelocRoom.StringFixed(2))
	return ys
}

// grow applies a year of income and investment growth.
func (s *simulator) grow(st *domain.FinancialState) {
	for i := range st.People {
		p := &st.People[i]
		factor := money.GrowthFactor(money.OrDefault(p.YearOnYearGrowth, s.assumptions.IncomeGrowthRate))
		p.MonthlyNetIncome = p.MonthlyNetIncome.Mul(factor)
		p.MonthlyBonusesDividends = p.MonthlyBonusesDividends.Mul(factor)
		p.MonthlyOtherIncome = p.MonthlyOtherIncome.Mul(factor)
	}
	for i := range st.Investments {
		inv := &st.Investments[i]
		factor := money.GrowthFactor(money.OrDefault(inv.AnnualGrowth, s.assumptions.InvestmentGrowthRate))
		inv.Balance = inv.Balance.Mul(factor)
	}
}

// payPremium funds this year's premium and deposit, from the HELOC when
// the room allows and from the monthly surplus otherwise.
func (s *simulator) payPremium(ys *yearState) {
	calc := &ys.calc
	cost := calc.PolicyPremiumCost
	if !ys.secured() {
		s.payPremiumFromSurplus(ys, cost)
		return
	}

	heloc := ys.heloc()
	policyLoan := calc.EndingPolicyLoanBalance
	if onlyPolicyLoanOwed(ys.state, policyLoan) ||
		(onlyHelocOwed(ys.state, policyLoan) && calc.InitialNetPolicyLoanAvailable.GreaterThanOrEqual(heloc.Balance)) {
		s.payPremiumFromSurplus(ys, cost)
		return
	}

	room := calc.StartingHelocRoom
	draw := cost
	switch {
	case room.IsNegative(), room.LessThan(cost) && ys.year > 1:
		s.payPremiumFromSurplus(ys, cost)
		return
	case room.LessThan(cost):
		if !s.supplement {
			s.payPremiumFromSurplus(ys, cost)
			return
		}
		draw = room
		calc.SupplementRequiredForInitialPremium = cost.Sub(room)
	}

	drawHeloc(heloc, draw)
	calc.FirstHelocDraw = draw
	calc.HelocBalanceAfterFirstDraw = heloc.Balance
	calc.HelocRoomAfterFirstDraw = s.room(ys)
	calc.EndingHelocBalance = heloc.Balance
	s.debugf("year %d: premium %s drawn on heloc", ys.year, draw.StringFixed(2))
}

func (s *simulator) payPremiumFromSurplus(ys *yearState, cost decimal.Decimal) {
	ys.state.Expenses.PolicyPremium = money.Monthly(cost)
	RecalculateTotals(&ys.state)
	ys.calc.PremiumFundedFromSurplus = true
	s.debugf("year %d: premium %s paid from surplus budget", ys.year, cost.StringFixed(2))
}

// borrow takes this year's policy loan, capped at what is still owed.
func (s *simulator) borrow(ys *yearState) {
	calc := &ys.calc
	st := &ys.state
	available := calc.InitialNetPolicyLoanAvailable

	owed := creditBalances(st.Credit).Add(loanBalances(st.Loans))
	if ys.secured() {
		owed = owed.Add(calc.StartingMortgageBalance)
	}
	taken := zero
	if owed.IsPositive() {
		taken = money.Min(available, owed)
	}

	if ys.secured() && onlyHelocOwed(*st, calc.EndingPolicyLoanBalance) && available.GreaterThanOrEqual(ys.heloc().Balance) {
		heloc := ys.heloc()
		taken = heloc.Balance
		heloc.Balance = zero
		s.room(ys)
		calc.EndingHelocBalance = zero
		ys.proceeds = zero
	} else {
		ys.proceeds = taken
	}

	calc.AdditionalPolicyLoanTaken = taken
	if ys.secured() {
		calc.HelocRoomIncreaseAfterAdditionalPrincipalPayment = taken
	}
	calc.PolicyLoanBalanceAfterAdditionalLoan = calc.StartingPolicyLoanBalance.Add(taken)
	calc.EndingPolicyLoanBalance = calc.PolicyLoanBalanceAfterAdditionalLoan
	s.debugf("year %d: policy loan taken %s", ys.year, taken.StringFixed(2))
}

// payMortgagePrincipal applies the policy loan as one-off extra principal
// on the mortgage.
func (s *simulator) payMortgagePrincipal(ys *yearState) {
	calc := &ys.calc
	st := &ys.state
	mortgage := st.Property.Mortgage

	calc.HelocRoomAfterAdditionalPrincipalPayment = s.room(ys)
	if !calc.StartingMortgageBalance.IsPositive() {
		refreshLoan(mortgage, s.asOf, ys.endOffset())
		RecalculateTotals(st)
		return
	}

	outstanding := creditBalances(st.Credit).Add(loanBalances(st.Loans))
	calc.TotalOutstandingDebtBalances = outstanding

	extra := calc.AdditionalPolicyLoanTaken
	if !s.helocAvailable(ys) && calc.StartingHelocRoom.IsNegative() {
		// Without HELOC room the consumer debts are paid straight from the
		// loan, so only what is left over reaches the mortgage.
		extra = money.NonNegative(extra.Sub(outstanding))
	}
	extra = money.Cents(extra)

	calc.AdditionalMortgagePrincipalPayment = payLoan(mortgage, extra, s.asOf, ys.startOffset())
	ys.proceeds = money.NonNegative(ys.proceeds.Sub(calc.AdditionalMortgagePrincipalPayment))
	calc.MortgageBalanceAfterAdditionalPrincipalPayment = mortgage.CurrentBalance
	if mortgage.FullyPaid {
		RecalculateTotals(st)
	}
	calc.HelocRoomAfterAdditionalPrincipalPayment = s.room(ys)
	s.debugf("year %d: extra mortgage principal %s, balance now %s",
		ys.year, calc.AdditionalMortgagePrincipalPayment.StringFixed(2), mortgage.CurrentBalance.StringFixed(2))
}

// payDebts runs the waterfall. Loan proceeds the mortgage did not absorb
// are spent first; with HELOC room available the rest, up to the loan
// taken, is drawn on the HELOC but never past its current room.
func (s *simulator) payDebts(ys *yearState) {
	calc := &ys.calc
	st := &ys.state
	drawOnHeloc := s.helocAvailable(ys)

	cash := ys.proceeds
	funds := cash
	if drawOnHeloc {
		funds = money.Min(calc.AdditionalPolicyLoanTaken, cash.Add(money.NonNegative(s.room(ys))))
	}

	res := PayDownDebts(funds, st.Credit, st.Loans, s.asOf, ys.startOffset())
	spent := res.Paid()

	calc.CreditPayments = res.CreditPayments
	calc.LoanPayments = res.LoanPayments
	calc.TotalCreditPaidThisYear = res.CreditPaid
	calc.TotalLoanPaidThisYear = res.LoanPaid
	calc.TotalDebtPaidThisYear = res.Paid()
	calc.AnnualizedCreditPaymentsRedirectedThisYear = money.Annual(res.CreditRedirected)
	calc.AnnualizedLoanPaymentsRedirectedThisYear = money.Annual(res.LoanRedirected)

	creditSoFar, loanSoFar := RedirectedSoFar(st.Credit, st.Loans)
	calc.TotalAnnualizedCreditPaymentsRedirectedSoFar = money.Annual(creditSoFar)
	calc.TotalAnnualizedLoanPaymentsRedirectedSoFar = money.Annual(loanSoFar)
	calc.TotalAnnualizedDebtPaymentsRedirectedSoFar = calc.TotalAnnualizedCreditPaymentsRedirectedSoFar.Add(calc.TotalAnnualizedLoanPaymentsRedirectedSoFar)

	// Leftover funds go to the policy loan, unless it is all that is owed:
	// borrowing from the policy to repay the policy goes nowhere.
	policyLoan := calc.EndingPolicyLoanBalance
	if res.Remaining.IsPositive() && policyLoan.IsPositive() && !onlyPolicyLoanOwed(*st, policyLoan) {
		pay := money.Min(res.Remaining, policyLoan)
		calc.EndingPolicyLoanBalance = policyLoan.Sub(pay)
		calc.ExcessHelocFundsUsedToPayBackPolicyLoanThisYear = pay
		spent = spent.Add(pay)
	}
	ys.proceeds = money.NonNegative(cash.Sub(spent))

	drawn := zero
	if drawOnHeloc {
		drawn = money.NonNegative(spent.Sub(cash))
	}

	if ys.secured() {
		heloc := ys.heloc()
		drawHeloc(heloc, drawn)
		calc.SecondHelocDraw = drawn
		calc.HelocBalanceAfterSecondDraw = heloc.Balance
		calc.HelocRoomAfterSecondDraw = s.room(ys)
		calc.EndingHelocBalance = heloc.Balance
	}
	s.debugf("year %d: paid %s of consumer debt, redirected so far %s/yr",
		ys.year, calc.TotalDebtPaidThisYear.StringFixed(2), calc.TotalAnnualizedDebtPaymentsRedirectedSoFar.StringFixed(2))
}

// repay walks the twelve months of the year: the policy loan compounds,
// redirected payments go to the policy loan and then the HELOC, and the
// surplus budget goes to the HELOC and then the policy loan.
func (s *simulator) repay(ys *yearState) {
	calc := &ys.calc
	st := &ys.state

	redirected := money.Monthly(calc.TotalAnnualizedDebtPaymentsRedirectedSoFar)
	policyRate := money.OrDefault(st.Totals.PolicyInterestRate, s.assumptions.PolicyLoanInterestRate)
	monthlySurplus := money.NonNegative(st.Totals.MonthlyFinalSurplus)
	calc.MonthlySurplusBudget = monthlySurplus
	calc.AnnualSurplusBudgetAvailable = money.Annual(monthlySurplus)

	var heloc *domain.Heloc
	if ys.secured() {
		heloc = ys.heloc()
	}

	policyLoan := calc.EndingPolicyLoanBalance
	for month := 1; month <= 12; month++ {
		surplus := monthlySurplus
		remaining := redirected

		var interest decimal.Decimal
		policyLoan, interest = accruePolicyLoanInterest(policyLoan, policyRate)
		calc.PolicyLoanInterestThisYear = calc.PolicyLoanInterestThisYear.Add(interest)

		if policyLoan.IsPositive() {
			pay := money.Min(policyLoan, remaining)
			policyLoan = policyLoan.Sub(pay)
			remaining = remaining.Sub(pay)
			calc.PolicyLoanRepaidFromRedirectedPayments = calc.PolicyLoanRepaidFromRedirectedPayments.Add(pay)
		}

		if heloc != nil {
			helocInterest := accrueHelocInterest(heloc)
			fromRedirected := repayHeloc(heloc, remaining)
			calc.HelocRepaidFromRedirectedPayments = calc.HelocRepaidFromRedirectedPayments.Add(fromRedirected)
			fromSurplus := repayHeloc(heloc, surplus)
			surplus = surplus.Sub(fromSurplus)

			paid := fromRedirected.Add(fromSurplus)
			interestPart := money.Min(paid, helocInterest)
			calc.AnnualizedHelocInterestPaid = calc.AnnualizedHelocInterestPaid.Add(interestPart)
			calc.AnnualizedHelocPrincipalPaid = calc.AnnualizedHelocPrincipalPaid.Add(paid.Sub(interestPart))
		}

		if policyLoan.IsPositive() && surplus.IsPositive() {
			pay := money.Min(policyLoan, surplus)
			policyLoan = policyLoan.Sub(pay)
			calc.PolicyLoanRepaidFromSurplus = calc.PolicyLoanRepaidFromSurplus.Add(pay)
		}
	}
	calc.EndingPolicyLoanBalance = money.Cents(policyLoan)

	if ys.secured() {
		mortgage := st.Property.Mortgage
		if !mortgage.FullyPaid {
			principal, interest := SchedulePortions(*mortgage, s.asOf, ys.startOffset()+1, 12)
			calc.PrincipalPortionOfEMIForNextYear = principal
			calc.InterestPortionOfEMIForNextYear = interest
		}
		room := s.room(ys)
		calc.TotalHelocRoomAfterEMI = room.Add(calc.PrincipalPortionOfEMIForNextYear)
		calc.EndingMortgageBalance = mortgage.CurrentBalance
		calc.EndingHelocBalance = heloc.Balance
		calc.EndingHelocRoom = room
	}
}

// finish settles balances to cents, computes the closing position and
// freezes the year.
func (s *simulator) finish(ys *yearState) domain.PlanYear {
	st := &ys.state
	calc := &ys.calc

	for i := range st.Credit {
		st.Credit[i].Balance = money.Cents(st.Credit[i].Balance)
		refreshCredit(&st.Credit[i])
	}
	for i := range st.Loans {
		l := &st.Loans[i]
		l.CurrentBalance = money.Cents(l.CurrentBalance)
		if !l.CurrentBalance.IsPositive() {
			markLoanPaid(l)
		}
	}
	if ys.secured() {
		p := st.Property
		p.Mortgage.CurrentBalance = money.Cents(p.Mortgage.CurrentBalance)
		if !p.Mortgage.CurrentBalance.IsPositive() {
			markLoanPaid(p.Mortgage)
		}
		p.Heloc.Balance = money.Cents(p.Heloc.Balance)
		s.room(ys)
	}
	RecalculateTotals(st)

	calc.EndingAssets, calc.EndingLiabilities, calc.EndingNetWorth =
		BalanceSheet(*st, calc.EndingPolicyLoanBalance, calc.EndingPolicyCashValue)
	calc.Round()

	s.debugf("year %d: ending net worth %s, liabilities %s",
		ys.year, calc.EndingNetWorth.StringFixed(2), calc.EndingLiabilities.StringFixed(2))
	return domain.PlanYear{Year: ys.year, FinancialState: *st, Calculations: *calc}
}
