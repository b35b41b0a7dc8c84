package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ffplan/freedom-planner/internal/calculation"
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/internal/output"
)

type amortizeOptions struct {
	financed string
	rate     string
	months   int
	payment  string
	start    string
	extras   []string
}

func newAmortizeCommand() *cobra.Command {
	var opts amortizeOptions

	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Print the month-by-month schedule of a fixed-rate loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loan, err := opts.loan(time.Now())
			if err != nil {
				return err
			}
			return printSchedule(cmd, loan)
		},
	}

	cmd.Flags().StringVar(&opts.financed, "financed", "", "amount financed")
	cmd.Flags().StringVar(&opts.rate, "rate", "0", "annual interest rate in percent")
	cmd.Flags().IntVar(&opts.months, "months", 0, "loan term in months")
	cmd.Flags().StringVar(&opts.payment, "payment", "", "monthly payment (default: level annuity payment)")
	cmd.Flags().StringVar(&opts.start, "start", "", "first payment month (default: this month)")
	cmd.Flags().StringArrayVar(&opts.extras, "extra", nil, "extra principal as month=amount (repeatable)")
	_ = cmd.MarkFlagRequired("financed")
	_ = cmd.MarkFlagRequired("months")

	return cmd
}

func (o amortizeOptions) loan(now time.Time) (domain.Loan, error) {
	l := domain.Loan{Name: "loan", LengthInMonths: o.months}

	var err error
	if l.FinancedAmount, err = decimal.NewFromString(o.financed); err != nil {
		return l, fmt.Errorf("invalid --financed: %w", err)
	}
	if l.InterestRate, err = decimal.NewFromString(o.rate); err != nil {
		return l, fmt.Errorf("invalid --rate: %w", err)
	}
	if o.payment != "" {
		if l.MonthlyPayment, err = decimal.NewFromString(o.payment); err != nil {
			return l, fmt.Errorf("invalid --payment: %w", err)
		}
	}
	if o.start != "" {
		if err := l.StartDate.UnmarshalText([]byte(o.start)); err != nil {
			return l, fmt.Errorf("invalid --start: %w", err)
		}
	} else {
		l.StartDate = domain.NewDate(now.Year(), now.Month(), 1)
	}
	for _, raw := range o.extras {
		extra, err := parseExtra(raw)
		if err != nil {
			return l, err
		}
		l.ExtraPrincipalPayments = append(l.ExtraPrincipalPayments, extra)
	}

	if err := calculation.ValidateLoan(l); err != nil {
		return l, err
	}
	return l, nil
}

func parseExtra(raw string) (domain.ExtraPrincipalPayment, error) {
	month, amount, ok := strings.Cut(raw, "=")
	if !ok {
		return domain.ExtraPrincipalPayment{}, fmt.Errorf("invalid --extra %q: want month=amount", raw)
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 {
		return domain.ExtraPrincipalPayment{}, fmt.Errorf("invalid --extra %q: month must be a positive integer", raw)
	}
	a, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || a.IsNegative() {
		return domain.ExtraPrincipalPayment{}, fmt.Errorf("invalid --extra %q: amount must be a non-negative number", raw)
	}
	return domain.ExtraPrincipalPayment{Month: m, Amount: a}, nil
}

func printSchedule(cmd *cobra.Command, loan domain.Loan) error {
	rows := calculation.Schedule(loan)
	w := cmd.OutOrStdout()

	payment := loan.MonthlyPayment
	if !payment.IsPositive() && len(rows) > 0 {
		payment = rows[0].InterestPayment.Add(rows[0].PrincipalPayment)
	}
	fmt.Fprintf(w, "Financed: %s  Rate: %s  Term: %d months  Payment: %s\n",
		output.FormatCurrency(loan.FinancedAmount), output.FormatPercentage(loan.InterestRate),
		loan.LengthInMonths, output.FormatCurrency(payment))
	fmt.Fprintf(w, "%5s %15s %12s %12s %15s\n", "MONTH", "START", "INTEREST", "PRINCIPAL", "END")

	totalInterest := decimal.Zero
	for _, r := range rows {
		fmt.Fprintf(w, "%5d %15s %12s %12s %15s\n", r.Month,
			output.FormatCurrency(r.StartBalance), output.FormatCurrency(r.InterestPayment),
			output.FormatCurrency(r.PrincipalPayment), output.FormatCurrency(r.EndBalance))
		totalInterest = totalInterest.Add(r.InterestPayment)
	}
	fmt.Fprintf(w, "Paid off after %d months. Total interest: %s\n", len(rows), output.FormatCurrency(totalInterest))
	return nil
}
