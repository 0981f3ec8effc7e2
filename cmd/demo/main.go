// Command demo runs the sample loan scenarios against an in-process ledger
// and logs each payment breakdown.
package main

import (
	"fmt"
	"os"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/internal/service"
	"bank-ledger/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"
)

const demoAccount = "900000000001"

type scenario struct {
	name      string
	principal string
	rate      string
	term      int
	loanType  domain.LoanType
}

var scenarios = []scenario{
	{"personal", "5000", "12", 24, domain.LoanTypePersonal},
	{"car", "35000", "8.5", 60, domain.LoanTypeCar},
	{"home", "350000", "6.5", 360, domain.LoanTypeHome},
	{"business", "75000", "14", 84, domain.LoanTypeBusiness},
}

func main() {
	payments := flag.Int("payments", 3, "scheduled payments to apply per loan")
	level := flag.String("log-level", "info", "debug, info, warn, error")
	pretty := flag.Bool("pretty", true, "human-readable log output")
	flag.Parse()

	log := logger.New(*level, *pretty)

	if err := run(log, *payments); err != nil {
		log.Error().Err(err).Msg("demo failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, payments int) error {
	ledger := service.NewLedgerService(service.LedgerOptions{
		LoanIDSeed:         1001,
		OverdraftLimit:     decimal.NewFromInt(1000),
		DefaultSavingsRate: decimal.NewFromInt(5),
	}, service.SystemClock{}, log.Level(zerolog.WarnLevel))

	if _, err := ledger.CreateAccount(ports.CreateAccountRequest{
		Type:           domain.AccountTypeChecking,
		Number:         demoAccount,
		HolderName:     "Demo Borrower",
		InitialBalance: decimal.Zero,
	}); err != nil {
		return fmt.Errorf("open demo account: %w", err)
	}

	for _, sc := range scenarios {
		if err := runScenario(log, ledger, sc, payments); err != nil {
			return fmt.Errorf("%s scenario: %w", sc.name, err)
		}
	}

	acct, err := ledger.FindAccount(demoAccount)
	if err != nil {
		return err
	}
	log.Info().Str("account_number", acct.Number).Str("balance", acct.Balance.StringFixed(2)).Msg("final balance")
	return nil
}

func runScenario(log zerolog.Logger, ledger *service.LedgerServiceImpl, sc scenario, payments int) error {
	loan, err := ledger.OriginateLoan(ports.OriginateLoanRequest{
		AccountNumber: demoAccount,
		BorrowerName:  "Demo Borrower",
		Principal:     decimal.RequireFromString(sc.principal),
		InterestRate:  decimal.RequireFromString(sc.rate),
		TermMonths:    sc.term,
		Type:          sc.loanType,
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("scenario", sc.name).
		Str("loan_id", loan.ID).
		Str("principal", loan.Principal.StringFixed(2)).
		Str("rate", loan.InterestRate.String()).
		Int("term_months", loan.TermMonths).
		Str("monthly_payment", loan.MonthlyPayment.StringFixed(2)).
		Str("total_interest", loan.TotalInterest.StringFixed(2)).
		Msg("loan originated")

	for i := 1; i <= payments; i++ {
		b, err := ledger.ApplyLoanPayment(loan.ID, loan.MonthlyPayment)
		if err != nil {
			return err
		}
		log.Info().
			Str("loan_id", loan.ID).
			Int("payment", i).
			Str("interest", b.Interest.StringFixed(2)).
			Str("principal", b.Principal.StringFixed(2)).
			Str("remaining", b.Remaining.StringFixed(2)).
			Msg("payment applied")
	}

	schedule, err := ledger.LoanSchedule(loan.ID, 3)
	if err != nil {
		return err
	}
	for _, e := range schedule {
		log.Info().
			Str("loan_id", loan.ID).
			Int("number", e.Number).
			Str("interest", e.Interest.StringFixed(2)).
			Str("principal", e.Principal.StringFixed(2)).
			Str("balance", e.Balance.StringFixed(2)).
			Msg("upcoming payment")
	}
	return nil
}
