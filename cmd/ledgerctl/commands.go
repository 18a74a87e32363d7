package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"go-bank-ledger/app"
	"go-bank-ledger/common"
	"go-bank-ledger/model"
	"go-bank-ledger/service"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

var errUsage = errors.New("invalid arguments")

// execute runs one command against a wired app and renders its result to out.
func execute(ctx context.Context, a *app.App, name string, args []string, out io.Writer) error {
	switch name {
	case "accounts":
		accounts, err := a.Accounts.ListAccounts(ctx)
		if err != nil {
			return err
		}
		renderAccounts(out, accounts...)
		return nil

	case "create-account":
		fs := newFlagSet(name, out)
		req := model.CreateAccountRequest{}
		fs.StringVar(&req.Name, "name", "", "Account holder name")
		fs.StringVar(&req.Job, "job", "", "Account holder job")
		fs.StringVar(&req.Email, "email", "", "Account holder email")
		fs.StringVar(&req.Address, "address", "", "Account holder address")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		if err := common.ValidateStruct(req); err != nil {
			return err
		}
		account, err := a.Accounts.CreateAccount(ctx, req)
		if err != nil {
			return err
		}
		renderAccounts(out, account)
		return nil

	case "atms":
		atms, err := a.ATMs.ListATMs(ctx)
		if err != nil {
			return err
		}
		renderATMs(out, atms...)
		return nil

	case "create-atm":
		fs := newFlagSet(name, out)
		req := model.CreateATMRequest{}
		fs.StringVar(&req.Location, "location", "", "ATM location")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		if err := common.ValidateStruct(req); err != nil {
			return err
		}
		atm, err := a.ATMs.CreateATM(ctx, req.Location)
		if err != nil {
			return err
		}
		renderATMs(out, atm)
		return nil

	case "deposit", "withdraw":
		fs := newFlagSet(name, out)
		accountID := fs.Int("account", 0, "Account ID")
		atmID := fs.Int("atm", 0, "ATM ID (optional)")
		amount := fs.String("amount", "", "Amount, e.g. 125.50")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		value, err := parseAmount(*amount)
		if err != nil {
			return err
		}
		var atm *int
		if *atmID != 0 {
			atm = atmID
		}

		var result *service.OperationResult
		if name == "deposit" {
			result, err = a.Ledger.Deposit(ctx, *accountID, atm, value)
		} else {
			result, err = a.Ledger.Withdraw(ctx, *accountID, atm, value)
		}
		if err != nil {
			return err
		}
		renderOperation(out, result)
		return nil

	case "transfer":
		fs := newFlagSet(name, out)
		from := fs.Int("from", 0, "Source account ID")
		to := fs.Int("to", 0, "Destination account ID")
		amount := fs.String("amount", "", "Amount, e.g. 125.50")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		value, err := parseAmount(*amount)
		if err != nil {
			return err
		}
		result, err := a.Ledger.Transfer(ctx, *from, *to, value)
		if err != nil {
			return err
		}
		renderTransactions(out, result.Outgoing, result.Incoming)
		fmt.Fprintf(out, "account %d balance: %s\naccount %d balance: %s\n",
			result.FromAccountID, result.FromBalance.StringFixed(2),
			result.ToAccountID, result.ToBalance.StringFixed(2))
		return nil

	case "transactions":
		fs := newFlagSet(name, out)
		accountID := fs.Int("account", 0, "Account ID")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		transactions, err := a.Transactions.ListTransactionsForAccount(ctx, *accountID)
		if err != nil {
			return err
		}
		renderTransactions(out, transactions...)
		return nil
	}

	return fmt.Errorf("unknown command %q", name)
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: -amount is required", errUsage)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", errUsage, raw)
	}
	return value, nil
}

func renderAccounts(out io.Writer, accounts ...*model.Account) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name", "Email", "Job", "Address", "Balance"})
	for _, acc := range accounts {
		table.Append([]string{
			strconv.Itoa(acc.ID), acc.Name, acc.Email, acc.Job, acc.Address, acc.Balance.StringFixed(2),
		})
	}
	table.Render()
}

func renderATMs(out io.Writer, atms ...*model.ATM) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Location", "Cash"})
	for _, atm := range atms {
		table.Append([]string{strconv.Itoa(atm.ID), atm.Location, atm.Balance.StringFixed(2)})
	}
	table.Render()
}

func renderOperation(out io.Writer, result *service.OperationResult) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Transaction", "Type", "Account", "Amount", "Balance", "ATM", "ATM Cash"})
	atm, atmCash := "-", "-"
	if result.ATMID != nil {
		atm = strconv.Itoa(*result.ATMID)
		atmCash = result.ATMBalance.StringFixed(2)
	}
	table.Append([]string{
		strconv.Itoa(result.Transaction.ID),
		string(result.Transaction.Type),
		strconv.Itoa(result.AccountID),
		result.Transaction.Amount.StringFixed(2),
		result.Balance.StringFixed(2),
		atm,
		atmCash,
	})
	table.Render()
}

func renderTransactions(out io.Writer, transactions ...*model.Transaction) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Type", "Amount", "Counterparty", "ATM", "Created At"})
	for _, t := range transactions {
		table.Append([]string{
			strconv.Itoa(t.ID),
			string(t.Type),
			t.Amount.StringFixed(2),
			optionalID(t.TargetAccountID),
			optionalID(t.ATMID),
			t.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	table.Render()
}

func optionalID(id *int) string {
	if id == nil {
		return "-"
	}
	return strconv.Itoa(*id)
}
