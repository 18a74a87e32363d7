// cmd/ledgerctl/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go-bank-ledger/app"
	"go-bank-ledger/config"
	"go-bank-ledger/logger"
)

const usage = `usage: ledgerctl [-config dir] <command> [flags]

commands:
  accounts                                           list accounts
  create-account -name -job -email -address          open an account
  atms                                               list ATMs
  create-atm -location                               register an ATM
  deposit -account ID -amount X [-atm ID]            deposit money
  withdraw -account ID -amount X [-atm ID]           withdraw money
  transfer -from ID -to ID -amount X                 transfer between accounts
  transactions -account ID                           show account history

With storage.driver set to memory every invocation starts from an empty
ledger and nothing is kept after it exits. Use postgres for real data.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ledgerctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configDir := fs.String("config", ".", "Directory containing config.yml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	logger.Log.SetOutput(stderr)
	if cfg.Storage.Driver == "memory" {
		fmt.Fprintln(stderr, "warning: storage.driver is memory; changes are discarded when ledgerctl exits")
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer a.Close()

	if err := execute(ctx, a, fs.Arg(0), fs.Args()[1:], stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
