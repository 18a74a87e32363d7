// cmd/main.go
package main

import (
	"go-bank-ledger/app"
)

// @title           Go-Bank Ledger API
// @version         1.0
// @description     Ledger engine for a small banking simulator: accounts, ATMs, deposits, withdrawals and transfers.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
