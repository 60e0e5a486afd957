package main

import "github.com/api-sage/deposit-ledger/src/internal/cli"

func main() {
	cli.Execute()
}
