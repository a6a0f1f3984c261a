package main

import "github.com/iwvelando/fincalc/internal/cli"

func main() {
	cli.Execute()
}
