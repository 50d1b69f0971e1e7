package main

import "github.com/Nojands/FinanzApp/internal/cli"

func main() {
	cli.Execute()
}
