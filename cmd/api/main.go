package main

import (
	appfx "github.com/Nojands/FinanzApp/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
