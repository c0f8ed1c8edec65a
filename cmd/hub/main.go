package main

import (
	"NotificationHub/internal/bootstrap"
	pkg "NotificationHub/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		pkg.HubModules,
	)

	app.Run()
}
