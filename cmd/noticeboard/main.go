package main

import (
	"go.uber.org/fx"

	"NoticeBoard/internal/bootstrap"
	"NoticeBoard/pkg/routes"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		routes.EchoModules,
	)
	app.Run()
}
