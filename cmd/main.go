package main

import (
	"github.com/wickedsales/storefront/internal/app"
	"github.com/wickedsales/storefront/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
