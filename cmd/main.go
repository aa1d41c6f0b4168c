package main

import (
	"gimie/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Gimie API
// @version 2.0.0
// @description Store products by URL, extract prices from page text and convert them between currencies.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("application stopped")
	}
}
