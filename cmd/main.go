package main

import (
	"fxconvert/internal/app"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Currency converter stopped")
	}
}
