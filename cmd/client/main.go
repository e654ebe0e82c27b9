package main

import (
	"fmt"

	"github.com/domy-v-italii/portal/internal/client"
	"github.com/domy-v-italii/portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(buildInfo)
	if err != nil {
		fmt.Printf("init client app error: %v\n", err)
		return
	}

	if err = app.Run(); err != nil {
		fmt.Printf("client run error: %v\n", err)
	}
}
