// Command usersvc runs the user account web service.
//
// Configuration comes from flags, environment variables and an optional JSON
// file; see internal/config. Without a database setting the service keeps
// its data in memory.
package main

import (
	"fmt"

	"github.com/patric-chuzhbe/mobileappws/internal/app"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)

	theApp, err := app.New()
	if err != nil {
		panic(err)
	}
	defer theApp.Close()

	if err := theApp.Run(); err != nil {
		panic(err)
	}
}
