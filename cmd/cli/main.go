package main

import (
	"context"
	"log"
	"os"

	"github.com/ahmchowd27/safesnap-client/internal/buildinfo"
	"github.com/ahmchowd27/safesnap-client/internal/client/cli"
	"github.com/ahmchowd27/safesnap-client/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
