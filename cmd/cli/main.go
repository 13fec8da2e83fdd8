package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avinash6982/TripMakerWeb-BE/internal/client/cli"
)

func main() {

	server := flag.String("server", "http://localhost:8080", "server base URL")
	token := flag.String("token", os.Getenv("TRIPMAKER_TOKEN"), "bearer token for authenticated commands")
	flag.Parse()

	app := cli.NewApp(*server, *token, os.Stdin, os.Stdout)

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

}
