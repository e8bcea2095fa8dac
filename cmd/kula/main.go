package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/junaidrashid-git/kula-api/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	api := flag.String("api", os.Getenv("KULA_API_URL"), "Kula API address")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	code := cli.Run(context.Background(), args, cli.Options{BaseURL: *api})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
