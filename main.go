package main

import (
	"os"

	"github.com/rpupo63/portfolio-site-backend/cli"
)

func main() {
	os.Exit(cli.Execute())
}
