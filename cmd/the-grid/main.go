package main

import (
	"os"

	"github.com/markmahoney/the-grid/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
