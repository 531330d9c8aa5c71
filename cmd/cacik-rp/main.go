package main

import (
	"context"
	"os"

	"github.com/denizgursoy/cacik-rp/internal/app"
)

func main() {
	err := app.NewDefault().Command().ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
