package main

import (
	"fmt"
	"os"

	"github.com/NinaWiik/Tracker-app/cmd/tracker/commands"
	"github.com/NinaWiik/Tracker-app/internal/service"
)

func init() {
	service.InitValidator()
}

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
