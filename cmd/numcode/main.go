package main

import (
	"errors"
	"os"

	"numcode/cmd/numcode/commands"
	"numcode/internal/domain"
)

func main() {
	if err := commands.Execute(); err != nil {
		if errors.Is(err, domain.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
