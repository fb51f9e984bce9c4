package main

import (
	"log"

	"github.com/jys9049/RN-TodoList/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
