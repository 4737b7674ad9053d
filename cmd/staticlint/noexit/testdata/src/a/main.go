package main

import (
	"log"
	"os"
)

func helper() {
	os.Exit(3)
}

func main() {
	defer helper()

	if len(os.Args) > 2 {
		log.Fatalf("too many arguments: %d", len(os.Args)) // want "avoid using log.Fatalf in main.main"
	}

	if len(os.Args) > 1 {
		log.Fatal("unexpected argument") // want "avoid using log.Fatal in main.main"
	}

	os.Exit(1) // want "avoid using os.Exit in main.main"
}
