package main

import (
	"log"
	"os"
)

func main() {
	defer cleanup()

	if len(os.Args) > 3 {
		log.Fatal("too many arguments") // want `avoid calling log.Fatal in main.main`
	}

	if len(os.Args) > 2 {
		log.Fatalf("unexpected %s", os.Args[2]) // want `avoid calling log.Fatalf in main.main`
	}

	os.Exit(1) // want `avoid calling os.Exit in main.main`
}

func cleanup() {
	os.Exit(0)
}
