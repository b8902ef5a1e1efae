package main

import (
	"fmt"
	"os"

	"github.com/SystemBuilders/Namely/internal/namelist"
	"github.com/SystemBuilders/Namely/internal/node"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// A missing .env file is fine, the defaults below apply.
	godotenv.Load()

	log := zerolog.New(os.Stdout).With().Logger().Level(zerolog.GlobalLevel())
	nl := namelist.NewSimpleNameList(log)

	// Example usage of the roster before serving it.
	nl.Add("Alice")
	nl.Add("Bob")
	nl.Add("Charlie")
	nl.Add("Garfield")

	fmt.Println("Current List:")
	nl.Display(os.Stdout)

	fmt.Println("\nRemoving Bob...")
	nl.Remove("Bob")

	fmt.Println("Updated List:")
	nl.Display(os.Stdout)

	scfg := namelist.NewSimpleConfig(envOr("NAMELY_IP", "127.0.0.1"), envOr("NAMELY_PORT", "1234"))
	node.Start(nl, *scfg)
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
