package main

import (
	"github.com/joho/godotenv"

	"github.com/sprintertech/sprinter-intents/cli"
)

func main() {
	// .env is optional, configuration may come from flags or a file
	_ = godotenv.Load()

	cli.Execute()
}
