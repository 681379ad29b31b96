package main

import (
	"github.com/joho/godotenv"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/cmd"
)

func main() {
	_ = godotenv.Load() // loads .env when present

	cmd.Execute()
}
