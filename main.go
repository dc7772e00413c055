package main

import (
	"github.com/joho/godotenv"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/cmd"
)

func main() {
	// Load .env file if it exists (silently ignore errors)
	_ = godotenv.Load()

	cmd.Execute()
}
