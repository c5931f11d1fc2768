// Package main provides the dexnorm CLI application.
package main

import (
	"github.com/joho/godotenv"
	"github.com/kriptogan/dexnorm/cmd"
)

func main() {
	// DEXNORM_* variables may come from .env of the working directory
	_ = godotenv.Load()
	cmd.Execute()
}
