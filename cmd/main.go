package main

import (
	"os"
)

// @title Restaurant API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
