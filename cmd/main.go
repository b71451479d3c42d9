package main

import (
	"os"

	"github.com/appdotbuilder/smart-diet-tracker/config"
	"github.com/appdotbuilder/smart-diet-tracker/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
