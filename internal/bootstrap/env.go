package bootstrap

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Loadenv loads the .env file (or the file named by ENV_FILE) before any
// config constructor reads the environment.
func Loadenv() {
	file := os.Getenv("ENV_FILE")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil {
		log.Println("No env file found, using system environment variables")
	}
}
