package initializers

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
)

func LoadEnv() error {
	log.Println("Loading env file")
	if err := godotenv.Load(); err != nil {
		log.Println("env not loading")
		return fmt.Errorf("env not loading: %w", err)
	}
	log.Println("Env loaded successfully")
	return nil
}
