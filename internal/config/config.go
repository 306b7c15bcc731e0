package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config regroupe la configuration lue depuis l'environnement
type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// LoadConfig charge le fichier .env s'il existe puis lit les variables
// d'environnement, avec des valeurs par défaut pour le développement local
func LoadConfig() (*Config, error) {
	// Le .env est optionnel: en production les variables viennent du process
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "3000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "suggestions_db"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
