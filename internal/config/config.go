package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	AdminPassword string
	LogFile       string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("[config] loaded .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "tronexcars.db" // sqlite file in project root
	}
	adminPw := os.Getenv("ADMIN_PASSWORD")
	if adminPw == "" {
		adminPw = "admin123"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./tronexcars.log"
	}

	cfg := Config{Port: port, DBDSN: dsn, AdminPassword: adminPw, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
