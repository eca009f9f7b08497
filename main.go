package main

import (
	"log"
	"os"
	"time"

	"github.com/acedash/loader"
	"github.com/acedash/models"
	"github.com/acedash/server"
	"github.com/cli/browser"
	"github.com/joho/godotenv"
)

const (
	defaultDataPath = "data/aces.csv"
	defaultPort     = "8080"
)

func main() {
	// Optional .env; environment variables win either way
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dataPath := os.Getenv("ACES_DATA")
	if dataPath == "" {
		dataPath = defaultDataPath
	}
	port := os.Getenv("ACES_PORT")
	if port == "" {
		port = defaultPort
	}

	rows, err := loader.Load(dataPath)
	if err != nil {
		log.Fatal("Failed to load dataset: ", err)
	}
	log.Printf("Loaded %d rows from %s", len(rows), dataPath)

	models.PopulateDataStore(dataPath, rows)

	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := browser.OpenURL("http://localhost:" + port); err != nil {
			log.Printf("Failed to open browser: %v", err)
		}
	}()

	server.Serve(port)
}
