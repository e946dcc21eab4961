package main

import (
	"log"
	"net/http"
	"os"

	"smartwaste-backend/internal/handlers"
	"smartwaste-backend/internal/store"
	"smartwaste-backend/internal/websocket"

	"github.com/joho/godotenv"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("🚀 SMART WASTE MANAGEMENT API STARTING")
	log.Println("═══════════════════════════════════════════════════════════════════")

	// Load .env file
	log.Println("📂 Loading environment variables...")
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Warning: .env file not found, using environment variables from system")
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// Resolve the data file path
	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "bin_data.json"
		log.Printf("⚠️  DATA_FILE not set, using default: %s", dataFile)
	} else {
		log.Printf("✅ DATA_FILE found: %s", dataFile)
	}

	// Load persisted bins on startup
	s := store.New(dataFile, store.RandomFillSensor{})
	count := s.Reload()
	log.Printf("✅ Loaded %d bins from %s", count, dataFile)

	// Initialize WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()
	log.Println("✅ WebSocket hub started")

	// Create router
	r := handlers.NewRouter(s, hub)

	// Get port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("⚠️  PORT not set, using default: %s", port)
	} else {
		log.Printf("✅ PORT found: %s", port)
	}

	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("✅ ALL INITIALIZATION COMPLETE")
	log.Printf("🚀 Server starting on http://localhost:%s", port)
	log.Println("🔌 Ready to accept requests!")
	log.Println("═══════════════════════════════════════════════════════════════════")

	// Start server
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		log.Println("❌ FATAL ERROR: Server failed to start")
		log.Printf("   Error: %v", err)
		log.Printf("   Port: %s", port)
		log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		log.Fatal(err)
	}
}
