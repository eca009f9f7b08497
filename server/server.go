package server

import (
	"log"
	"net/http"
)

// Serve starts the dashboard on the given port and blocks.
func Serve(port string) {
	logFile, err := setupLogging()
	if err != nil {
		log.Printf("Failed to set up file logging: %v", err)
	} else {
		defer logFile.Close()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", dashboardHandler)
	mux.HandleFunc("/chart", chartHandler)

	log.Printf("Server starting on http://localhost:%s", port)

	if err := http.ListenAndServe(":"+port, loggingMiddleware(mux)); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
