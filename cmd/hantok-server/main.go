// Command hantok-server provides an HTTP REST API for Korean
// tokenization.
//
// Usage:
//
//	hantok-server -p 8080
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"flag"

	"github.com/MyounghoonKim/hantok/hantok"
)

func main() {
	port := flag.String("p", envOr("PORT", "8080"), "port to listen on")
	flag.Parse()

	http.HandleFunc("/v1/tokenize", hantok.TokenizeHandler)
	http.HandleFunc("/health", hantok.HealthHandler)
	http.HandleFunc("/openapi.json", hantok.OpenAPIHandler)

	addr := fmt.Sprintf(":%s", *port)
	log.Printf("hantok server listening on http://localhost:%s\n", *port)
	log.Printf("   POST http://localhost:%s/v1/tokenize\n", *port)
	log.Printf("   GET  http://localhost:%s/health\n", *port)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
