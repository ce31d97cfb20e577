// Command pagekit-server is a small demonstration server exposing a
// paginated sample dataset over HTTP.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turmfalke/pagekit/pkg/logging"
	"github.com/turmfalke/pagekit/pkg/paginator"
)

// Product is the sample record served by the demo.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func main() {
	port := getEnv("PORT", "8080")
	datasetSize := getEnvInt("DATASET_SIZE", 500)

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Pretty: os.Getenv("LOG_PRETTY") == "true",
		Output: os.Stderr,
	})

	products := sampleProducts(datasetSize)
	engine := paginator.New[Product](paginator.DefaultSettings())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/items", itemsHandler(engine, products))

	addr := ":" + port
	logger.Info().
		Str("addr", addr).
		Int("dataset_size", datasetSize).
		Msg("Starting pagekit demo server")

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// itemsHandler serves GET /items?page=N&pageSize=M[&all=true].
func itemsHandler(engine *paginator.Paginator[Product], products []Product) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := &paginator.Config{EnableCache: true}

		query := r.URL.Query()
		if query.Get("all") == "true" {
			cfg.NoPagination = true
		}
		if raw := query.Get("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "page must be an integer", http.StatusBadRequest)
				return
			}
			cfg.Page = paginator.Int(page)
		}
		if raw := query.Get("pageSize"); raw != "" {
			pageSize, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "pageSize must be an integer", http.StatusBadRequest)
				return
			}
			cfg.PageSize = paginator.Int(pageSize)
		}

		result, err := engine.PaginateWithLinks(r.Context(), products, cfg, r.URL.Path, query)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, "encoding failed", http.StatusInternalServerError)
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch paginator.KindOf(err) {
	case paginator.KindInvalidConfig, paginator.KindInvalidPageSize:
		status = http.StatusBadRequest
	case paginator.KindPageNotFound:
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}

func sampleProducts(n int) []Product {
	products := make([]Product, n)
	for i := range products {
		products[i] = Product{
			ID:    i + 1,
			Name:  fmt.Sprintf("product-%04d", i+1),
			Price: float64((i*37)%9000)/100 + 1,
		}
	}
	return products
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
