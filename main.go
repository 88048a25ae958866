package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, allowedOrigin string) *gin.Engine {
	r := gin.Default()

	// --- CORS: allow the configured frontend origin + any localhost:port ---
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if allowedOrigin != "" && origin == allowedOrigin {
				return true
			}
			// allow any http://localhost:PORT during development
			return strings.HasPrefix(origin, "http://localhost:")
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "reading survey backend is running")
	})
	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	// --- API routes ---
	api := r.Group("/api")
	{
		api.POST("/submit", SubmitResponse(db))
		api.GET("/results", ListResults(db))
		api.GET("/stats", Stats(db))
	}

	return r
}

func main() {
	_ = godotenv.Load()

	// 1) DB
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "survey.db"
	}
	db, err := OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// 2) Seed (if empty and a fixture file is configured)
	if path := os.Getenv("SEED_FILE"); path != "" {
		if isEmpty, _ := IsResponseTableEmpty(db); isEmpty {
			if _, err := os.Stat(path); err == nil {
				if err := SeedFromJSON(db, path); err != nil {
					log.Fatalf("seed: %v", err)
				}
				log.Printf("Seeded responses from %s", path)
			} else {
				log.Printf("No seed file at %s; running with empty DB", path)
			}
		}
	}

	// 3) Router
	r := setupRouter(db, os.Getenv("ALLOWED_ORIGIN"))

	// --- Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Listening on :%s (db=%s)", port, dbPath)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("run: %v", err)
	}
}
