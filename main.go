package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradehub/db"
	"tradehub/live"
	"tradehub/middleware"
	"tradehub/ratelim"
	"tradehub/routes"
	"tradehub/seed"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// setupRouter builds the router with all API routes.
func setupRouter(rateLimiter *ratelim.RateLimiter, hub *live.Hub) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddProductRoutes(router, rateLimiter)
	routes.AddOrderRoutes(router, rateLimiter, hub)
	routes.AddContactRoutes(router, rateLimiter)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	seedFlag := flag.Bool("seed", false, "load the catalog fixtures and exit")
	flag.Parse()

	if *seedFlag {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := seed.Products(ctx); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		return
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// create indexes up front so query paths never race schema setup
	idxCtx, idxCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(idxCtx); err != nil {
		log.Printf("Index creation failed: %v", err)
	}
	idxCancel()

	rateLimiter := ratelim.NewRateLimiter()

	// order feed hub + redis relay worker
	hub := live.NewHub()
	go hub.Run()
	workerCtx, workerCancel := context.WithCancel(context.Background())
	go live.StartOrderFeedWorker(workerCtx, hub)

	router := setupRouter(rateLimiter, hub)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Idempotency-Key"},
		AllowCredentials: true,
	}).Handler(router)

	handler := middleware.Logging(middleware.SecurityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down order feed...")
		workerCancel()
		hub.Stop()
	})

	go func() {
		log.Printf("🚀 Trade Hub server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	if err := db.Client.Disconnect(context.Background()); err != nil {
		log.Printf("Mongo disconnect error: %v", err)
	}

	log.Println("Server stopped cleanly")
}
