package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/smadsen/powerium/database"
	"github.com/smadsen/powerium/middleware"
	"github.com/smadsen/powerium/repository"
	"github.com/smadsen/powerium/routes"
	"github.com/smadsen/powerium/session"
	"github.com/smadsen/powerium/views"
)

func main() {
	log.Print("starting server...")

	// Load environment variables from .env in development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	store, err := database.InitStore()
	if err != nil {
		log.Fatal("Failed to initialize document store: ", err)
	}

	users := repository.NewUserRepository(store)
	usage := repository.NewUsageRepository(store)

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "myvaluehere"
		log.Print("Warning: SESSION_SECRET not set, falling back to an insecure default")
	}
	sm := session.NewManager(secret, users)

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatal("Failed to load view templates: ", err)
	}

	r := routes.SetupRoutes(sm, users, usage, renderer)

	// Method override must run before route matching; logging wraps everything.
	var handler http.Handler = middleware.WithLogging(middleware.MethodOverride(r))

	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		c := cors.New(cors.Options{
			AllowedOrigins:   []string{origin},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		})
		handler = c.Handler(handler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
		log.Printf("defaulting to port %s", port)
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	log.Printf("listening on port %s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
