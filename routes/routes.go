package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/smadsen/powerium/controllers"
	"github.com/smadsen/powerium/middleware"
	"github.com/smadsen/powerium/repository"
	"github.com/smadsen/powerium/session"
	"github.com/smadsen/powerium/views"
)

// SetupRoutes configures the application routes.
func SetupRoutes(sm *session.Manager, users repository.UserRepository, usage repository.UsageRepository, v *views.Renderer) *mux.Router {
	r := mux.NewRouter()

	// --- Anonymous-only Routes (login and registration) ---
	anonRouter := r.PathPrefix("").Subrouter()
	anonRouter.Use(middleware.RequireAnonymous(sm))
	anonRouter.HandleFunc("/login", controllers.LoginPageHandler(sm, v)).Methods("GET")
	anonRouter.HandleFunc("/login", controllers.LoginHandler(sm)).Methods("POST")
	anonRouter.HandleFunc("/register", controllers.RegisterPageHandler(sm, v)).Methods("GET")
	anonRouter.HandleFunc("/register", controllers.RegisterHandler(sm, users)).Methods("POST")

	// --- Public Routes (no auth required) ---
	r.HandleFunc("/about", controllers.AboutHandler(sm, v)).Methods("GET")
	r.HandleFunc("/contact", controllers.ContactHandler(sm, v)).Methods("GET")
	r.HandleFunc("/logout", controllers.LogoutHandler(sm)).Methods("DELETE")

	// Static file server (public)
	fs := http.FileServer(http.Dir("./public/"))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))

	// --- Protected Routes (authenticated principal required) ---
	authRouter := r.PathPrefix("").Subrouter()
	authRouter.Use(middleware.RequireAuthenticated(sm))
	authRouter.HandleFunc("/", controllers.HomeHandler(sm, v)).Methods("GET")
	authRouter.HandleFunc("/inputs", controllers.InputsPageHandler(sm, v)).Methods("GET")
	authRouter.HandleFunc("/inputs", controllers.SubmitInputsHandler(sm, usage)).Methods("POST")
	authRouter.HandleFunc("/trends", controllers.TrendsHandler(sm, usage, v)).Methods("GET")
	authRouter.HandleFunc("/suggestions", controllers.SuggestionsHandler(sm, usage, v)).Methods("GET")

	return r
}
