package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/smadsen/powerium/models"
	"github.com/smadsen/powerium/repository"
	"github.com/smadsen/powerium/session"
	"github.com/smadsen/powerium/views"
)

// LoginPageHandler renders the login form.
func LoginPageHandler(sm *session.Manager, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, "login.html", newPage(sm, w, r, "Login"))
	}
}

// LoginHandler handles a login submission. Success establishes the
// session principal and lands on the home page; any failure flashes a
// message and returns to the login form with the session still Anonymous.
func LoginHandler(sm *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, problems := models.ParseLoginForm(r)
		if len(problems) > 0 {
			for _, p := range problems {
				sm.Flash(w, r, session.FlashError, p)
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		err := sm.Authenticate(w, r, form.Email, form.Password)
		switch {
		case err == nil:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, session.ErrInvalidCredentials):
			sm.Flash(w, r, session.FlashError, "Invalid email or password")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			log.Printf("Error authenticating user: %v", err)
			sm.Flash(w, r, session.FlashError, "Login failed, please try again")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		}
	}
}

// RegisterPageHandler renders the registration form.
func RegisterPageHandler(sm *session.Manager, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, "register.html", newPage(sm, w, r, "Register Account"))
	}
}

// RegisterHandler handles a registration submission: validate, hash,
// insert, then send the new user to the login page. Store failures
// return to the registration form.
func RegisterHandler(sm *session.Manager, users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, problems := models.ParseRegisterForm(r)
		if len(problems) > 0 {
			for _, p := range problems {
				sm.Flash(w, r, session.FlashError, p)
			}
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}

		_, err := users.CreateUser(r.Context(), form.Name, form.Email, form.Password)
		switch {
		case err == nil:
			sm.Flash(w, r, session.FlashNotice, "Account created, please log in")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.Is(err, repository.ErrEmailTaken):
			sm.Flash(w, r, session.FlashError, "An account with this email already exists")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
		default:
			log.Printf("Error creating user: %v", err)
			sm.Flash(w, r, session.FlashError, "Registration failed, please try again")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
		}
	}
}

// LogoutHandler clears the session principal and returns to the login
// page. Reached as DELETE through the method-override form field.
func LogoutHandler(sm *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sm.LogOut(w, r); err != nil {
			log.Printf("Error logging out: %v", err)
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
