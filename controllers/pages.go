package controllers

import (
	"net/http"

	"github.com/smadsen/powerium/session"
	"github.com/smadsen/powerium/views"
)

// newPage builds the common view data bag: title, login state and any
// pending flash messages, which are drained here.
func newPage(sm *session.Manager, w http.ResponseWriter, r *http.Request, title string) views.Page {
	return views.Page{
		Title:    title,
		LoggedIn: sm.IsAuthenticated(r),
		Errors:   sm.Flashes(w, r, session.FlashError),
		Notices:  sm.Flashes(w, r, session.FlashNotice),
	}
}

// HomeHandler renders the landing page for an authenticated user.
func HomeHandler(sm *session.Manager, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, "home.html", newPage(sm, w, r, "Powerium"))
	}
}

// AboutHandler renders the static informational page.
func AboutHandler(sm *session.Manager, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, "about.html", newPage(sm, w, r, "About Powerium"))
	}
}

// ContactHandler renders the static help page.
func ContactHandler(sm *session.Manager, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, "contact.html", newPage(sm, w, r, "Help"))
	}
}
