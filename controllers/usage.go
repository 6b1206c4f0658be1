package controllers

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/smadsen/powerium/models"
	"github.com/smadsen/powerium/repository"
	"github.com/smadsen/powerium/session"
	"github.com/smadsen/powerium/views"
)

// usagePageData feeds the trends and suggestions views: the records for
// the table plus their JSON encoding for the client-side charts.
type usagePageData struct {
	Records     []models.UsageRecord
	RecordsJSON template.JS
}

// InputsPageHandler renders the usage form.
func InputsPageHandler(sm *session.Manager, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, "inputs.html", newPage(sm, w, r, "Inputs"))
	}
}

// SubmitInputsHandler handles a usage submission: validate the form,
// persist one record owned by the session principal, return home.
func SubmitInputsHandler(sm *session.Manager, usage repository.UsageRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sm.CurrentUserID(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		form, problems := models.ParseUsageForm(r)
		if len(problems) > 0 {
			for _, p := range problems {
				sm.Flash(w, r, session.FlashError, p)
			}
			http.Redirect(w, r, "/inputs", http.StatusSeeOther)
			return
		}

		err := usage.CreateUsageRecord(r.Context(), form.Record(userID))
		switch {
		case err == nil:
			sm.Flash(w, r, session.FlashNotice, "Usage saved")
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, repository.ErrUnknownOwner):
			// Session principal no longer exists; force a fresh login.
			_ = sm.LogOut(w, r)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			log.Printf("Error creating usage record: %v", err)
			sm.Flash(w, r, session.FlashError, "Could not save your inputs, please try again")
			http.Redirect(w, r, "/inputs", http.StatusSeeOther)
		}
	}
}

// TrendsHandler renders the user's usage history.
func TrendsHandler(sm *session.Manager, usage repository.UsageRepository, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := loadUsageData(sm, usage, w, r)
		if !ok {
			return
		}
		page := newPage(sm, w, r, "Personalized Trends")
		page.Data = data
		v.Render(w, "trends.html", page)
	}
}

// SuggestionsHandler renders savings suggestions from the same history.
func SuggestionsHandler(sm *session.Manager, usage repository.UsageRepository, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := loadUsageData(sm, usage, w, r)
		if !ok {
			return
		}
		page := newPage(sm, w, r, "Personalized Suggestions")
		page.Data = data
		v.Render(w, "suggestions.html", page)
	}
}

// loadUsageData fetches the principal's records and their JSON
// encoding. A false return means a response has already been written.
func loadUsageData(sm *session.Manager, usage repository.UsageRepository, w http.ResponseWriter, r *http.Request) (*usagePageData, bool) {
	userID, ok := sm.CurrentUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return nil, false
	}

	records, err := usage.GetUsageByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Error fetching usage records: %v", err)
		sm.Flash(w, r, session.FlashError, "Could not load your usage data, please try again")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		log.Printf("Error encoding usage records: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return &usagePageData{Records: records, RecordsJSON: template.JS(encoded)}, true
}
