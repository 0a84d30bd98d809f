package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/vidscope/vidscope/pkg/domain"
)

// syncHandler runs a full sync pass and returns the per-account report.
// Failing to load the account list is the only 500; individual account
// failures ride along inside the report body.
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	report, err := s.syncer.Run(r.Context())
	if err != nil {
		log.Printf("[ERROR] sync run failed: %v", err)
		renderJSON(w, r, http.StatusInternalServerError, map[string]interface{}{
			"success":   false,
			"error":     err.Error(),
			"timestamp": time.Now(),
		})
		return
	}
	renderJSON(w, r, http.StatusOK, report)
}

// createAccountHandler registers a new dashboard account
func (s *Server) createAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username   string `json:"username"`
		Credential string `json:"credential"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Username == "" {
		renderError(w, r, fmt.Errorf("username is required"), http.StatusBadRequest)
		return
	}

	account := &domain.Account{Username: req.Username, Credential: req.Credential}
	if err := s.db.CreateAccount(r.Context(), account); err != nil {
		log.Printf("[ERROR] failed to create account: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, account)
}

// updateCredentialHandler replaces the stored upstream credential
func (s *Server) updateCredentialHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Credential string `json:"credential"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Credential == "" {
		renderError(w, r, fmt.Errorf("credential is required"), http.StatusBadRequest)
		return
	}

	if err := s.db.UpdateCredential(r.Context(), id, req.Credential); err != nil {
		log.Printf("[ERROR] failed to update credential for account %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

// listSourcesHandler returns all tracked creators for an account
func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	sources, err := s.db.GetSources(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to list sources for account %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, sources)
}

// createSourceHandler starts tracking a creator for an account
func (s *Server) createSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		UpstreamID int64  `json:"upstream_id"`
		Name       string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.UpstreamID == 0 {
		renderError(w, r, fmt.Errorf("upstream_id is required"), http.StatusBadRequest)
		return
	}

	source := &domain.Source{AccountID: id, UpstreamID: req.UpstreamID, Name: req.Name, Active: true}
	if err := s.db.CreateSource(r.Context(), source); err != nil {
		log.Printf("[ERROR] failed to create source for account %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, source)
}

// deleteSourceHandler stops tracking a creator
func (s *Server) deleteSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid source ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteSource(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to delete source %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// listVideosHandler returns persisted videos, newest first
func (s *Server) listVideosHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	videos, err := s.db.GetVideos(r.Context(), id, limit, offset)
	if err != nil {
		log.Printf("[ERROR] failed to list videos for account %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, videos)
}

// listNotificationsHandler returns recent notifications, newest first
func (s *Server) listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	limit := queryInt(r, "limit", 20)

	notifications, err := s.db.GetNotifications(r.Context(), id, limit)
	if err != nil {
		log.Printf("[ERROR] failed to list notifications for account %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, notifications)
}

// accountID extracts the account id path parameter
func accountID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account ID")
	}
	return id, nil
}

// queryInt reads an integer query parameter with a default
func queryInt(r *http.Request, name string, def int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
