package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/feedscope/feedscope/pkg/auth"
	"github.com/feedscope/feedscope/pkg/db"
	"github.com/feedscope/feedscope/pkg/domain"
	"github.com/feedscope/feedscope/pkg/llm"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// registerHandler creates a new account and returns a token
func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	user, token, err := s.auth.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			renderError(w, r, err, http.StatusConflict)
			return
		}
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	renderJSON(w, r, http.StatusCreated, map[string]interface{}{"token": token, "user": user})
}

// loginHandler verifies credentials and returns a token
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			renderError(w, r, err, http.StatusUnauthorized)
			return
		}
		log.Printf("[ERROR] login failed: %v", err)
		renderError(w, r, fmt.Errorf("login failed"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

// generateRequest is the function-boundary payload: a raw feedback batch
type generateRequest struct {
	Feedback []struct {
		Content   string `json:"content"`
		Category  string `json:"category,omitempty"`
		Sentiment string `json:"sentiment,omitempty"`
	} `json:"feedback"`
}

// generateHandler produces an insight from the feedback batch in the request
// body without touching storage, the caller keeps the result
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("No feedback provided"), http.StatusBadRequest)
		return
	}
	if len(req.Feedback) == 0 {
		renderError(w, r, fmt.Errorf("No feedback provided"), http.StatusBadRequest)
		return
	}

	items := make([]domain.FeedbackItem, len(req.Feedback))
	for i, f := range req.Feedback {
		items[i] = domain.FeedbackItem{Content: f.Content, Category: f.Category, Sentiment: f.Sentiment}
	}

	insight, err := s.generator.Generate(r.Context(), items)
	if err != nil {
		s.renderGenerationError(w, r, err)
		return
	}

	renderJSON(w, r, http.StatusOK, insight)
}

// renderGenerationError maps the analyzer error taxonomy to HTTP statuses
func (s *Server) renderGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		renderError(w, r, errors.New("Rate limits exceeded, please try again later."), http.StatusTooManyRequests)
	case errors.Is(err, llm.ErrPaymentRequired):
		renderError(w, r, errors.New("Payment required, please add funds to your workspace."), http.StatusPaymentRequired)
	default:
		log.Printf("[ERROR] insight generation failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	}
}

// getProfileHandler returns the authenticated user's profile
func (s *Server) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.db.GetUser(r.Context(), userID(r))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, user)
}

// updateProfileHandler updates display name and onboarding wizard state
func (s *Server) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DisplayName         string `json:"display_name"`
		OnboardingStep      int    `json:"onboarding_step"`
		OnboardingCompleted bool   `json:"onboarding_completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	uid := userID(r)
	if err := s.db.UpdateUserProfile(ctx, uid, req.DisplayName, req.OnboardingStep, req.OnboardingCompleted); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to update profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	user, err := s.db.GetUser(ctx, uid)
	if err != nil {
		log.Printf("[ERROR] failed to reload profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, user)
}

// createSourceHandler creates a named feedback source
func (s *Server) createSourceHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		renderError(w, r, fmt.Errorf("source name is required"), http.StatusBadRequest)
		return
	}

	source := &domain.Source{UserID: userID(r), Name: req.Name, Description: req.Description}
	id, err := s.db.CreateSource(r.Context(), source)
	if err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			renderError(w, r, fmt.Errorf("source %q already exists", req.Name), http.StatusConflict)
			return
		}
		log.Printf("[ERROR] failed to create source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	created, err := s.db.GetSource(r.Context(), userID(r), id)
	if err != nil {
		log.Printf("[ERROR] failed to reload source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

// listSourcesHandler returns all sources of the user with counters
func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.db.GetSources(r.Context(), userID(r))
	if err != nil {
		log.Printf("[ERROR] failed to list sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, sources)
}

// getSourceHandler returns a single source
func (s *Server) getSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	source, err := s.db.GetSource(r.Context(), userID(r), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, source)
}

// updateSourceHandler renames a source or changes its description
func (s *Server) updateSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		renderError(w, r, fmt.Errorf("source name is required"), http.StatusBadRequest)
		return
	}

	if err := s.db.UpdateSource(r.Context(), userID(r), id, req.Name, req.Description); err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			renderError(w, r, fmt.Errorf("source not found"), http.StatusNotFound)
		case errors.Is(err, db.ErrAlreadyExists):
			renderError(w, r, fmt.Errorf("source %q already exists", req.Name), http.StatusConflict)
		default:
			log.Printf("[ERROR] failed to update source: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
		}
		return
	}

	source, err := s.db.GetSource(r.Context(), userID(r), id)
	if err != nil {
		log.Printf("[ERROR] failed to reload source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, source)
}

// deleteSourceHandler removes a source with all its feedback and insights
func (s *Server) deleteSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteSource(r.Context(), userID(r), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to delete source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// createFeedbackHandler records a feedback item under a source
func (s *Server) createFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	sourceID, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Content   string `json:"content"`
		Category  string `json:"category"`
		Sentiment string `json:"sentiment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		renderError(w, r, fmt.Errorf("feedback content is required"), http.StatusBadRequest)
		return
	}

	item := &domain.FeedbackItem{
		SourceID:  sourceID,
		UserID:    userID(r),
		Content:   req.Content,
		Category:  req.Category,
		Sentiment: req.Sentiment,
	}

	id, err := s.db.CreateFeedback(r.Context(), item)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to create feedback: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	item.ID = id
	item.CreatedAt = time.Now().UTC()
	renderJSON(w, r, http.StatusCreated, item)
}

// listFeedbackHandler returns all feedback for a source, newest first
func (s *Server) listFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	sourceID, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	items, err := s.db.GetFeedback(r.Context(), userID(r), sourceID)
	if err != nil {
		log.Printf("[ERROR] failed to list feedback: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, items)
}

// deleteFeedbackHandler removes a single feedback item
func (s *Server) deleteFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteFeedback(r.Context(), userID(r), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feedback not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to delete feedback: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// generateForSourceHandler runs the analyzer over the stored feedback of a
// source and persists the resulting insight with count and timestamp
func (s *Server) generateForSourceHandler(w http.ResponseWriter, r *http.Request) {
	sourceID, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	uid := userID(r)

	if _, err := s.db.GetSource(ctx, uid, sourceID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	items, err := s.db.GetFeedback(ctx, uid, sourceID)
	if err != nil {
		log.Printf("[ERROR] failed to load feedback: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// the generator is never invoked on an empty batch
	if len(items) == 0 {
		renderError(w, r, fmt.Errorf("No feedback provided"), http.StatusBadRequest)
		return
	}

	insight, err := s.generator.Generate(ctx, items)
	if err != nil {
		s.renderGenerationError(w, r, err)
		return
	}

	insight.SourceID = sourceID
	insight.UserID = uid
	insight.FeedbackCount = len(items)
	insight.CreatedAt = time.Now().UTC()

	id, err := s.db.CreateInsight(ctx, insight)
	if err != nil {
		log.Printf("[ERROR] failed to persist insight: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	insight.ID = id

	renderJSON(w, r, http.StatusOK, insight)
}

// listInsightsHandler returns all insights for a source, newest first
func (s *Server) listInsightsHandler(w http.ResponseWriter, r *http.Request) {
	sourceID, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	insights, err := s.db.GetInsights(r.Context(), userID(r), sourceID)
	if err != nil {
		log.Printf("[ERROR] failed to list insights: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, insights)
}

// getInsightHandler returns a single insight
func (s *Server) getInsightHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	insight, err := s.db.GetInsight(r.Context(), userID(r), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("insight not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get insight: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, insight)
}

// deleteInsightHandler removes a single insight
func (s *Server) deleteInsightHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteInsight(r.Context(), userID(r), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("insight not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to delete insight: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}
