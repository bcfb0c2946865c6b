package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/profile-forge/internal/archive"
	"github.com/jonathan/profile-forge/internal/bot"
	"github.com/jonathan/profile-forge/internal/db"
	"github.com/jonathan/profile-forge/internal/devicon"
	"github.com/jonathan/profile-forge/internal/github"
	"github.com/jonathan/profile-forge/internal/parsing"
	"github.com/jonathan/profile-forge/internal/preview"
	"github.com/jonathan/profile-forge/internal/stt"
	"github.com/jonathan/profile-forge/internal/types"
	"github.com/jonathan/profile-forge/internal/validation"
)

// SessionResponse describes a conversation session.
type SessionResponse struct {
	SessionID string             `json:"session_id"`
	State     string             `json:"state"`
	Profile   *types.ProfileData `json:"profile,omitempty"`
	Readme    string             `json:"readme,omitempty"`
}

// MessageRequest is one user turn. Audio is base64-encoded when present.
type MessageRequest struct {
	Text          string `json:"text,omitempty"`
	AudioBase64   string `json:"audio_base64,omitempty"`
	AudioFilename string `json:"audio_filename,omitempty"`
}

// MessageResponse is the bot's reply to a turn.
type MessageResponse struct {
	Reply  string `json:"reply"`
	State  string `json:"state"`
	Readme string `json:"readme,omitempty"`
	Done   bool   `json:"done"`
}

// GenerateRequest is the one-shot generation request: a self-description
// plus optional contact fields that override whatever the model extracts.
type GenerateRequest struct {
	Description string `json:"description"`
	Name        string `json:"name,omitempty"`
	GitHub      string `json:"github,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
	Portfolio   string `json:"portfolio,omitempty"`
	Email       string `json:"email,omitempty"`
}

// GenerateResponse carries the generated document and the resolution detail.
type GenerateResponse struct {
	Readme  string                  `json:"readme"`
	Profile *types.ProfileData      `json:"profile"`
	Skills  []devicon.ResolvedSkill `json:"skills"`
}

// TranscribeRequest carries a base64-encoded audio payload.
type TranscribeRequest struct {
	AudioBase64 string `json:"audio_base64"`
	Filename    string `json:"filename,omitempty"`
}

// ResolveRequest asks for icon resolution of raw skill strings.
type ResolveRequest struct {
	Skills []string `json:"skills"`
}

// DeployRequest carries the user's GitHub personal access token.
type DeployRequest struct {
	Token string `json:"token"`
}

// PreviewRequest carries the token used to render the README preview.
// GitHub's markdown API needs authentication for reasonable rate limits.
type PreviewRequest struct {
	Token string `json:"token"`
}

// DeployResponse reports the outcome of a profile deployment.
type DeployResponse struct {
	Username    string `json:"username"`
	RepoURL     string `json:"repo_url"`
	RepoCreated bool   `json:"repo_created"`
	ProfileURL  string `json:"profile_url"`
}

// RatingRequest is user feedback on a generated README.
type RatingRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Stars     int    `json:"stars"`
	Feedback  string `json:"feedback,omitempty"`
}

// CreateSessionResponse returns the new session's ID with the greeting.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	State     string `json:"state"`
}

// handleCreateSession starts a conversation and returns the greeting.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Create()

	reply, err := s.engine.Advance(r.Context(), session, bot.Message{})
	if err != nil {
		s.sessions.End(session.ID)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to start session: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreateSessionResponse{
		SessionID: session.ID,
		Reply:     reply.Text,
		State:     string(reply.State),
	})
}

// handleSessionMessage advances a conversation by one turn.
func (s *Server) handleSessionMessage(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	msg := bot.Message{Text: req.Text, AudioFilename: req.AudioFilename}
	if req.AudioBase64 != "" {
		audio, err := base64.StdEncoding.DecodeString(req.AudioBase64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid audio encoding")
			return
		}
		if req.AudioFilename != "" && !validation.ValidAudioFilename(req.AudioFilename) {
			s.errorResponse(w, http.StatusBadRequest, "Unsupported audio format")
			return
		}
		msg.Audio = audio
	}

	reply, err := s.engine.Advance(r.Context(), session, msg)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if reply.Done && s.db != nil {
		s.persistCompletedSession(r, session.Snapshot())
	}

	s.jsonResponse(w, http.StatusOK, MessageResponse{
		Reply:  reply.Text,
		State:  string(reply.State),
		Readme: reply.Readme,
		Done:   reply.Done,
	})
}

// handleGetSession returns the session's current state and document.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	view := session.Snapshot()
	s.jsonResponse(w, http.StatusOK, SessionResponse{
		SessionID: view.ID,
		State:     string(view.State),
		Profile:   &view.Profile,
		Readme:    view.Readme,
	})
}

// handleEndSession discards a conversation.
func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.sessions.Get(id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.sessions.End(id)
	w.WriteHeader(http.StatusNoContent)
}

// handleSessionBundle downloads the manual-setup zip for a session.
func (s *Server) handleSessionBundle(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	view := session.Snapshot()
	if view.Readme == "" {
		s.errorResponse(w, http.StatusConflict, "Session has no generated README yet")
		return
	}

	bundle, err := archive.BuildProfileBundle(view.Readme)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build bundle: "+err.Error())
		return
	}

	filename := validation.SanitizeFilename(view.Profile.GitHub)
	if filename == "file" {
		filename = "profile"
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+"-profile.zip"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(bundle); err != nil {
		log.Printf("Error writing bundle response: %v", err)
	}
}

// handleSessionDeploy pushes the session's README to the user's profile
// repository using their personal access token. The token is used for
// the one deployment and never stored.
func (s *Server) handleSessionDeploy(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	var req DeployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Token == "" {
		s.errorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	view := session.Snapshot()
	if view.Readme == "" {
		s.errorResponse(w, http.StatusConflict, "Session has no generated README yet")
		return
	}

	client, err := github.NewClient(req.Token, s.githubOpts)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := github.DeployProfile(r.Context(), client, view.Profile.GitHub, view.Readme)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Deployment failed: "+err.Error())
		return
	}

	if s.db != nil {
		s.markDeployed(r, view.ID, result.RepoURL)
	}

	s.jsonResponse(w, http.StatusOK, DeployResponse{
		Username:    result.Username,
		RepoURL:     result.RepoURL,
		RepoCreated: result.RepoCreated,
		ProfileURL:  "https://github.com/" + result.Username,
	})
}

// handleSessionPreview renders the session's README through the GitHub
// markdown API and screenshots it in a headless browser so the client
// can show the user what the profile will look like before deploying.
func (s *Server) handleSessionPreview(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Token == "" {
		s.errorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	view := session.Snapshot()
	if view.Readme == "" {
		s.errorResponse(w, http.StatusConflict, "Session has no generated README yet")
		return
	}

	client, err := github.NewClient(req.Token, s.githubOpts)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	html, err := client.RenderMarkdown(r.Context(), view.Readme)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Markdown rendering failed: "+err.Error())
		return
	}

	img, err := preview.Screenshot(r.Context(), html, preview.Options{})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Preview rendering failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		log.Printf("Error writing preview response: %v", err)
	}
}

// handleGenerate runs the whole pipeline in one request, without a
// conversation: extract, resolve, assemble.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if !validation.ValidDescriptionLength(req.Description) {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("description must be between %d and %d characters",
				validation.MinDescriptionLength, validation.MaxDescriptionLength))
		return
	}

	profile, err := parsing.ExtractProfile(r.Context(), s.llmClient, req.Description)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Extraction failed: "+err.Error())
		return
	}

	// Explicitly supplied contact fields win over extracted ones
	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.GitHub != "" {
		profile.GitHub = req.GitHub
	}
	if req.LinkedIn != "" {
		profile.LinkedIn = req.LinkedIn
	}
	if req.Portfolio != "" {
		profile.Portfolio = req.Portfolio
	}
	if req.Email != "" {
		profile.Email = req.Email
	}

	doc, err := s.assembler.Assemble(r.Context(), profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Assembly failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		Readme:  doc,
		Profile: profile,
		Skills:  s.resolver.ResolveBatch(profile.AllSkillStrings()),
	})
}

// handleTranscribe converts an audio payload to text.
func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	var req TranscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.AudioBase64 == "" {
		s.errorResponse(w, http.StatusBadRequest, "audio_base64 is required")
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.AudioBase64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid audio encoding")
		return
	}

	transcript, err := s.transcriber.Transcribe(r.Context(), audio, stt.DetectMIMEType(req.Filename))
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Transcription failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"transcript": transcript})
}

// handleResolve resolves raw skill strings to icons and categories.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Skills) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "skills is required")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": s.resolver.ResolveBatch(req.Skills),
	})
}

// handleSkillSearch finds catalog skills matching a substring query.
func (s *Server) handleSkillSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "q is required")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"query":   query,
		"matches": s.resolver.Search(query, limit),
	})
}

// handleAddRating stores user feedback on a generated README.
func (s *Server) handleAddRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Stars < db.MinStars || req.Stars > db.MaxStars {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("stars must be between %d and %d", db.MinStars, db.MaxStars))
		return
	}

	var dbSessionID *uuid.UUID
	if req.SessionID != "" {
		s.dbSessionsMu.Lock()
		if id, ok := s.dbSessions[req.SessionID]; ok {
			dbSessionID = &id
		}
		s.dbSessionsMu.Unlock()
	}

	id, err := s.db.AddRating(r.Context(), dbSessionID, req.Stars, req.Feedback)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store rating: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleRatingSummary reports the average rating and recent feedback.
func (s *Server) handleRatingSummary(w http.ResponseWriter, r *http.Request) {
	avg, count, err := s.db.AverageRating(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load ratings: "+err.Error())
		return
	}

	recent, err := s.db.RecentFeedback(r.Context(), 10)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load feedback: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"average": avg,
		"count":   count,
		"recent":  recent,
	})
}

// handlePopularSkills reports the most frequently generated skills.
func (s *Server) handlePopularSkills(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	skills, err := s.db.PopularSkills(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load skills: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// persistCompletedSession records a finished conversation for history
// and skill statistics. Failures are logged, not surfaced: persistence
// is best-effort and the user already has their document.
func (s *Server) persistCompletedSession(r *http.Request, view bot.SessionView) {
	s.dbSessionsMu.Lock()
	_, alreadyStored := s.dbSessions[view.ID]
	s.dbSessionsMu.Unlock()
	if alreadyStored {
		return
	}

	ctx := r.Context()
	dbID, err := s.db.CreateSession(ctx, &db.SessionCreateInput{
		GitHubUsername: view.Profile.GitHub,
	})
	if err != nil {
		log.Printf("Failed to persist session %s: %v", view.ID, err)
		return
	}

	profileJSON, err := json.Marshal(view.Profile)
	if err != nil {
		log.Printf("Failed to marshal profile for session %s: %v", view.ID, err)
		return
	}
	if err := s.db.CompleteSession(ctx, dbID, profileJSON, view.Readme); err != nil {
		log.Printf("Failed to complete persisted session %s: %v", view.ID, err)
		return
	}

	resolved := s.resolver.ResolveBatch(view.Profile.AllSkillStrings())
	skills := make([]db.SessionSkill, 0, len(resolved))
	for _, sk := range resolved {
		name := sk.CanonicalName
		if name == "" {
			name = sk.InputText
		}
		skills = append(skills, db.SessionSkill{
			SkillName: name,
			Category:  string(sk.Category),
			HasIcon:   sk.Resolved(),
		})
	}
	if err := s.db.AddSessionSkills(ctx, dbID, skills); err != nil {
		log.Printf("Failed to record skills for session %s: %v", view.ID, err)
	}

	s.dbSessionsMu.Lock()
	s.dbSessions[view.ID] = dbID
	s.dbSessionsMu.Unlock()
}

// markDeployed updates the persisted session row after a deployment.
func (s *Server) markDeployed(r *http.Request, sessionID, repoURL string) {
	s.dbSessionsMu.Lock()
	dbID, ok := s.dbSessions[sessionID]
	s.dbSessionsMu.Unlock()
	if !ok {
		return
	}
	if err := s.db.MarkSessionDeployed(r.Context(), dbID, repoURL); err != nil {
		log.Printf("Failed to mark session %s deployed: %v", sessionID, err)
	}
}
