package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	contentprogress "campaignhub/contexts/campaign-editorial/content-progress-service"
	"campaignhub/contexts/campaign-editorial/content-progress-service/application/commands"
	domainerrors "campaignhub/contexts/campaign-editorial/content-progress-service/domain/errors"
	contenthttp "campaignhub/contexts/campaign-editorial/content-progress-service/transport/http"
	_ "campaignhub/internal/platform/httpserver/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

const maxBodyBytes = 1 << 20

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	http    *http.Server
	content contentprogress.Module
}

func New(content contentprogress.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		content: content,
	}
	s.registerRoutes()
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start blocks until the server stops. A graceful Shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server stopping",
		"event", "http_server_stopping",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	return s.http.Shutdown(ctx)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

type route struct {
	pattern string
	handler http.HandlerFunc
}

// routes lists every API route as a ServeMux pattern. The swagger UI is
// mounted separately in registerRoutes.
func (s *Server) routes() []route {
	return []route{
		{"GET /healthz", s.handleHealth},

		{"GET /v1/campaigns", s.handleListCampaigns},
		{"POST /v1/campaigns", s.handleCreateCampaign},
		{"GET /v1/campaigns/{campaign_id}", s.handleGetCampaign},
		{"PATCH /v1/campaigns/{campaign_id}", s.handleUpdateCampaign},
		{"DELETE /v1/campaigns/{campaign_id}", s.handleDeleteCampaign},
		{"POST /v1/campaigns/{campaign_id}/launch", s.handleCampaignAction(commands.StatusActionLaunch)},
		{"POST /v1/campaigns/{campaign_id}/pause", s.handleCampaignAction(commands.StatusActionPause)},
		{"POST /v1/campaigns/{campaign_id}/resume", s.handleCampaignAction(commands.StatusActionResume)},
		{"POST /v1/campaigns/{campaign_id}/complete", s.handleCampaignAction(commands.StatusActionComplete)},
		{"GET /v1/campaigns/{campaign_id}/history", s.handleListStatusHistory},

		{"GET /v1/campaigns/{campaign_id}/items", s.handleListContentItems},
		{"POST /v1/campaigns/{campaign_id}/items", s.handleCreateContentItem},
		{"PATCH /v1/campaigns/{campaign_id}/items/{item_id}", s.handleUpdateContentItem},
		{"DELETE /v1/campaigns/{campaign_id}/items/{item_id}", s.handleDeleteContentItem},
		{"POST /v1/campaigns/{campaign_id}/items/{item_id}/advance", s.handleAdvanceContentItem},
		{"POST /v1/campaigns/{campaign_id}/items/{item_id}/reset", s.handleResetContentItem},
		{"PUT /v1/campaigns/{campaign_id}/items/{item_id}/status", s.handleSetContentItemStatus},
	}
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	for _, rt := range s.routes() {
		s.mux.HandleFunc(rt.pattern, rt.handler)
	}
}

// @Summary Liveness check
// @Tags system
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// @Summary List campaigns
// @Tags campaigns
// @Param status query string false "planning|active|paused|completed|all"
// @Success 200 {object} contenthttp.ListCampaignsResponse
// @Router /v1/campaigns [get]
func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.ListCampaignsHandler(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Create a campaign
// @Tags campaigns
// @Param request body contenthttp.CreateCampaignRequest true "campaign"
// @Success 201 {object} contenthttp.CampaignResponse
// @Router /v1/campaigns [post]
func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.CreateCampaignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.content.Handler.CreateCampaignHandler(r.Context(), actorID(r), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// @Summary Get a campaign with its content items
// @Tags campaigns
// @Param campaign_id path string true "campaign id"
// @Success 200 {object} contenthttp.CampaignResponse
// @Failure 404 {object} contenthttp.ErrorResponse
// @Router /v1/campaigns/{campaign_id} [get]
func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.GetCampaignHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Update campaign briefing fields
// @Tags campaigns
// @Param campaign_id path string true "campaign id"
// @Param request body contenthttp.UpdateCampaignRequest true "fields to change"
// @Success 200 {object} contenthttp.CampaignResponse
// @Failure 400 {object} contenthttp.ErrorResponse
// @Router /v1/campaigns/{campaign_id} [patch]
func (s *Server) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.UpdateCampaignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.content.Handler.UpdateCampaignHandler(r.Context(), actorID(r), r.PathValue("campaign_id"), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Delete a campaign and its status history
// @Tags campaigns
// @Param campaign_id path string true "campaign id"
// @Success 204
// @Router /v1/campaigns/{campaign_id} [delete]
func (s *Server) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := s.content.Handler.DeleteCampaignHandler(r.Context(), actorID(r), r.PathValue("campaign_id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Move a campaign through its lifecycle
// @Tags campaigns
// @Param campaign_id path string true "campaign id"
// @Success 200 {object} contenthttp.CampaignResponse
// @Failure 409 {object} contenthttp.ErrorResponse
// @Router /v1/campaigns/{campaign_id}/launch [post]
// @Router /v1/campaigns/{campaign_id}/pause [post]
// @Router /v1/campaigns/{campaign_id}/resume [post]
// @Router /v1/campaigns/{campaign_id}/complete [post]
func (s *Server) handleCampaignAction(action commands.ChangeStatusAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := s.content.Handler.ChangeCampaignStatusHandler(
			r.Context(),
			actorID(r),
			r.PathValue("campaign_id"),
			action,
		)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// @Summary List content status changes of a campaign
// @Tags content
// @Param campaign_id path string true "campaign id"
// @Success 200 {object} contenthttp.ListStatusHistoryResponse
// @Router /v1/campaigns/{campaign_id}/history [get]
func (s *Server) handleListStatusHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.ListStatusHistoryHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary List content items of a campaign
// @Tags content
// @Param campaign_id path string true "campaign id"
// @Param q query string false "case-insensitive title search"
// @Param status query string false "content status or all"
// @Param platform query string false "platform or all"
// @Success 200 {object} contenthttp.ListContentItemsResponse
// @Router /v1/campaigns/{campaign_id}/items [get]
func (s *Server) handleListContentItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.content.Handler.ListContentItemsHandler(
		r.Context(),
		r.PathValue("campaign_id"),
		query.Get("q"),
		query.Get("status"),
		query.Get("platform"),
	)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Create a content task
// @Tags content
// @Param campaign_id path string true "campaign id"
// @Param request body contenthttp.CreateContentItemRequest true "task"
// @Success 201 {object} contenthttp.ContentItemResponse
// @Failure 400 {object} contenthttp.ErrorResponse
// @Router /v1/campaigns/{campaign_id}/items [post]
func (s *Server) handleCreateContentItem(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.CreateContentItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.content.Handler.CreateContentItemHandler(r.Context(), actorID(r), r.PathValue("campaign_id"), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// @Summary Edit a content item
// @Tags content
// @Param campaign_id path string true "campaign id"
// @Param item_id path string true "item id"
// @Param request body contenthttp.UpdateContentItemRequest true "fields to change"
// @Success 200 {object} contenthttp.ContentItemResponse
// @Failure 400 {object} contenthttp.ErrorResponse
// @Router /v1/campaigns/{campaign_id}/items/{item_id} [patch]
func (s *Server) handleUpdateContentItem(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.UpdateContentItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.content.Handler.UpdateContentItemHandler(
		r.Context(),
		actorID(r),
		r.PathValue("campaign_id"),
		r.PathValue("item_id"),
		req,
	)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Delete a content item
// @Tags content
// @Param campaign_id path string true "campaign id"
// @Param item_id path string true "item id"
// @Success 204
// @Failure 404 {object} contenthttp.ErrorResponse
// @Router /v1/campaigns/{campaign_id}/items/{item_id} [delete]
func (s *Server) handleDeleteContentItem(w http.ResponseWriter, r *http.Request) {
	err := s.content.Handler.DeleteContentItemHandler(
		r.Context(),
		actorID(r),
		r.PathValue("campaign_id"),
		r.PathValue("item_id"),
	)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Advance a content item one step through the workflow
// @Tags content
// @Param campaign_id path string true "campaign id"
// @Param item_id path string true "item id"
// @Success 200 {object} contenthttp.TransitionResponse
// @Router /v1/campaigns/{campaign_id}/items/{item_id}/advance [post]
func (s *Server) handleAdvanceContentItem(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.AdvanceContentItemHandler(
		r.Context(),
		actorID(r),
		r.PathValue("campaign_id"),
		r.PathValue("item_id"),
	)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Reset a content item to not_started
// @Tags content
// @Param campaign_id path string true "campaign id"
// @Param item_id path string true "item id"
// @Success 200 {object} contenthttp.TransitionResponse
// @Router /v1/campaigns/{campaign_id}/items/{item_id}/reset [post]
func (s *Server) handleResetContentItem(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.ResetContentItemHandler(
		r.Context(),
		actorID(r),
		r.PathValue("campaign_id"),
		r.PathValue("item_id"),
	)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Set a content item status explicitly
// @Tags content
// @Param campaign_id path string true "campaign id"
// @Param item_id path string true "item id"
// @Param request body contenthttp.SetContentStatusRequest true "status"
// @Success 200 {object} contenthttp.TransitionResponse
// @Router /v1/campaigns/{campaign_id}/items/{item_id}/status [put]
func (s *Server) handleSetContentItemStatus(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.SetContentStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.content.Handler.SetContentItemStatusHandler(
		r.Context(),
		actorID(r),
		r.PathValue("campaign_id"),
		r.PathValue("item_id"),
		req,
	)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrCampaignNotFound):
		writeError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrContentItemNotFound):
		writeError(w, http.StatusNotFound, "content_item_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCampaignInput):
		writeError(w, http.StatusBadRequest, "invalid_campaign_input", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidContentItemInput):
		writeError(w, http.StatusBadRequest, "invalid_content_item_input", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidContentFilter):
		writeError(w, http.StatusBadRequest, "invalid_content_filter", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidStateTransition):
		writeError(w, http.StatusConflict, "invalid_state_transition", err.Error())
	case errors.Is(err, domainerrors.ErrCampaignAlreadyExists):
		writeError(w, http.StatusConflict, "campaign_already_exists", err.Error())
	case errors.Is(err, domainerrors.ErrStatusChangeExists):
		writeError(w, http.StatusConflict, "status_change_exists", err.Error())
	default:
		s.logger.Error("request failed",
			"event", "http_request_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, contenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// actorID is optional; commands record "anonymous" when it is missing.
func actorID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}
