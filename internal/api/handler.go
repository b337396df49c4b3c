package api

import (
	"io"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/story-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

type Handler struct {
	generator StoryGenerator
	logger    *zerolog.Logger
}

func NewHandler(generator StoryGenerator, logger *zerolog.Logger) *Handler {
	return &Handler{
		generator: generator,
		logger:    logger,
	}
}

// POST /generate
// Body: StoryRequest (all fields optional)
// Returns: SuccessResponse or FailureResponse
func (h *Handler) Generate(req *restful.Request, resp *restful.Response) {
	h.logger.Info().
		Str("url", req.Request.URL.String()).
		Str("method", req.Request.Method).
		Msg("Story request received")

	var body []byte
	if req.Request.Body != nil {
		var err error
		body, err = io.ReadAll(req.Request.Body)
		if err != nil {
			h.logger.Warn().Err(err).Msg("Failed to read request body, using defaults")
			body = nil
		}
	}

	result, err := h.Process(req.Request.Context(), body)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	status, envelope := Envelope(result, nil)
	if err := resp.WriteHeaderAndEntity(status, envelope); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write response")
	}
}

// Health handler GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := models.HealthResponse{
		Status:  "ok",
		Version: Version,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
