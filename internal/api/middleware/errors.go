package middleware

import (
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
	"github.com/rs/zerolog/log"
)

// UnknownErrorMessage is reported when a handler fails without a usable error.
const UnknownErrorMessage = "Unknown error occurred"

// ErrorResponse is the failure envelope written by every route.
type ErrorResponse = models.FailureResponse

func HandleError(resp *restful.Response, err error, status int) {
	message := UnknownErrorMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}

	if writeErr := resp.WriteHeaderAndEntity(status, ErrorResponse{
		Success: false,
		Error:   message,
	}); writeErr != nil {
		log.Error().Err(writeErr).Msg("failed to write error response")
	}
}
