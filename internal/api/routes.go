package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/story-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
)

const OpenAPIPath = "/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/generate").
		Produces(restful.MIME_JSON)

	// Any content type is accepted; a body that is not JSON falls back to defaults.
	ws.
		Route(ws.POST("").
			To(handler.Generate).
			Consumes(restful.MIME_JSON, "*/*").
			Doc("Generate a story").
			Metadata(restfulspec.KeyOpenAPITags, []string{"story"}).
			Reads(models.StoryRequest{}).
			Writes(models.SuccessResponse{}).
			Returns(200, "OK", models.SuccessResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

// RegisterOpsRoutes adds the health check and the OpenAPI document.
// It must run after every other web service is registered.
func RegisterOpsRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/health").
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(models.HealthResponse{}).
			Returns(200, "OK", models.HealthResponse{}))

	container.Add(ws)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Story Agent API",
			Description: "Structured story generation backed by a hosted LLM",
			Version:     Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "story", Description: "Story generation"}},
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
	}
}
