package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/users").
			To(handler.Register).
			Doc("Register a new user by email").
			Metadata(restfulspec.KeyOpenAPITags, []string{"accounts"}).
			Reads(RegisterRequest{}).
			Returns(201, "Created", nil).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(409, "Already Registered", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/login").
			To(handler.Login).
			Doc("Log an existing user in").
			Metadata(restfulspec.KeyOpenAPITags, []string{"accounts"}).
			Reads(RegisterRequest{}).
			Returns(200, "OK", nil).
			Returns(401, "Unknown User", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/users/{email}/quota").
			To(handler.Quota).
			Doc("Remaining message quota for a user").
			Metadata(restfulspec.KeyOpenAPITags, []string{"accounts"}).
			Param(ws.PathParameter("email", "Registered user email").DataType("string")).
			Writes(QuotaResponse{}).
			Returns(200, "OK", QuotaResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/users/{email}/messages").
			To(handler.Messages).
			Doc("Stored chat messages for a user").
			Metadata(restfulspec.KeyOpenAPITags, []string{"accounts"}).
			Param(ws.PathParameter("email", "Registered user email").DataType("string")).
			Writes(MessagesResponse{}).
			Returns(200, "OK", MessagesResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
