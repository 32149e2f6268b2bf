package middleware

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

// RecoverPanic converts a handler panic into a 500 instead of killing the
// serving goroutine.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Msg("recovered from panic in handler")
			resp.WriteHeaderAndEntity(http.StatusInternalServerError, ErrorResponse{
				Error: "internal server error",
			})
		}
	}()

	chain.ProcessFilter(req, resp)
}
