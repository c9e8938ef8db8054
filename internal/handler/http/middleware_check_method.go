package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered
// as the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond 405 whenever a request path
// matches a registered route but the HTTP method does not. This override
// responds 404 instead, hiding the existence of the route from callers
// probing with unsupported methods. If the method IS registered for the
// matched route, the request is forwarded to the router's normal
// ServeHTTP pipeline.
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded during this check.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		allRoutes := router.Routes()
		var foundRoute chi.Route
		for _, route := range allRoutes {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
