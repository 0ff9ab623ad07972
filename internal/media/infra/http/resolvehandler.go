package http

import (
	"net/http"
	"time"

	"github.com/hoshibmatchi/hoshi-client/internal/media/api"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
)

const resolvePath = "/media/resolve"

type ResolveHandler struct {
	resolver api.ResolverService
}

func NewResolveHandler(resolver api.ResolverService) ResolveHandler {
	return ResolveHandler{resolver: resolver}
}

func (h ResolveHandler) Method() string {
	return http.MethodGet
}

func (h ResolveHandler) Path() string {
	return resolvePath
}

func (h ResolveHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	var path, fallback string
	if value := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("path")); value != nil {
		path = *value
	}
	if value := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("fallback")); value != nil {
		fallback = *value
	}

	var expiry time.Duration
	if seconds := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[int]("expiry")); seconds != nil {
		expiry = time.Duration(*seconds) * time.Second
	}

	signedURL := h.resolver.ResolveSecureURLWithExpiry(r.Context(), path, fallback, expiry)
	w.SetJSONBody(resolveOut{URL: signedURL})
	return nil
}

type resolveOut struct {
	URL string `json:"url"`
}
