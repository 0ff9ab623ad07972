package http

import (
	"net/http"

	"github.com/hoshibmatchi/hoshi-client/internal/media/api"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
)

type ClearCacheHandler struct {
	resolver api.ResolverService
}

func NewClearCacheHandler(resolver api.ResolverService) ClearCacheHandler {
	return ClearCacheHandler{resolver: resolver}
}

func (h ClearCacheHandler) Method() string {
	return http.MethodDelete
}

func (h ClearCacheHandler) Path() string {
	return "/media/cache"
}

func (h ClearCacheHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	h.resolver.ClearCache(r.Context())
	w.SetStatusCode(http.StatusNoContent)
	return nil
}
