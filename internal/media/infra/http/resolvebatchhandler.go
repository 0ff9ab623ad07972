package http

import (
	"net/http"

	"github.com/hoshibmatchi/hoshi-client/internal/media/api"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
)

type ResolveBatchHandler struct {
	resolver api.ResolverService
}

func NewResolveBatchHandler(resolver api.ResolverService) ResolveBatchHandler {
	return ResolveBatchHandler{resolver: resolver}
}

func (h ResolveBatchHandler) Method() string {
	return http.MethodPost
}

func (h ResolveBatchHandler) Path() string {
	return resolvePath
}

func (h ResolveBatchHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[resolveBatchIn](), err)
	if err != nil {
		return err
	}

	urls := h.resolver.ResolveMany(r.Context(), in.Paths)
	w.SetJSONBody(resolveBatchOut{URLs: urls})
	return nil
}

type resolveBatchIn struct {
	Paths []string `json:"paths"`
}

type resolveBatchOut struct {
	URLs []string `json:"urls"`
}
