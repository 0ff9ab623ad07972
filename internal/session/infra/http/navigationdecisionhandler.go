package http

import (
	"net/http"

	"github.com/hoshibmatchi/hoshi-client/internal/session/api"
	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
)

type NavigationDecisionHandler struct {
	sessionService api.SessionService
}

func NewNavigationDecisionHandler(sessionService api.SessionService) NavigationDecisionHandler {
	return NavigationDecisionHandler{sessionService: sessionService}
}

func (h NavigationDecisionHandler) Method() string {
	return http.MethodPost
}

func (h NavigationDecisionHandler) Path() string {
	return "/navigation/decision"
}

func (h NavigationDecisionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[navigationIntentIn](), err)
	if err != nil {
		return err
	}

	decision := h.sessionService.Decide(r.Context(), domain.NavigationIntent{
		Path: in.Path,
		Destination: domain.Destination{
			RequiresAuth:  in.RequiresAuth,
			RequiresAdmin: in.RequiresAdmin,
			GuestsOnly:    in.GuestsOnly,
		},
	})

	w.SetJSONBody(decisionOut{
		Allow:      decision.Allowed(),
		RedirectTo: string(decision.RedirectTo),
	})
	return nil
}

type navigationIntentIn struct {
	Path          string `json:"path"`
	RequiresAuth  bool   `json:"requiresAuth"`
	RequiresAdmin bool   `json:"requiresAdmin"`
	GuestsOnly    bool   `json:"guestsOnly"`
}

type decisionOut struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirectTo,omitempty"`
}
