package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-advisor-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/chatting"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/deciding"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/narrating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(decider deciding.Decider, narrator narrating.Narrator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/analysis",
			Method:  http.MethodPost,
			Handler: AnalyzeCampaigns(decider, narrator, cfg),
		},
	}
}

func Sessions(sessions chatting.SessionStore, narrator narrating.Narrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(sessions),
		},
		{
			Path:    "/v1/sessions/:id/questions",
			Method:  http.MethodPost,
			Handler: AskQuestion(sessions, narrator),
		},
		{
			Path:    "/v1/sessions/:id/transcript",
			Method:  http.MethodGet,
			Handler: GetTranscript(sessions),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodDelete,
			Handler: EndSession(sessions),
		},
	}
}
