package router

import (
	"airwave/internal/handlers/auth"
	"airwave/internal/handlers/booking"
	"airwave/internal/handlers/chat"
	"airwave/internal/handlers/player"
	"airwave/internal/handlers/station"
	"airwave/internal/handlers/track"
	"airwave/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Station station.Handler
	Booking booking.Handler
	Track   track.Handler
	Chat    chat.Handler
	Player  player.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Station.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Track.Router(routerGroup)
		r.DomainHandlers.Chat.Router(routerGroup)
		r.DomainHandlers.Player.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
