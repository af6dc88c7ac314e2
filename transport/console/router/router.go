package router

import (
	"hotel/internal/handlers/hotel"
	"hotel/transport/console/menu"
)

type DomainHandlers struct {
	Hotel hotel.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(m *menu.Menu) {
	r.DomainHandlers.Hotel.Router(m)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
