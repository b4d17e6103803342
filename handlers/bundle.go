package handlers

// HandlerBundle groups the handlers the route registry wires up.
type HandlerBundle struct {
	RSVP    *RSVPHandler
	Guest   *GuestHandler
	Wedding *WeddingHandler
	Site    *SiteHandler
}
