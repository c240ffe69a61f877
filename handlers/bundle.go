package handlers

import (
	userRepo "homestay/database/repository/user"
)

// HandlerBundle aggregates the handlers and the repositories the route
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Booking  *BookingHandler
	Property *PropertyHandler
	User     *UserHandler
}
