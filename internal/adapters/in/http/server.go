// Package http exposes the load board over REST. Handlers translate wire
// models into commands and queries and map their errors to status codes.
package http

import (
	"log/slog"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createLoadHandler    commands.CreateLoadCommandHandler
	updateLoadHandler    commands.UpdateLoadCommandHandler
	deleteLoadHandler    commands.DeleteLoadCommandHandler
	createBookingHandler commands.CreateBookingCommandHandler
	updateBookingHandler commands.UpdateBookingCommandHandler
	deleteBookingHandler commands.DeleteBookingCommandHandler

	// Query handlers
	getLoadHandler      queries.GetLoadQueryHandler
	listLoadsHandler    queries.ListLoadsQueryHandler
	getBookingHandler   queries.GetBookingQueryHandler
	listBookingsHandler queries.ListBookingsQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createLoadHandler commands.CreateLoadCommandHandler,
	updateLoadHandler commands.UpdateLoadCommandHandler,
	deleteLoadHandler commands.DeleteLoadCommandHandler,
	createBookingHandler commands.CreateBookingCommandHandler,
	updateBookingHandler commands.UpdateBookingCommandHandler,
	deleteBookingHandler commands.DeleteBookingCommandHandler,
	getLoadHandler queries.GetLoadQueryHandler,
	listLoadsHandler queries.ListLoadsQueryHandler,
	getBookingHandler queries.GetBookingQueryHandler,
	listBookingsHandler queries.ListBookingsQueryHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createLoadHandler:    createLoadHandler,
		updateLoadHandler:    updateLoadHandler,
		deleteLoadHandler:    deleteLoadHandler,
		createBookingHandler: createBookingHandler,
		updateBookingHandler: updateBookingHandler,
		deleteBookingHandler: deleteBookingHandler,
		getLoadHandler:       getLoadHandler,
		listLoadsHandler:     listLoadsHandler,
		getBookingHandler:    getBookingHandler,
		listBookingsHandler:  listBookingsHandler,
		logger:               logger.With("component", "http_server"),
	}
}
