package http

import (
	"net/http"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
	"loadboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// CreateBooking handles POST /booking - places a bid on a load.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var body servers.CreateBookingJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	loadID, err := kernel.UUIDFromRaw(body.LoadId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(),
		loadID,
		body.TransporterId,
		decimal.NewFromFloat(body.ProposedRate),
		deref(body.Comment),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.createBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondBooking(ctx, http.StatusCreated, cmd.BookingID())
}

// ListBookings handles GET /booking - pages through bookings.
func (s *Server) ListBookings(ctx echo.Context, params servers.ListBookingsParams) error {
	filter := ports.BookingFilter{TransporterID: deref(params.TransporterId)}
	if params.LoadId != nil {
		loadID, err := kernel.UUIDFromRaw(*params.LoadId)
		if err != nil {
			return s.fail(ctx, err)
		}
		filter.LoadID = &loadID
	}
	if params.Status != nil {
		status, err := booking.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		filter.Status = status
	}

	query, err := queries.NewListBookingsQuery(filter, toPageRequest(params.Page, params.Size, params.SortBy, params.SortDir))
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.listBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.BookingPage{
		Content:       mapSlice(page.Items, toBookingModel),
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalItems,
		TotalPages:    page.TotalPages,
	})
}

// GetBooking handles GET /booking/{bookingId}.
func (s *Server) GetBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(bookingId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondBooking(ctx, http.StatusOK, id)
}

// UpdateBooking handles PUT /booking/{bookingId}. Accepting or rejecting a
// booking cascades to its siblings and its load. The loadId of the body is
// ignored.
func (s *Server) UpdateBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	var body servers.UpdateBookingJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.UUIDFromRaw(bookingId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var status *booking.Status
	if body.Status != nil {
		parsed, err := booking.ParseStatus(string(*body.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateBookingCommand(
		id,
		body.TransporterId,
		decimal.NewFromFloat(body.ProposedRate),
		deref(body.Comment),
		status,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.updateBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondBooking(ctx, http.StatusOK, id)
}

// DeleteBooking handles DELETE /booking/{bookingId}.
func (s *Server) DeleteBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(bookingId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteBookingCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.deleteBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondBooking(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetBookingQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	b, err := s.getBookingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, toBookingModel(b))
}
