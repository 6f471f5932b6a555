package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get bookings with filters
	// (GET /booking)
	ListBookings(ctx echo.Context, params ListBookingsParams) error
	// Create a new booking
	// (POST /booking)
	CreateBooking(ctx echo.Context) error
	// Delete booking
	// (DELETE /booking/{bookingId})
	DeleteBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// Get booking by ID
	// (GET /booking/{bookingId})
	GetBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// Update booking
	// (PUT /booking/{bookingId})
	UpdateBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// Get loads with filters
	// (GET /load)
	ListLoads(ctx echo.Context, params ListLoadsParams) error
	// Create a new load
	// (POST /load)
	CreateLoad(ctx echo.Context) error
	// Delete load
	// (DELETE /load/{loadId})
	DeleteLoad(ctx echo.Context, loadId openapi_types.UUID) error
	// Get load by ID
	// (GET /load/{loadId})
	GetLoad(ctx echo.Context, loadId openapi_types.UUID) error
	// Update load
	// (PUT /load/{loadId})
	UpdateLoad(ctx echo.Context, loadId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListBookings converts echo context to params.
func (w *ServerInterfaceWrapper) ListBookings(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListBookingsParams

	err = runtime.BindQueryParameter("form", true, false, "loadId", ctx.QueryParams(), &params.LoadId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter loadId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "transporterId", ctx.QueryParams(), &params.TransporterId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter transporterId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	if err = bindPaging(ctx, &params.Page, &params.Size, &params.SortBy, &params.SortDir); err != nil {
		return err
	}

	return w.Handler.ListBookings(ctx, params)
}

// CreateBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CreateBooking(ctx echo.Context) error {
	return w.Handler.CreateBooking(ctx)
}

// DeleteBooking converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteBooking(ctx echo.Context) error {
	bookingId, err := bindUUIDPathParameter(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteBooking(ctx, bookingId)
}

// GetBooking converts echo context to params.
func (w *ServerInterfaceWrapper) GetBooking(ctx echo.Context) error {
	bookingId, err := bindUUIDPathParameter(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.GetBooking(ctx, bookingId)
}

// UpdateBooking converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateBooking(ctx echo.Context) error {
	bookingId, err := bindUUIDPathParameter(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateBooking(ctx, bookingId)
}

// ListLoads converts echo context to params.
func (w *ServerInterfaceWrapper) ListLoads(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListLoadsParams

	err = runtime.BindQueryParameter("form", true, false, "shipperId", ctx.QueryParams(), &params.ShipperId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter shipperId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "truckType", ctx.QueryParams(), &params.TruckType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter truckType: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	if err = bindPaging(ctx, &params.Page, &params.Size, &params.SortBy, &params.SortDir); err != nil {
		return err
	}

	return w.Handler.ListLoads(ctx, params)
}

// CreateLoad converts echo context to params.
func (w *ServerInterfaceWrapper) CreateLoad(ctx echo.Context) error {
	return w.Handler.CreateLoad(ctx)
}

// DeleteLoad converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteLoad(ctx echo.Context) error {
	loadId, err := bindUUIDPathParameter(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteLoad(ctx, loadId)
}

// GetLoad converts echo context to params.
func (w *ServerInterfaceWrapper) GetLoad(ctx echo.Context) error {
	loadId, err := bindUUIDPathParameter(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.GetLoad(ctx, loadId)
}

// UpdateLoad converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateLoad(ctx echo.Context) error {
	loadId, err := bindUUIDPathParameter(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateLoad(ctx, loadId)
}

func bindUUIDPathParameter(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindPaging(ctx echo.Context, page **Page, size **Size, sortBy **string, sortDir **SortDir) error {
	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), size); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "sortBy", ctx.QueryParams(), sortBy); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sortBy: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "sortDir", ctx.QueryParams(), sortDir); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sortDir: %s", err))
	}
	return nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group RegisterHandlers needs.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/booking", wrapper.ListBookings)
	router.POST(baseURL+"/booking", wrapper.CreateBooking)
	router.DELETE(baseURL+"/booking/:bookingId", wrapper.DeleteBooking)
	router.GET(baseURL+"/booking/:bookingId", wrapper.GetBooking)
	router.PUT(baseURL+"/booking/:bookingId", wrapper.UpdateBooking)
	router.GET(baseURL+"/load", wrapper.ListLoads)
	router.POST(baseURL+"/load", wrapper.CreateLoad)
	router.DELETE(baseURL+"/load/:loadId", wrapper.DeleteLoad)
	router.GET(baseURL+"/load/:loadId", wrapper.GetLoad)
	router.PUT(baseURL+"/load/:loadId", wrapper.UpdateLoad)
}
