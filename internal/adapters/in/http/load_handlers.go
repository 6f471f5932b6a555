package http

import (
	"net/http"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateLoad handles POST /load - posts a new load.
func (s *Server) CreateLoad(ctx echo.Context) error {
	var body servers.CreateLoadJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	details, err := toLoadDetails(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateLoadCommand(kernel.NewUUID(), details)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.createLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondLoad(ctx, http.StatusCreated, cmd.LoadID())
}

// ListLoads handles GET /load - pages through loads.
func (s *Server) ListLoads(ctx echo.Context, params servers.ListLoadsParams) error {
	filter := ports.LoadFilter{
		ShipperID: deref(params.ShipperId),
		TruckType: deref(params.TruckType),
	}
	if params.Status != nil {
		status, err := load.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		filter.Status = status
	}

	query, err := queries.NewListLoadsQuery(filter, toPageRequest(params.Page, params.Size, params.SortBy, params.SortDir))
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.listLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.LoadPage{
		Content:       mapSlice(page.Items, toLoadModel),
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalItems,
		TotalPages:    page.TotalPages,
	})
}

// GetLoad handles GET /load/{loadId}.
func (s *Server) GetLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(loadId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondLoad(ctx, http.StatusOK, id)
}

// UpdateLoad handles PUT /load/{loadId} - replaces the shipper-editable fields.
func (s *Server) UpdateLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	var body servers.UpdateLoadJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.UUIDFromRaw(loadId)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := toLoadDetails(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateLoadCommand(id, details)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.updateLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondLoad(ctx, http.StatusOK, id)
}

// DeleteLoad handles DELETE /load/{loadId}. Bookings of the load are kept.
func (s *Server) DeleteLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(loadId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteLoadCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.deleteLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondLoad(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetLoadQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	l, err := s.getLoadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, toLoadModel(l))
}
