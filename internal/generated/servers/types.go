// Package servers holds the HTTP contract of the load board: the wire
// models, the echo server interface with parameter binding, and the
// embedded OpenAPI document they are derived from (openapi.yaml).
package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for BookingStatus.
const (
	BookingStatusACCEPTED BookingStatus = "ACCEPTED"
	BookingStatusPENDING  BookingStatus = "PENDING"
	BookingStatusREJECTED BookingStatus = "REJECTED"
)

// Defines values for LoadStatus.
const (
	LoadStatusBOOKED    LoadStatus = "BOOKED"
	LoadStatusCANCELLED LoadStatus = "CANCELLED"
	LoadStatusPOSTED    LoadStatus = "POSTED"
)

// Defines values for SortDir.
const (
	SortDirAsc  SortDir = "asc"
	SortDirDesc SortDir = "desc"
)

// Booking defines model for Booking.
type Booking struct {
	Comment       *string            `json:"comment,omitempty"`
	Id            openapi_types.UUID `json:"id"`
	LoadId        openapi_types.UUID `json:"loadId"`
	ProposedRate  float64            `json:"proposedRate"`
	RequestedAt   Timestamp          `json:"requestedAt"`
	Status        BookingStatus      `json:"status"`
	TransporterId string             `json:"transporterId"`
}

// BookingPage defines model for BookingPage.
type BookingPage struct {
	Content       []Booking `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}

// BookingRequest defines model for BookingRequest.
type BookingRequest struct {
	Comment       *string            `json:"comment,omitempty"`
	LoadId        openapi_types.UUID `json:"loadId"`
	ProposedRate  float64            `json:"proposedRate"`
	Status        *BookingStatus     `json:"status,omitempty"`
	TransporterId string             `json:"transporterId"`
}

// BookingStatus defines model for BookingStatus.
type BookingStatus string

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Facility defines model for Facility.
type Facility struct {
	LoadingDate    Timestamp `json:"loadingDate"`
	LoadingPoint   string    `json:"loadingPoint"`
	UnloadingDate  Timestamp `json:"unloadingDate"`
	UnloadingPoint string    `json:"unloadingPoint"`
}

// Load defines model for Load.
type Load struct {
	Comment     *string            `json:"comment,omitempty"`
	DatePosted  Timestamp          `json:"datePosted"`
	Facility    Facility           `json:"facility"`
	Id          openapi_types.UUID `json:"id"`
	NoOfTrucks  int                `json:"noOfTrucks"`
	ProductType string             `json:"productType"`
	ShipperId   string             `json:"shipperId"`
	Status      LoadStatus         `json:"status"`
	TruckType   string             `json:"truckType"`
	Weight      float64            `json:"weight"`
}

// LoadPage defines model for LoadPage.
type LoadPage struct {
	Content       []Load `json:"content"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
}

// LoadRequest defines model for LoadRequest.
type LoadRequest struct {
	Comment     *string  `json:"comment,omitempty"`
	Facility    Facility `json:"facility"`
	NoOfTrucks  int      `json:"noOfTrucks"`
	ProductType string   `json:"productType"`
	ShipperId   string   `json:"shipperId"`
	TruckType   string   `json:"truckType"`
	Weight      float64  `json:"weight"`
}

// LoadStatus defines model for LoadStatus.
type LoadStatus string

// Page defines model for Page.
type Page = int

// Size defines model for Size.
type Size = int

// SortDir defines model for SortDir.
type SortDir string

// ListLoadsParams defines parameters for ListLoads.
type ListLoadsParams struct {
	ShipperId *string     `form:"shipperId,omitempty" json:"shipperId,omitempty"`
	TruckType *string     `form:"truckType,omitempty" json:"truckType,omitempty"`
	Status    *LoadStatus `form:"status,omitempty" json:"status,omitempty"`

	// Page Page number (0-based)
	Page *Page `form:"page,omitempty" json:"page,omitempty"`

	// Size Page size
	Size    *Size    `form:"size,omitempty" json:"size,omitempty"`
	SortBy  *string  `form:"sortBy,omitempty" json:"sortBy,omitempty"`
	SortDir *SortDir `form:"sortDir,omitempty" json:"sortDir,omitempty"`
}

// ListBookingsParams defines parameters for ListBookings.
type ListBookingsParams struct {
	LoadId        *openapi_types.UUID `form:"loadId,omitempty" json:"loadId,omitempty"`
	TransporterId *string             `form:"transporterId,omitempty" json:"transporterId,omitempty"`
	Status        *BookingStatus      `form:"status,omitempty" json:"status,omitempty"`

	// Page Page number (0-based)
	Page *Page `form:"page,omitempty" json:"page,omitempty"`

	// Size Page size
	Size    *Size    `form:"size,omitempty" json:"size,omitempty"`
	SortBy  *string  `form:"sortBy,omitempty" json:"sortBy,omitempty"`
	SortDir *SortDir `form:"sortDir,omitempty" json:"sortDir,omitempty"`
}

// CreateLoadJSONRequestBody defines body for CreateLoad for application/json ContentType.
type CreateLoadJSONRequestBody = LoadRequest

// UpdateLoadJSONRequestBody defines body for UpdateLoad for application/json ContentType.
type UpdateLoadJSONRequestBody = LoadRequest

// CreateBookingJSONRequestBody defines body for CreateBooking for application/json ContentType.
type CreateBookingJSONRequestBody = BookingRequest

// UpdateBookingJSONRequestBody defines body for UpdateBooking for application/json ContentType.
type UpdateBookingJSONRequestBody = BookingRequest
