package handler

import (
	"net/http"

	"storefront/internal/delivery/api/resource"
	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Parser    *query.Parser
	Resources *query.Resources
}

// AddressHandler serves shipping addresses.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	parser    *query.Parser
	schema    *query.Schema
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		parser:    params.Parser,
		schema:    params.Resources.Addresses,
	}
}

// CreateAddressRequest represents the request body for creating an address
type CreateAddressRequest struct {
	Street     string `json:"street" validate:"required,min=2,max=255"`
	City       string `json:"city" validate:"omitempty,min=2,max=255"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=32"`
}

// UpdateAddressRequest represents the request body for updating an address
type UpdateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,min=2,max=255"`
	City       *string `json:"city" validate:"omitempty,min=2,max=255"`
	PostalCode *string `json:"postal_code" validate:"omitempty,max=32"`
}

func (h *AddressHandler) Index(c echo.Context) error {
	spec, err := h.parser.Parse(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := h.addressUC.List(c.Request().Context(), spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, resource.Collection(out.Items, spec, resource.Address), out.Meta)
}

// Store creates an address owned by the caller.
func (h *AddressHandler) Store(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateAddressRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.Store(c.Request().Context(), userID, &usecase.CreateAddressInput{
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusCreated, resource.Address(address, nil), "The new address has been saved.")
}

func (h *AddressHandler) Show(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrAddressNotFound)
	if err != nil {
		return err
	}

	spec, err := h.parser.ParseShow(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	address, err := h.addressUC.Show(c.Request().Context(), id, spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resource.Address(address, spec))
}

func (h *AddressHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrAddressNotFound)
	if err != nil {
		return err
	}

	var req UpdateAddressRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.Update(c.Request().Context(), userID, id, &usecase.UpdateAddressInput{
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Address(address, nil), "The address has been updated.")
}

func (h *AddressHandler) Destroy(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrAddressNotFound)
	if err != nil {
		return err
	}

	address, err := h.addressUC.Destroy(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Address(address, nil), "The address has been deleted.")
}
