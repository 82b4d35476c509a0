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

const paramShippingCost = "shipping_cost"

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC    usecase.CartUsecase
	Parser    *query.Parser
	Resources *query.Resources
}

// CartHandler serves the caller's cart. No cart row of another user is reachable.
type CartHandler struct {
	cartUC usecase.CartUsecase
	parser *query.Parser
	schema *query.Schema
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		parser: params.Parser,
		schema: params.Resources.Carts,
	}
}

// CreateCartRequest represents the request body for adding a product to the cart
type CreateCartRequest struct {
	ProductID  int64 `json:"product_id" validate:"required,gt=0"`
	ProductQty *int  `json:"product_qty" validate:"required,min=0,max=2147483647"`
	IsChecked  *bool `json:"is_checked" validate:"required"`
}

// UpdateCartRequest represents the request body for updating a cart row
type UpdateCartRequest struct {
	ProductID  *int64 `json:"product_id" validate:"omitempty,gt=0"`
	ProductQty *int   `json:"product_qty" validate:"omitempty,min=0,max=2147483647"`
	IsChecked  *bool  `json:"is_checked"`
}

// CartDetailsRequest carries the shipping cost priced into the cart summary
type CartDetailsRequest struct {
	ShippingCost int64 `query:"shipping_cost" validate:"min=0,max=2147483647"`
}

func (h *CartHandler) Index(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	spec, err := h.parser.Parse(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := h.cartUC.List(c.Request().Context(), userID, spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, resource.Collection(out.Items, spec, resource.Cart), out.Meta)
}

func (h *CartHandler) Store(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateCartRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.Store(c.Request().Context(), userID, &usecase.CreateCartInput{
		ProductID:  req.ProductID,
		ProductQty: *req.ProductQty,
		IsChecked:  *req.IsChecked,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusCreated, resource.Cart(cart, nil), "The new cart has been saved.")
}

func (h *CartHandler) Show(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrCartNotFound)
	if err != nil {
		return err
	}

	spec, err := h.parser.ParseShow(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.cartUC.Show(c.Request().Context(), userID, id, spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resource.Cart(cart, spec))
}

func (h *CartHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrCartNotFound)
	if err != nil {
		return err
	}

	var req UpdateCartRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.Update(c.Request().Context(), userID, id, &usecase.UpdateCartInput{
		ProductID:  req.ProductID,
		ProductQty: req.ProductQty,
		IsChecked:  req.IsChecked,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Cart(cart, nil), "The cart has been updated.")
}

func (h *CartHandler) Destroy(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrCartNotFound)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.Destroy(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Cart(cart, nil), "The cart has been deleted.")
}

// Details prices the caller's cart with the requested shipping cost.
func (h *CartHandler) Details(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if c.QueryParam(paramShippingCost) == "" {
		return domainerrors.NewValidationError().Add(paramShippingCost, "The shipping cost field is required.")
	}

	var req CartDetailsRequest
	if err := echo.QueryParamsBinder(c).Int64(paramShippingCost, &req.ShippingCost).BindError(); err != nil {
		return domainerrors.NewValidationError().Add(paramShippingCost, "The shipping cost must be an integer.")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.cartUC.Details(c.Request().Context(), userID, req.ShippingCost)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resource.CartSummary(summary))
}
