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

// ProductTransactionHandlerParams holds dependencies for ProductTransactionHandler, injected by Fx.
type ProductTransactionHandlerParams struct {
	fx.In

	LineUC    usecase.ProductTransactionUsecase
	Parser    *query.Parser
	Resources *query.Resources
}

// ProductTransactionHandler serves transaction line items.
type ProductTransactionHandler struct {
	lineUC usecase.ProductTransactionUsecase
	parser *query.Parser
	schema *query.Schema
}

// NewProductTransactionHandler is the constructor for ProductTransactionHandler
func NewProductTransactionHandler(params ProductTransactionHandlerParams) *ProductTransactionHandler {
	return &ProductTransactionHandler{
		lineUC: params.LineUC,
		parser: params.Parser,
		schema: params.Resources.ProductTransactions,
	}
}

// CreateProductTransactionRequest represents the request body for adding a line item
type CreateProductTransactionRequest struct {
	TransactionID int64 `json:"transaction_id" validate:"required,gt=0"`
	ProductID     int64 `json:"product_id" validate:"required,gt=0"`
	ProductQty    int   `json:"product_qty" validate:"required,min=1,max=2147483647"`
}

func (h *ProductTransactionHandler) Index(c echo.Context) error {
	spec, err := h.parser.Parse(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := h.lineUC.List(c.Request().Context(), spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, resource.Collection(out.Items, spec, resource.ProductTransaction), out.Meta)
}

// Store adds a line to an inprogress transaction of the caller.
func (h *ProductTransactionHandler) Store(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateProductTransactionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	line, err := h.lineUC.Store(c.Request().Context(), userID, &usecase.CreateProductTransactionInput{
		TransactionID: req.TransactionID,
		ProductID:     req.ProductID,
		ProductQty:    req.ProductQty,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusCreated, resource.ProductTransaction(line, nil), "The new product transaction has been saved.")
}

func (h *ProductTransactionHandler) Show(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrProductTransactionNotFound)
	if err != nil {
		return err
	}

	spec, err := h.parser.ParseShow(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	line, err := h.lineUC.Show(c.Request().Context(), id, spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resource.ProductTransaction(line, spec))
}

// Update always fails for stored line items; the body is ignored.
func (h *ProductTransactionHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrProductTransactionNotFound)
	if err != nil {
		return err
	}

	line, err := h.lineUC.Update(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.ProductTransaction(line, nil), "The product transaction has been updated.")
}

func (h *ProductTransactionHandler) Destroy(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrProductTransactionNotFound)
	if err != nil {
		return err
	}

	line, err := h.lineUC.Destroy(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.ProductTransaction(line, nil), "The product transaction has been deleted.")
}
