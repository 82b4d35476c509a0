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

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Parser        *query.Parser
	Resources     *query.Resources
}

// TransactionHandler serves checkout, completion and invoices.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	parser        *query.Parser
	schema        *query.Schema
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		parser:        params.Parser,
		schema:        params.Resources.Transactions,
	}
}

// CheckoutLineRequest is one product taken from the cart
type CheckoutLineRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Qty       int   `json:"qty" validate:"required,min=1,max=2147483647"`
}

// CheckoutRequest represents the request body for creating a transaction.
// Omitted aggregates are computed from the lines.
type CheckoutRequest struct {
	AddressID           int64                 `json:"address_id" validate:"required,gt=0"`
	ShippingCost        *int                  `json:"shipping_cost" validate:"required,min=0,max=2147483647"`
	ProductTransactions []CheckoutLineRequest `json:"product_transactions" validate:"required,min=1,dive"`
	QtyTransaction      *int                  `json:"qty_transaction" validate:"omitempty,min=0,max=2147483647"`
	SubtotalProducts    *int                  `json:"subtotal_products" validate:"omitempty,min=0,max=2147483647"`
	TotalPrice          *int                  `json:"total_price" validate:"omitempty,min=0,max=2147483647"`
}

func (h *TransactionHandler) Index(c echo.Context) error {
	spec, err := h.parser.Parse(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := h.transactionUC.List(c.Request().Context(), spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, resource.Collection(out.Items, spec, resource.Transaction), out.Meta)
}

// Store checks out the requested products of the caller's cart.
func (h *TransactionHandler) Store(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	lines := make([]usecase.CheckoutLine, 0, len(req.ProductTransactions))
	for _, l := range req.ProductTransactions {
		lines = append(lines, usecase.CheckoutLine{ProductID: l.ProductID, Qty: l.Qty})
	}

	txn, err := h.transactionUC.Checkout(c.Request().Context(), userID, &usecase.CheckoutInput{
		AddressID:        req.AddressID,
		ShippingCost:     *req.ShippingCost,
		Lines:            lines,
		QtyTransaction:   req.QtyTransaction,
		SubtotalProducts: req.SubtotalProducts,
		TotalPrice:       req.TotalPrice,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusCreated, resource.Transaction(txn, nil), "The new transaction has been saved.")
}

func (h *TransactionHandler) Show(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrTransactionNotFound)
	if err != nil {
		return err
	}

	spec, err := h.parser.ParseShow(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	txn, err := h.transactionUC.Show(c.Request().Context(), id, spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resource.Transaction(txn, spec))
}

// Update completes an inprogress transaction. The body is ignored.
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrTransactionNotFound)
	if err != nil {
		return err
	}

	txn, err := h.transactionUC.Complete(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Transaction(txn, nil), "The transaction has been updated.")
}

func (h *TransactionHandler) Destroy(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrTransactionNotFound)
	if err != nil {
		return err
	}

	txn, err := h.transactionUC.Destroy(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Transaction(txn, nil), "The transaction has been deleted.")
}

// InvoiceQR renders the invoice of the caller's transaction as a PNG QR code.
func (h *TransactionHandler) InvoiceQR(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrTransactionNotFound)
	if err != nil {
		return err
	}

	png, err := h.transactionUC.InvoiceQR(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
