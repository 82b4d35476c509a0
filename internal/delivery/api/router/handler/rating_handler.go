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

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC  usecase.RatingUsecase
	Parser    *query.Parser
	Resources *query.Resources
}

// RatingHandler serves product ratings.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	parser   *query.Parser
	schema   *query.Schema
}

// NewRatingHandler is the constructor for RatingHandler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		parser:   params.Parser,
		schema:   params.Resources.Ratings,
	}
}

// CreateRatingRequest represents the request body for rating a product
type CreateRatingRequest struct {
	ProductID     int64 `json:"product_id" validate:"required,gt=0"`
	TransactionID int64 `json:"transaction_id" validate:"required,gt=0"`
	Rating        *int  `json:"rating" validate:"required,min=0,max=5"`
	IsRating      *bool `json:"is_rating" validate:"required"`
}

// UpdateRatingRequest represents the request body for changing a score
type UpdateRatingRequest struct {
	Rating *int `json:"rating" validate:"required,min=0,max=5"`
}

func (h *RatingHandler) Index(c echo.Context) error {
	spec, err := h.parser.Parse(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := h.ratingUC.List(c.Request().Context(), spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, resource.Collection(out.Items, spec, resource.Rating), out.Meta)
}

func (h *RatingHandler) Store(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateRatingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	rating, err := h.ratingUC.Store(c.Request().Context(), userID, &usecase.CreateRatingInput{
		ProductID:     req.ProductID,
		TransactionID: req.TransactionID,
		Rating:        *req.Rating,
		IsRating:      *req.IsRating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusCreated, resource.Rating(rating, nil), "The new rating has been saved.")
}

func (h *RatingHandler) Show(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrRatingNotFound)
	if err != nil {
		return err
	}

	spec, err := h.parser.ParseShow(c.QueryParams(), h.schema)
	if err != nil {
		return errors.WithStack(err)
	}

	rating, err := h.ratingUC.Show(c.Request().Context(), id, spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resource.Rating(rating, spec))
}

// Update scores a rating and marks it as rated.
func (h *RatingHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrRatingNotFound)
	if err != nil {
		return err
	}

	var req UpdateRatingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	rating, err := h.ratingUC.Update(c.Request().Context(), userID, id, &usecase.UpdateRatingInput{Rating: req.Rating})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Rating(rating, nil), "The rating has been updated.")
}

func (h *RatingHandler) Destroy(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domainerrors.ErrRatingNotFound)
	if err != nil {
		return err
	}

	rating, err := h.ratingUC.Destroy(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Saved(c, http.StatusOK, resource.Rating(rating, nil), "The rating has been deleted.")
}
