package handler

import (
	"errors"
	"net/http"

	"github.com/et891/ecommerce-api/internal/delivery/http/middleware"
	"github.com/et891/ecommerce-api/internal/delivery/http/request"
	"github.com/et891/ecommerce-api/internal/delivery/http/response"
	"github.com/et891/ecommerce-api/internal/domain"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
	"github.com/et891/ecommerce-api/internal/usecase/review"
)

// ReviewHandler handles HTTP requests for reviews
type ReviewHandler struct {
	service *review.Service
	logger  *logger.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *review.Service, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  log,
	}
}

// CreateReviewRequest represents the request body for creating a review
type CreateReviewRequest struct {
	ProductID int64   `json:"product_id" validate:"required"`
	Grade     int     `json:"grade" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment,omitempty"`
}

// Create handles POST /api/v1/reviews
// @Summary Create a new review
// @Description Create a review for a product as the authenticated buyer. The product's aggregate rating is recomputed in the same transaction.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body CreateReviewRequest true "Review details"
// @Success 201 {object} map[string]interface{} "Review created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Missing identity"
// @Failure 403 {object} map[string]string "Actor is not a buyer"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Active review by this user already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing identity")
		return
	}

	var req CreateReviewRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rev := &domain.Review{
		ProductID: req.ProductID,
		Grade:     req.Grade,
		Comment:   req.Comment,
	}

	if err := h.service.Create(r.Context(), actor, rev); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, rev)
}

// Delete handles DELETE /api/v1/reviews/:id
// @Summary Soft-delete a review
// @Description Retire a review as an admin. The product's aggregate rating is recomputed in the same transaction.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 204 "Review deleted successfully"
// @Failure 400 {object} map[string]string "Invalid review ID"
// @Failure 401 {object} map[string]string "Missing identity"
// @Failure 403 {object} map[string]string "Actor is not an admin"
// @Failure 404 {object} map[string]string "Review not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing identity")
		return
	}

	id, err := request.GetIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	if err := h.service.SoftDelete(r.Context(), actor, id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// List handles GET /api/v1/reviews
// @Summary List all reviews
// @Description Get a paginated list of active reviews.
// @Tags Reviews
// @Produce json
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of reviews"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := request.GetPaginationParams(r)

	reviews, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Paginated(w, reviews, total, limit, offset)
}

// GetByProductID handles GET /api/v1/products/:id/reviews
// @Summary Get reviews for a product
// @Description Get a paginated list of active reviews for a product. Results are cached.
// @Tags Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of reviews"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) GetByProductID(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	limit, offset := request.GetPaginationParams(r)

	reviews, total, err := h.service.ListByProduct(r.Context(), productID, limit, offset)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Paginated(w, reviews, total, limit, offset)
}

// handleError maps service errors to HTTP responses
func (h *ReviewHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Review or product not found")
	case errors.Is(err, domain.ErrConflict):
		response.Error(w, http.StatusConflict, "You already reviewed this product")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in review handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
