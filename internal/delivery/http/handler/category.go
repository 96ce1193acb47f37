package handler

import (
	"errors"
	"net/http"

	"github.com/et891/ecommerce-api/internal/delivery/http/middleware"
	"github.com/et891/ecommerce-api/internal/delivery/http/request"
	"github.com/et891/ecommerce-api/internal/delivery/http/response"
	"github.com/et891/ecommerce-api/internal/domain"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
	"github.com/et891/ecommerce-api/internal/usecase/category"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	service *category.Service
	logger  *logger.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *category.Service, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  log,
	}
}

// CategoryRequest represents the request body for creating or updating a category
type CategoryRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=50"`
	ParentID *int64  `json:"parent_id,omitempty"`
}

// Create handles POST /api/v1/categories
// @Summary Create a category
// @Description Create a category as an admin. An optional parent must be active.
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category details"
// @Success 201 {object} map[string]interface{} "Category created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Missing identity"
// @Failure 403 {object} map[string]string "Actor is not an admin"
// @Failure 404 {object} map[string]string "Parent category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing identity")
		return
	}

	var req CategoryRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat := &domain.Category{
		Name:     req.Name,
		ParentID: req.ParentID,
	}

	if err := h.service.Create(r.Context(), actor, cat); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, cat)
}

// List handles GET /api/v1/categories
// @Summary List all categories
// @Description Get all active categories.
// @Tags Categories
// @Produce json
// @Success 200 {object} map[string]interface{} "List of categories"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, categories)
}

// GetByID handles GET /api/v1/categories/:id
// @Summary Get a category
// @Description Get an active category by ID.
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{} "Category details"
// @Failure 400 {object} map[string]string "Invalid category ID"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	cat, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, cat)
}

// Update handles PUT /api/v1/categories/:id
// @Summary Update a category
// @Description Update a category as an admin.
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body CategoryRequest true "Updated category details"
// @Success 200 {object} map[string]interface{} "Category updated successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Missing identity"
// @Failure 403 {object} map[string]string "Actor is not an admin"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing identity")
		return
	}

	id, err := request.GetIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req CategoryRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat := &domain.Category{
		ID:       id,
		Name:     req.Name,
		ParentID: req.ParentID,
	}

	if err := h.service.Update(r.Context(), actor, cat); err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, cat)
}

// Delete handles DELETE /api/v1/categories/:id
// @Summary Soft-delete a category
// @Description Retire a category as an admin.
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 204 "Category deleted successfully"
// @Failure 400 {object} map[string]string "Invalid category ID"
// @Failure 401 {object} map[string]string "Missing identity"
// @Failure 403 {object} map[string]string "Actor is not an admin"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing identity")
		return
	}

	id, err := request.GetIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.SoftDelete(r.Context(), actor, id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// handleError maps service errors to HTTP responses
func (h *CategoryHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in category handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
