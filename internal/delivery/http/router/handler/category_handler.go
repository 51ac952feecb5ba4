package handler

import (
	"net/http"

	"pos/internal/delivery/http/response"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const msgCategoryCreated = "Categoria creada correctamente"

// CategoryHandler serves the catalogue category endpoints.
type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type categoryCreatedResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type categoryListResponse struct {
	Categories []*usecase.CategoryOutput `json:"categories"`
}

// Create handles POST /categories/create.
func (h *CategoryHandler) Create(c echo.Context) error {
	var input usecase.CategoryInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, categoryCreatedResponse{
		Message: msgCategoryCreated,
		ID:      output.ID,
	}, msgCategoryCreated)
}

// List handles GET /categories.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categoryListResponse{Categories: categories}, "")
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Update handles PUT /categories/:id.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return err
	}

	var input usecase.CategoryInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Deactivate handles PATCH /categories/deactivate/:id.
func (h *CategoryHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false)
}

// Activate handles PATCH /categories/activate/:id.
func (h *CategoryHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

func (h *CategoryHandler) setActive(c echo.Context, active bool) error {
	id, err := categoryID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.SetActive(c.Request().Context(), id, active)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

func categoryID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return id, nil
}
