// HTTP handlers for the user resource. All routes registered from these
// handlers sit behind the bearer-token middleware; by the time a request gets
// here it carries a verified identity.
package users

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/httpx"
)

// UserHandlers wraps the Service with HTTP handlers.
type UserHandlers struct {
	service *Service
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *Service) *UserHandlers {
	return &UserHandlers{service: service}
}

// RegisterRoutes attaches the CRUD routes to the given router group.
func (h *UserHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/", h.HandleCreateUser())
	r.Get("/", h.HandleListUsers())
	r.Get("/{id}", h.HandleGetUser())
	r.Patch("/{id}", h.HandleUpdateUser())
	r.Delete("/{id}", h.HandleDeleteUser())
}

// HandleCreateUser godoc
// @Summary Create a user
// @Description Creates a new user (admin-style creation, token required).
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createBody body users.CreateUserRequest true "User details"
// @Success 201 {object} httpx.Envelope
// @Failure 400 {object} apperror.ErrorResponse "Validation failure or duplicate email"
// @Failure 401 {object} apperror.ErrorResponse
// @Router /users [post]
func (h *UserHandlers) HandleCreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := req.Validate(); err != nil {
			httpx.WriteError(w, r, apperror.NewValidationError(err.Error(), err))
			return
		}

		user, err := h.service.Create(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteSuccess(w, http.StatusCreated, "User created successfully", user)
	}
}

// HandleListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.Envelope
// @Failure 401 {object} apperror.ErrorResponse
// @Router /users [get]
func (h *UserHandlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteSuccess(w, http.StatusOK, "Users fetched successfully", list)
	}
}

// HandleGetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id (UUID)"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} apperror.ErrorResponse "Malformed id"
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandlers) HandleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		user, err := h.service.Get(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteSuccess(w, http.StatusOK, "User fetched successfully", user)
	}
}

// HandleUpdateUser godoc
// @Summary Update a user
// @Description Applies a partial update; absent fields are left unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id (UUID)"
// @Param updateBody body users.UpdateUserRequest true "Fields to update"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} apperror.ErrorResponse "Malformed id, validation failure or duplicate email"
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /users/{id} [patch]
func (h *UserHandlers) HandleUpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := req.Validate(); err != nil {
			httpx.WriteError(w, r, apperror.NewValidationError(err.Error(), err))
			return
		}

		user, err := h.service.Update(r.Context(), id, req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteSuccess(w, http.StatusOK, "User updated successfully", user)
	}
}

// HandleDeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id (UUID)"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} apperror.ErrorResponse "Malformed id"
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandlers) HandleDeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		result, err := h.service.Delete(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteSuccess(w, http.StatusOK, "User deleted successfully", result)
	}
}

// userIDParam extracts and validates the {id} path parameter. A value that is
// not a UUID is rejected with a 400 before touching the service.
func userIDParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperror.NewValidationError("Invalid user id", err)
	}
	return id, nil
}
