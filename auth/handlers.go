package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/httpx"
)

// Handlers wraps the auth Service with HTTP handlers for the /auth routes.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User registration
// @Description Registers a new user. The response never contains the password.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 201 {object} httpx.Envelope
// @Failure 400 {object} apperror.ErrorResponse "Validation failure or duplicate email"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := req.Validate(); err != nil {
			httpx.WriteError(w, r, apperror.NewValidationError(err.Error(), err))
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteSuccess(w, http.StatusCreated, "User registered successfully", user)
	}
}

// HandleLogin godoc
// @Summary User login
// @Description Authenticates credentials and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 201 {object} auth.LoginResponse
// @Failure 400 {object} apperror.ErrorResponse "Malformed payload"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := req.Validate(); err != nil {
			httpx.WriteError(w, r, apperror.NewValidationError(err.Error(), err))
			return
		}

		token, err := h.service.Login(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, LoginResponse{
			Status:  true,
			Message: "Login successful",
			Token:   token,
		})
	}
}
