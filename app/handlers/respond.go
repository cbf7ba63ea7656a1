package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JBlizzard-sketch/Autoscraper/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(rnd *render.Render, w http.ResponseWriter, status int, message string) {
	_ = rnd.JSON(w, status, errorResponse{Error: message})
}

// respondEngineError maps the engine error taxonomy onto HTTP statuses.
// Internal failures are logged with detail and surfaced to the client
// as the generic message only.
func respondEngineError(rnd *render.Render, logger *zap.Logger, w http.ResponseWriter, err error, notFoundMsg, internalMsg string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(rnd, w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, services.ErrEmptyCart):
		respondError(rnd, w, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		respondError(rnd, w, http.StatusNotFound, notFoundMsg)
	default:
		logger.Error(internalMsg, zap.Error(err))
		respondError(rnd, w, http.StatusInternalServerError, internalMsg)
	}
}

// validationMessage turns the first validator failure into a
// human-readable field-level message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", e.Field())
		case "min":
			return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
		case "gt":
			return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
		case "email":
			return "Invalid email"
		default:
			return fmt.Sprintf("%s is invalid", e.Field())
		}
	}
	return "Invalid request"
}
