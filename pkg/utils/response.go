package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "support-it/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("Erreur HTTP",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		return ctx.JSON(httpErr.Code, &HttpResponse{Status: false, Message: httpErr.Message})
	}

	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return ctx.JSON(http.StatusBadRequest, &HttpResponse{Status: false, Message: inputErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("le champ '%s' ne respecte pas la règle '%s'", e.Field(), e.Tag()))
		}
		return ctx.JSON(http.StatusBadRequest, &HttpResponse{
			Status:  false,
			Message: "Erreur de validation : " + strings.Join(msgs, " ; "),
		})
	}

	for sentinel, statusCode := range apperrors.ErrorList {
		if errors.Is(err, sentinel) {
			return ctx.JSON(statusCode, &HttpResponse{Status: false, Message: sentinel.Error()})
		}
	}

	logger.Error("Erreur inattendue", zap.Error(err))
	return ctx.JSON(http.StatusInternalServerError, &HttpResponse{
		Status:  false,
		Message: "Erreur interne du serveur",
	})
}
