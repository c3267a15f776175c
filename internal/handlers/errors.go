package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
	"github.com/tutorbase/backend/internal/payments"
	"github.com/tutorbase/backend/internal/response"
	"github.com/tutorbase/backend/internal/service"
)

const codeGatewayError = "gateway_error"

// writeError maps an error onto the response envelope. Gateway failures
// keep the upstream message.
func (h *Handler) writeError(c *gin.Context, err error) {
	_ = c.Error(err) //nolint:errcheck // attached for the request logger

	var gwErr *payments.GatewayError
	if errors.As(err, &gwErr) {
		response.Fail(c, http.StatusBadGateway, codeGatewayError, gwErr.Error())
		return
	}

	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "path", c.FullPath(), "error", err)
		response.Fail(c, http.StatusInternalServerError, service.ErrCodeInternalError, "internal error")
		return
	}

	status := statusForCode(svcErr.Code)
	message := svcErr.Message
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	response.Fail(c, status, svcErr.Code, message)
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeNotFound:
		return http.StatusNotFound
	case service.ErrCodeDuplicateNumber:
		return http.StatusConflict
	case service.ErrCodeInvalidState,
		service.ErrCodeInvalidOperation,
		service.ErrCodeInvalidAmount,
		service.ErrCodeInvalidRequest,
		service.ErrCodePaymentReferenceMissing:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// pathID binds a positive integer path parameter
func pathID(c *gin.Context, name string) (int64, bool) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil || id <= 0 {
		response.BadRequest(c, service.ErrCodeInvalidRequest, fmt.Sprintf("invalid %s: must be a positive integer", name))
		return 0, false
	}
	return id, true
}

// bindError turns a binding failure into a 400 listing the offending fields
func bindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		response.BadRequest(c, service.ErrCodeInvalidRequest, "malformed request body")
		return
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	response.BadRequest(c, service.ErrCodeInvalidRequest, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "refund_reason":
		return field + " must be one of: customer_request, duplicate, fraudulent, other"
	case "iso_currency":
		return field + " must be a 3-letter currency code"
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
