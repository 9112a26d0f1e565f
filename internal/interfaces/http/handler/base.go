package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pwms/backend/internal/application/invoker"
	"github.com/pwms/backend/internal/domain/logistics"
	"github.com/pwms/backend/internal/domain/shared"
	"github.com/pwms/backend/internal/infrastructure/logger"
	"github.com/pwms/backend/internal/interfaces/http/dto"
	"github.com/pwms/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// ErrorWithCode sends an error response, deriving status code from error code
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

func (h *BaseHandler) fieldError(c *gin.Context, code, message string, fields []string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewFieldErrorResponse(code, message, middleware.GetRequestID(c), fields))
}

// HandleError converts invoker, constraint and domain errors to HTTP responses.
// Constraint errors keep the storage engine's message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var (
		missing     *invoker.MissingFieldsError
		badType     *invoker.InvalidFieldTypeError
		unsupported *invoker.UnsupportedOperationError
		constraint  *shared.ConstraintError
		domainErr   *shared.DomainError
	)
	switch {
	case errors.As(err, &missing):
		h.fieldError(c, dto.ErrCodeMissingFields, err.Error(), missing.Fields)
	case errors.As(err, &badType):
		h.fieldError(c, dto.ErrCodeInvalidFieldType, err.Error(), []string{badType.Field})
	case errors.As(err, &unsupported):
		h.ErrorWithCode(c, dto.ErrCodeUnsupportedOperation, err.Error())
	case errors.As(err, &constraint):
		h.ErrorWithCode(c, dto.NormalizeErrorCode(constraint.Code), constraint.Error())
	case errors.As(err, &domainErr):
		h.ErrorWithCode(c, dto.NormalizeErrorCode(domainErr.Code), domainErr.Message)
	default:
		logger.GetGinLogger(c).Error("unhandled error", zap.Error(err))
		h.InternalError(c, "An unexpected error occurred")
	}
}

// parseKind resolves the :kind path parameter, writing a 404 when unknown
func (h *BaseHandler) parseKind(c *gin.Context) (logistics.Kind, bool) {
	name := c.Param("kind")
	kind, ok := logistics.ParseKind(name)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeUnknownKind, "unknown entity kind: "+name)
		return 0, false
	}
	return kind, true
}

// parseID reads the :id path parameter, writing a 400 when malformed
func (h *BaseHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "invalid id: "+c.Param("id"))
		return 0, false
	}
	return id, true
}
