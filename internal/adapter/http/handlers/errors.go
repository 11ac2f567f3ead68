package handlers

import (
	"errors"
	"io"
	"net/http"

	"supplyops/internal/adapter/http/middleware"
	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/internal/usecase"
	"supplyops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapError turns a lifecycle error into the response envelope. Details carry
// the error text for everything but internal errors.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, errs.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Action not permitted for this role", http.StatusForbidden).WithDetails(err.Error())
	case errors.Is(err, errs.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from the current status", http.StatusConflict).WithDetails(err.Error())
	case errors.Is(err, errs.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Record changed since it was read; reload and retry", http.StatusConflict).WithDetails(err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Record not found", http.StatusNotFound).WithDetails(err.Error())
	case errors.Is(err, errs.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest).WithDetails(err.Error())
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[http][handler] request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context, err error) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.WithDetails(err.Error()).ToHTTPError())
}

// bindOptionalJSON accepts an empty body and leaves dst untouched.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func callFrom(c *gin.Context, version int64) usecase.Call {
	return usecase.Call{Actor: middleware.ActorFrom(c), Version: version}
}

func filterFromQuery(c *gin.Context) entities.Filter {
	return entities.Filter{
		Status:      c.Query("status"),
		Query:       c.Query("q"),
		OrderID:     c.Query("order_id"),
		ComplaintID: c.Query("complaint_id"),
	}
}
