package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/internal/domain/dto"
	"github.com/guttosm/salinity-service/internal/i18n"
	"github.com/guttosm/salinity-service/internal/middleware"
)

// BuildRequestAndValidate decodes the JSON body into a T and runs its
// Validate method. Decoding failures are returned as-is; validation failures
// are *dto.ValidationError.
func BuildRequestAndValidate[T any, PT interface {
	*T
	Validate() error
}](c *gin.Context) (*T, error) {
	req := new(T)
	if err := c.ShouldBindJSON(req); err != nil {
		return nil, err
	}
	if err := PT(req).Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// ResponseBuilder writes the success and error envelopes for one request.
type ResponseBuilder struct {
	c *gin.Context
}

func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in the success envelope.
func (b *ResponseBuilder) Success(status int, data any) {
	b.c.JSON(status, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated answers 201 for a newly stored resource.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with the translated message for key. A *dto.ValidationError
// in err's chain is reported as a field detail; err itself is attached to
// the context for the error log.
func (b *ResponseBuilder) Error(status int, key string, err error) {
	resp := dto.NewError(status, i18n.Message(b.c, key))
	if err != nil {
		_ = b.c.Error(err)
		var ve *dto.ValidationError
		if errors.As(err, &ve) {
			resp = resp.WithDetail(ve.Field, ve.Message)
		}
	}
	middleware.AbortWith(b.c, status, resp)
}

// bindError reports a request that failed BuildRequestAndValidate. Validation
// failures use messageKey; anything else is a malformed body.
func (b *ResponseBuilder) bindError(err error, messageKey func(error) string) {
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		b.Error(http.StatusBadRequest, messageKey(err), err)
		return
	}
	b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
