package controller

import (
	"github.com/KehindeA533/openai-backend/core/errors"
)

// BaseController provides the error constructors shared by every module
// controller. Handlers return the built error; the centralized responder in
// core/server turns it into the JSON error body.
type BaseController interface {
	BadRequest(code errors.ErrorCode, message string, details ...any) error
	NotFound(code errors.ErrorCode, message string, details ...any) error
	Forbidden(code errors.ErrorCode, message string, details ...any) error
	InternalServerError(code errors.ErrorCode, message string, details ...any) error
	UpstreamError(status int, message string) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func newError(code errors.ErrorCode, message string, details ...any) error {
	err := errors.NewAppError(code, message, nil)
	if len(details) > 0 {
		err.Data = details[0]
	}
	return err
}

func (h *responseHandler) BadRequest(code errors.ErrorCode, message string, details ...any) error {
	return newError(code, message, details...)
}

func (h *responseHandler) NotFound(code errors.ErrorCode, message string, details ...any) error {
	return newError(code, message, details...)
}

func (h *responseHandler) Forbidden(code errors.ErrorCode, message string, details ...any) error {
	return newError(code, message, details...)
}

func (h *responseHandler) InternalServerError(code errors.ErrorCode, message string, details ...any) error {
	return newError(code, message, details...)
}

// UpstreamError mirrors a provider status code onto the client response.
func (h *responseHandler) UpstreamError(status int, message string) error {
	return errors.NewStatusError(status, message)
}
