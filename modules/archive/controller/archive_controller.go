package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	basecontroller "github.com/KehindeA533/openai-backend/core/controller"
	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/modules/archive/dto"
	"github.com/KehindeA533/openai-backend/modules/archive/service"
)

type ArchiveController struct {
	service service.ArchiveService
	basecontroller.BaseController
}

func NewArchiveController(svc service.ArchiveService) *ArchiveController {
	return &ArchiveController{
		service:        svc,
		BaseController: basecontroller.NewBaseController(),
	}
}

// SaveAudioTranscript archives a full session: audio recording, metadata and
// the function-call log.
// POST /save-audio-transcript
func (c *ArchiveController) SaveAudioTranscript(ctx echo.Context) error {
	var req dto.SaveAudioTranscriptRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, err := c.service.SaveAudioTranscript(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

// SaveTranscript archives a text transcript on its own.
// POST /api/save-transcript
func (c *ArchiveController) SaveTranscript(ctx echo.Context) error {
	var req dto.SaveTranscriptRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, err := c.service.SaveTranscript(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}
