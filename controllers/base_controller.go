package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"uni-payments-backend/models"
	apimodels "uni-payments-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request parse error")
		return errors.New("request body could not be parsed")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError maps the error kind to an http status; hMsg is the
// fallback message for unclassified failures.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	logger.WithError(err).Error(hMsg)
	kind := models.KindOf(err)
	message := hMsg
	var appErr *models.AppError
	if errors.As(err, &appErr) && kind != models.KindPersistence {
		message = appErr.Message()
	}
	return ctx.Status(kind.HTTPStatus()).JSON(apimodels.NewError(message))
}
