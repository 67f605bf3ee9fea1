package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"quickpay-backend/middleware"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parsing failed")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		log.WithError(err).Error("request query parsing failed")
		return errors.New("unable to read request parameters")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := strings.TrimSpace(ctx.Params(name))
	if value == "" {
		return "", errors.Errorf("%s is not set", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("user_id", middleware.GetUserID(ctx)).
		WithField("path", ctx.Path())
	if requestID, ok := ctx.Locals("request_id").(string); ok {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// SendError maps the handler error classes onto HTTP statuses.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(models.HumanMessage(err)))
	case errors.Is(err, models.ErrUnauthorized):
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(models.HumanMessage(err)))
	case errors.Is(err, models.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(models.HumanMessage(err)))
	case errors.Is(err, models.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(models.HumanMessage(err)))
	case errors.Is(err, models.ErrPrecondition):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(models.HumanMessage(err)))
	}
	c.GetLogger(ctx).WithError(err).Error("request failed")
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal server error"))
}

func (c *BaseAPIController) SendBadRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}

func (c *BaseAPIController) SendAttachment(ctx *fiber.Ctx, fileName, contentType string, body []byte) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
