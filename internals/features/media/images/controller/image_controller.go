package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"schoolhub_backend/internals/features/media/images/service"
	helper "schoolhub_backend/internals/helpers"
)

const cacheControl = "public, max-age=86400"

type ImageController struct {
	Service *service.ImageService
}

func NewImageController(svc *service.ImageService) *ImageController {
	return &ImageController{Service: svc}
}

// GET /_img?url=&w=&q=
func (ctrl *ImageController) Optimize(c *fiber.Ctx) error {
	src, err := ctrl.Service.ValidateSource(c.Query("url"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	width, quality, err := service.ParseParams(c.Query("w"), c.Query("q"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Service.Optimize(c.UserContext(), src, width, quality)
	switch {
	case errors.Is(err, service.ErrTooLarge):
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, service.ErrNotAnImage):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrUpstream):
		log.Warn().Err(err).Str("url", src.String()).Msg("image fetch failed")
		return helper.JsonError(c, fiber.StatusBadGateway, service.ErrUpstream.Error())
	case err != nil:
		log.Error().Err(err).Str("url", src.String()).Msg("image optimize failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, cacheControl)
	return c.Send(out)
}
