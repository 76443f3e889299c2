package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"uni-payments-backend/controllers"
	usershandler "uni-payments-backend/lib/users"
	apimodels "uni-payments-backend/models/api"
	userapimodels "uni-payments-backend/models/api/user"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("user", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Put(":id/deactivate", controller.deactivate)
	})
}

// @Summary Create
// @Tags Portal users
// @Description Register a portal user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 userapimodels.UserData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/user [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload userapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user create error")
	}
	id, err := usershandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user create error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List
// @Tags Portal users
// @Description List portal users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/user/list [post]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := usershandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Deactivate
// @Tags Portal users
// @Description Deactivate a portal user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/user/{id}/deactivate [put]
func (c *userApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = usershandler.Instance.Deactivate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user deactivate error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
