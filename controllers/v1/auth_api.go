package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"uni-payments-backend/controllers"
	authhandler "uni-payments-backend/lib/auth"
	"uni-payments-backend/middleware"
	apimodels "uni-payments-backend/models/api"
	authapimodels "uni-payments-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh", controller.refresh)
	})
}

func InitOtpApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("otp", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("request", controller.requestOtp)
		router.Post("verify", controller.verifyOtp)
	})
}

// @Summary Login
// @Tags Auth
// @Description Login with email and password
// @Param	body body	 authapimodels.LoginData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenPairView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pair, err := authhandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "login error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(pair))
}

// @Summary Refresh
// @Tags Auth
// @Description Issue a new token pair from a refresh token
// @Param	body body	 authapimodels.RefreshData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenPairView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authApiController) refresh(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pair, err := authhandler.Instance.Refresh(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "token refresh error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(pair))
}

// @Summary Request verification code
// @Tags Auth
// @Description Email a one-time code for an approval, rejection or login
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 authapimodels.OtpRequestData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/otp/request [post]
func (c *authApiController) requestOtp(ctx *fiber.Ctx) error {
	var payload authapimodels.OtpRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	email := middleware.GetUserEmail(ctx)
	err := authhandler.Instance.SendOtp(email, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "verification code send error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Verify login code
// @Tags Auth
// @Description Confirm a login one-time code
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 authapimodels.OtpVerifyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/otp/verify [post]
func (c *authApiController) verifyOtp(ctx *fiber.Ctx) error {
	var payload authapimodels.OtpVerifyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	email := middleware.GetUserEmail(ctx)
	err := authhandler.Instance.VerifyLoginOtp(email, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "verification error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
