package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"uni-payments-backend/controllers"
	paymentrequesthandler "uni-payments-backend/lib/payment-request"
	"uni-payments-backend/middleware"
	apimodels "uni-payments-backend/models/api"
	paymentapimodels "uni-payments-backend/models/api/payment"
)

type paymentRequestApiController struct {
	controllers.BaseAPIController
}

func InitPaymentRequestApiRouters(app *fiber.App) {
	controller := paymentRequestApiController{}
	app.Route("payment_request", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.submit)
		router.Post("register", middleware.FinanceOfficerRequired(), controller.register)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("history", controller.history)
			idRoute.Get("voucher", controller.voucher)
			idRoute.Put("approve", middleware.ApproverRequired(), controller.approve)
			idRoute.Put("reject", middleware.ApproverRequired(), controller.reject)
		})
	})
}

// @Summary Submit
// @Tags Payment request
// @Description Submit a payment request form
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 paymentapimodels.SubmitData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payment_request [post]
func (c *paymentRequestApiController) submit(ctx *fiber.Ctx) error {
	var payload paymentapimodels.SubmitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request submit error")
	}
	userID := middleware.GetUserID(ctx)
	id, err := paymentrequesthandler.Instance.Submit(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request submit error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List
// @Tags Payment request
// @Description List requests visible to the caller's role
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 paymentapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]paymentapimodels.PaymentRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payment_request/list [post]
func (c *paymentRequestApiController) list(ctx *fiber.Ctx) error {
	var payload paymentapimodels.RequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request list error")
	}
	actor := middleware.GetActor(ctx)
	list, rowCount, err := paymentrequesthandler.Instance.List(actor, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get by ID
// @Tags Payment request
// @Description Get a request by its id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=paymentapimodels.PaymentRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payment_request/{id} [get]
func (c *paymentRequestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	resp, err := paymentrequesthandler.Instance.GetByID(id, actor)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request lookup error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Approve
// @Tags Payment request
// @Description Approve the request at its current stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 paymentapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payment_request/{id}/approve [put]
func (c *paymentRequestApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload paymentapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request approve error")
	}
	actor := middleware.GetActor(ctx)
	err = paymentrequesthandler.Instance.Approve(id, actor, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request approve error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject
// @Tags Payment request
// @Description Reject the request at its current stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 paymentapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payment_request/{id}/reject [put]
func (c *paymentRequestApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload paymentapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request reject error")
	}
	actor := middleware.GetActor(ctx)
	err = paymentrequesthandler.Instance.Reject(id, actor, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request reject error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary History
// @Tags Payment request
// @Description Status change history of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]paymentapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payment_request/{id}/history [get]
func (c *paymentRequestApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	list, err := paymentrequesthandler.Instance.History(id, actor)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "history lookup error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Voucher
// @Tags Payment request
// @Description Download the payment voucher of an approved request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payment_request/{id}/voucher [get]
func (c *paymentRequestApiController) voucher(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	file, err := paymentrequesthandler.Instance.Voucher(ctx.Context(), id, actor)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "voucher download error")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=voucher-%s.pdf", id))
	return ctx.Status(fiber.StatusOK).Send(file)
}

// @Summary Register export
// @Tags Payment request
// @Description Export the payment request register to xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 paymentapimodels.RegisterFilter	true	"request body"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payment_request/register [post]
func (c *paymentRequestApiController) register(ctx *fiber.Ctx) error {
	var payload paymentapimodels.RegisterFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "register export error")
	}
	buf, err := paymentrequesthandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "register export error")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename=payment-register.xlsx")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
