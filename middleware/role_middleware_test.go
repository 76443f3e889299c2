package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"uni-payments-backend/models"
)

func runWithClaims(t *testing.T, claims jwt.MapClaims, handler fiber.Handler) int {
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: claims})
		return ctx.Next()
	})
	app.Get("/", handler)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.Nil(t, err)
	return resp.StatusCode
}

func TestGetActor(t *testing.T) {
	t.Run(`full claims check`, func(t *testing.T) {
		var actor models.Actor
		status := runWithClaims(t, jwt.MapClaims{
			"sub":        "user-hod",
			"name":       "Jane Roe",
			"email":      "hod.eie@uni.example",
			"role":       "DEPARTMENT_HEAD",
			"department": "dep-eie",
		}, func(ctx *fiber.Ctx) error {
			actor = GetActor(ctx)
			return ctx.SendStatus(fiber.StatusOK)
		})
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, models.Actor{
			UserID:       "user-hod",
			FullName:     "Jane Roe",
			Email:        "hod.eie@uni.example",
			Role:         models.UserRoleDepartmentHead,
			DepartmentID: "dep-eie",
		}, actor)
	})

	t.Run(`malformed claims check`, func(t *testing.T) {
		var actor models.Actor
		status := runWithClaims(t, jwt.MapClaims{
			"sub":  12345,
			"role": []string{"finance_officer"},
		}, func(ctx *fiber.Ctx) error {
			actor = GetActor(ctx)
			return ctx.SendStatus(fiber.StatusOK)
		})
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, models.Actor{}, actor)
	})
}

func TestFinanceOfficerRequired(t *testing.T) {
	t.Run(`role gate check`, func(t *testing.T) {
		app := fiber.New()
		app.Use(func(ctx *fiber.Ctx) error {
			ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"role": "STAFF"}})
			return ctx.Next()
		})
		app.Use(FinanceOfficerRequired())
		app.Get("/", func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(fiber.StatusOK)
		})
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
