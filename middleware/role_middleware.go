package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "uni-payments-backend/lib/utils/auth-utils"
	"uni-payments-backend/models"
	apimodels "uni-payments-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserEmail(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if email, exist := claims["email"]; exist {
		if stringEmail, ok := email.(string); ok {
			return stringEmail
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// GetActor collects the acting identity from the token claims.
func GetActor(ctx *fiber.Ctx) models.Actor {
	claims := authutils.GetClaims(ctx)
	actor := models.Actor{
		UserID: GetUserID(ctx),
		Email:  GetUserEmail(ctx),
		Role:   GetUserRole(ctx),
	}
	if name, exist := claims["name"]; exist {
		if stringName, ok := name.(string); ok {
			actor.FullName = stringName
		}
	}
	if dept, exist := claims["department"]; exist {
		if stringDept, ok := dept.(string); ok {
			actor.DepartmentID = stringDept
		}
	}
	return actor
}

func FinanceOfficerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsFinanceOfficer() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not available"))
		}
		return ctx.Next()
	}
}

func ApproverRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if !role.IsFinanceOfficer() && !role.IsDepartmentHead() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not available"))
		}
		return ctx.Next()
	}
}
