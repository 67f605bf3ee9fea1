package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"quickpay-backend/lib/auth"
	"quickpay-backend/lib/rbac"
	apimodels "quickpay-backend/models/api"
)

const (
	forbiddenMessage = "you are not authorized to perform this action"
	blockedMessage   = "account has been blocked"
)

// RbacMiddleware applies the route policy, routes without a rule are denied.
// Blocked or deleted accounts are refused even while their token is valid.
func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		userRole := GetUserRole(ctx)
		if userID == "" || userRole.Validate() != nil {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(forbiddenMessage))
		}
		active, err := auth.Instance.IsActive(userID)
		if err != nil {
			log.WithField("user_id", userID).WithError(err).Error("account status loading failed")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal server error"))
		}
		if !active {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(blockedMessage))
		}
		ctx.Locals("user_id", userID)

		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			log.
				WithField("method", ctx.Method()).
				WithField("path", ctx.Path()).
				Warn("no access rule for route")
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(forbiddenMessage))
		}
		if !handler(userID, userRole, ctx.Path()) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(forbiddenMessage))
		}
		return ctx.Next()
	}
}
