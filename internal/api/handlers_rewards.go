package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/silverkaki/silverkaki/internal/services"
)

func (handler *Handler) RewardsSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	summary := fiber.Map{
		"points":            user.Points,
		"voucher_threshold": services.VoucherThreshold,
		"can_redeem":        user.Points >= services.VoucherThreshold,
	}
	if user.LastVoucherRef != "" && user.LastVoucherDate != nil {
		summary["last_voucher"] = fiber.Map{
			"reference":   user.LastVoucherRef,
			"redeemed_at": user.LastVoucherDate.In(handler.location).Format("2 Jan 2006"),
		}
	}
	return c.JSON(summary)
}

func (handler *Handler) RedeemVoucher(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	redemption, err := handler.points.RedeemVoucher(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to redeem voucher")
	}
	return c.JSON(redemption)
}
