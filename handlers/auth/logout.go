package auth

import (
	"github.com/Romain-GUILLEMOT/TaskyBack/models"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils"
	"github.com/gofiber/fiber/v2"
)

// Logout révoque exactement le token présenté : les sessions des autres
// appareils restent connectées.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	token := c.Locals("token").(string)

	if err := h.Users.RevokeToken(user, token); err != nil {
		utils.Error("Logout failed", "err", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne. (Code: LOGOUT-001)"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Déconnexion réussie."})
}

// LogoutAll vide le set de tokens : toutes les sessions du compte tombent.
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	if err := h.Users.RevokeAllTokens(user); err != nil {
		utils.Error("LogoutAll failed", "err", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne. (Code: LOGOUT-002)"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Toutes les sessions ont été déconnectées."})
}
