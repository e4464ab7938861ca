package auth

import (
	"errors"

	"github.com/Romain-GUILLEMOT/TaskyBack/utils"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/gofiber/fiber/v2"
)

type LoginUserInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var input LoginUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Requête invalide. (Code: LOGIN-001)"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Champs invalides. (Code: LOGIN-002)"})
	}

	user, err := h.Users.FindByCredentials(input.Email, input.Password)
	if err != nil {
		// Email inconnu ou mot de passe faux : même réponse.
		if errors.Is(err, dbTools.ErrUnableToLogin) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Identifiants incorrects. (Code: LOGIN-003)"})
		}
		utils.Error("Login lookup failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne. (Code: LOGIN-004)"})
	}

	token, err := h.Users.IssueToken(user)
	if err != nil {
		utils.Error("Token issue failed", "err", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne. (Code: LOGIN-005)"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Connexion réussie ✅",
		"data":    fiber.Map{"user": user, "token": token},
	})
}
