package auth

import (
	"errors"

	"github.com/Romain-GUILLEMOT/TaskyBack/htmlemail"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AuthHandler regroupe inscription, login et déconnexion. Le UserStore est
// injecté au câblage des routes.
type AuthHandler struct {
	Users *dbTools.UserStore
}

// RegisterUser crée le compte, émet directement un premier token (une
// inscription connecte aussi) et déclenche le mail de bienvenue en
// best-effort.
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var input dbTools.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "La requête est invalide. Merci de vérifier les données envoyées. (Code: REG-001)",
		})
	}

	if err := input.Validate(); err != nil {
		var vErr *dbTools.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": vErr.Msg + " (Code: REG-002)"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Champs invalides. (Code: REG-002)"})
	}

	// Filtrage des domaines jetables et des alias, comme sur nos autres
	// inscriptions.
	if err := utils.GetEmailDomain(input.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error() + " (Code: REG-003)"})
	}

	user, err := h.Users.Create(&input)
	if err != nil {
		var vErr *dbTools.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": vErr.Msg + " (Code: REG-004)"})
		}
		utils.Error("User insert failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne. (Code: REG-005)"})
	}

	token, err := h.Users.IssueToken(user)
	if err != nil {
		utils.Error("Token issue failed", "err", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne. (Code: REG-006)"})
	}

	if body, err := htmlemail.Welcome(user.Name); err == nil {
		utils.SendMailAsync(user.Email, "Bienvenue sur Tasky !", body)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "🎉 Compte créé avec succès",
		"data":    fiber.Map{"user": user, "token": token},
	})
}
