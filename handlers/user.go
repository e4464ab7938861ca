package handlers

import (
	"encoding/json"

	"github.com/Romain-GUILLEMOT/TaskyBack/htmlemail"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Users *dbTools.UserStore
}

// Me renvoie le profil de la session. Le modèle masque déjà password,
// tokens et avatar à la sérialisation.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Utilisateur authentifié !",
		"data":    sessionUser(c),
	})
}

// UpdateMe applique un patch partiel sur le compte de la session. Tout
// champ hors liste blanche (name, email, password, age) est refusé.
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	if err := checkAllowedFields(c.Body(), dbTools.AllowedUserUpdates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Mises à jour invalides ! (Code: USER-001)"})
	}

	var patch dbTools.UserPatch
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Mises à jour invalides ! (Code: USER-002)"})
	}

	user := sessionUser(c)
	if err := h.Users.Update(user, &patch); err != nil {
		return storeError(c, err, "USER-003")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profil mis à jour.",
		"data":    user,
	})
}

// DeleteMe supprime le compte de la session. Les tâches partent d'abord
// (cascade dans le store) ; le mail d'adieu ne bloque jamais la réponse.
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	user := sessionUser(c)

	if err := h.Users.Remove(user); err != nil {
		utils.Error("Account removal failed", "err", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne. (Code: USER-004)"})
	}

	_ = utils.RedisDel("avatar:" + user.ID.String())

	if body, err := htmlemail.Farewell(user.Name); err == nil {
		utils.SendMailAsync(user.Email, "À bientôt sur Tasky", body)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Compte supprimé.",
		"data":    user,
	})
}
