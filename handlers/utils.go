package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/Romain-GUILLEMOT/TaskyBack/models"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/gofiber/fiber/v2"
)

func sessionUser(c *fiber.Ctx) *models.User {
	return c.Locals("user").(*models.User)
}

// checkAllowedFields refuse tout champ hors liste blanche dans un corps
// JSON. Refuser, pas ignorer : un client qui envoie owner ou un champ
// inconnu doit recevoir une erreur, pas un succès partiel.
func checkAllowedFields(body []byte, allowed []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return errors.New("corps JSON invalide")
	}
	for name := range fields {
		if !slices.Contains(allowed, name) {
			return fmt.Errorf("champ non autorisé : %s", name)
		}
	}
	return nil
}

// storeError traduit les erreurs typées du store en réponse HTTP.
func storeError(c *fiber.Ctx, err error, code string) error {
	var vErr *dbTools.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": vErr.Msg + " (Code: " + code + ")"})
	case errors.Is(err, dbTools.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Ressource introuvable. (Code: " + code + ")"})
	default:
		utils.Error("Store error", "code", code, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne. (Code: " + code + ")"})
	}
}
