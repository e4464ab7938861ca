package middlewares

import (
	"slices"
	"strings"

	"github.com/Romain-GUILLEMOT/TaskyBack/utils"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/gocql/gocql"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth est la frontière de sécurité de l'API : préfixe Bearer,
// signature valide, compte existant, token toujours actif. Chaque étape qui
// échoue donne le même 401, sans dire laquelle.
func RequireAuth(users *dbTools.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return unauthenticated(c)
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		claims, err := utils.VerifySessionToken(token, users.Secret)
		if err != nil {
			return unauthenticated(c)
		}

		userID, err := gocql.ParseUUID(claims.UserID)
		if err != nil {
			return unauthenticated(c)
		}

		user, err := users.FindByID(userID)
		if err != nil {
			return unauthenticated(c)
		}

		// Signature bonne mais token révoqué (logout) : même refus.
		if !slices.Contains(user.Tokens, token) {
			return unauthenticated(c)
		}

		c.Locals("user", user)
		c.Locals("token", token)

		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Merci de vous authentifier. (Code: AUTH-001)",
	})
}
