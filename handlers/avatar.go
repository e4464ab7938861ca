package handlers

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/Romain-GUILLEMOT/TaskyBack/utils"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/gocql/gocql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type AvatarHandler struct {
	Users *dbTools.UserStore
}

const avatarCacheTTL = 15 * time.Minute

// Upload reçoit le champ multipart « avatar » (jpg, jpeg ou png, 1 Mo
// max), le recadre en PNG 250x250 puis remplace le blob du compte. Le
// traitement doit réussir avant toute écriture.
func (h *AvatarHandler) Upload(c *fiber.Ctx) error {
	user := sessionUser(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Merci de fournir une image (champ avatar). (Code: AVATAR-001)"})
	}
	if file.Size > utils.AvatarMaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "L'image dépasse 1 Mo. (Code: AVATAR-002)"})
	}

	name := strings.ToLower(file.Filename)
	if !strings.HasSuffix(name, ".jpg") && !strings.HasSuffix(name, ".jpeg") && !strings.HasSuffix(name, ".png") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Merci d'envoyer une image jpg, jpeg ou png. (Code: AVATAR-003)"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Image illisible. (Code: AVATAR-004)"})
	}
	defer src.Close()

	// La taille annoncée par le client ne fait pas foi : on borne la lecture.
	buf, err := io.ReadAll(io.LimitReader(src, utils.AvatarMaxUploadSize+1))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Image illisible. (Code: AVATAR-005)"})
	}
	if len(buf) > utils.AvatarMaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "L'image dépasse 1 Mo. (Code: AVATAR-002)"})
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		if strings.HasSuffix(name, ".png") {
			contentType = "image/png"
		} else {
			contentType = "image/jpeg"
		}
	}

	converted, err := utils.ProcessAvatar(buf, contentType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Impossible de traiter l'image. (Code: AVATAR-006)"})
	}

	if err := h.Users.SetAvatar(user, converted); err != nil {
		return storeError(c, err, "AVATAR-007")
	}

	_ = utils.RedisDel("avatar:" + user.ID.String())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Avatar mis à jour."})
}

func (h *AvatarHandler) Delete(c *fiber.Ctx) error {
	user := sessionUser(c)

	if err := h.Users.ClearAvatar(user); err != nil {
		return storeError(c, err, "AVATAR-008")
	}

	_ = utils.RedisDel("avatar:" + user.ID.String())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Avatar supprimé."})
}

// Get est public : l'avatar de n'importe quel compte, par id, servi en
// image/png avec un cache Redis en lecture.
func (h *AvatarHandler) Get(c *fiber.Ctx) error {
	parsed, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Avatar introuvable. (Code: AVATAR-009)"})
	}
	id := gocql.UUID(parsed)
	key := "avatar:" + id.String()

	if cached, err := utils.RedisGet(key); err == nil && cached != "" {
		c.Set("Content-Type", "image/png")
		return c.Status(fiber.StatusOK).Send([]byte(cached))
	} else if err != nil && !errors.Is(err, redis.Nil) {
		utils.Error("Avatar cache read failed", "err", err)
	}

	avatar, err := h.Users.GetAvatar(id)
	if err != nil {
		if errors.Is(err, dbTools.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Avatar introuvable. (Code: AVATAR-009)"})
		}
		return storeError(c, err, "AVATAR-010")
	}

	if err := utils.RedisSet(key, string(avatar), avatarCacheTTL); err != nil {
		utils.Error("Avatar cache write failed", "err", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Status(fiber.StatusOK).Send(avatar)
}
