package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/gocql/gocql"
	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	Tasks *dbTools.TaskStore
}

// Create attache la tâche au compte de la session. Un champ owner dans le
// corps est refusé, jamais accepté ni ignoré.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	if err := checkAllowedFields(c.Body(), dbTools.AllowedTaskUpdates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Champs invalides ! (Code: TASK-001)"})
	}

	var input dbTools.TaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Requête invalide. (Code: TASK-002)"})
	}

	task, err := h.Tasks.Create(sessionUser(c).ID, &input)
	if err != nil {
		return storeError(c, err, "TASK-003")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tâche créée.",
		"data":    task,
	})
}

// List renvoie les tâches de la session, avec filtre completed, tri
// sortBy=champ:sens et pagination limit/skip.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	opts, err := parseListOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error() + " (Code: TASK-004)"})
	}

	tasks, err := h.Tasks.List(sessionUser(c).ID, opts)
	if err != nil {
		return storeError(c, err, "TASK-005")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Liste des tâches.",
		"data":    tasks,
	})
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	taskID, err := gocql.ParseUUID(c.Params("id"))
	if err != nil {
		// Un id malformé ne peut désigner aucune tâche du compte.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Tâche introuvable. (Code: TASK-006)"})
	}

	task, err := h.Tasks.FindOne(sessionUser(c).ID, taskID)
	if err != nil {
		return storeError(c, err, "TASK-006")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Tâche trouvée.",
		"data":    task,
	})
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	taskID, err := gocql.ParseUUID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Tâche introuvable. (Code: TASK-007)"})
	}

	if err := checkAllowedFields(c.Body(), dbTools.AllowedTaskUpdates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Mises à jour invalides ! (Code: TASK-008)"})
	}

	var patch dbTools.TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Mises à jour invalides ! (Code: TASK-009)"})
	}

	task, err := h.Tasks.Update(sessionUser(c).ID, taskID, &patch)
	if err != nil {
		return storeError(c, err, "TASK-010")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Tâche mise à jour.",
		"data":    task,
	})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	taskID, err := gocql.ParseUUID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Tâche introuvable. (Code: TASK-011)"})
	}

	task, err := h.Tasks.Delete(sessionUser(c).ID, taskID)
	if err != nil {
		return storeError(c, err, "TASK-012")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Tâche supprimée.",
		"data":    task,
	})
}

// parseListOptions lit completed/limit/skip/sortBy. Un limit ou skip absent
// reste absent : on ne retombe jamais sur 0 par défaut.
func parseListOptions(c *fiber.Ctx) (dbTools.ListOptions, error) {
	var opts dbTools.ListOptions

	if v := c.Query("completed"); v != "" {
		completed := v == "true"
		opts.Completed = &completed
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, errors.New("Paramètre limit invalide.")
		}
		opts.Limit = &n
	}

	if v := c.Query("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, errors.New("Paramètre skip invalide.")
		}
		opts.Skip = &n
	}

	if v := c.Query("sortBy"); v != "" {
		parts := strings.SplitN(v, ":", 2)
		switch parts[0] {
		case "createdAt", "updatedAt", "description", "completed":
		default:
			return opts, errors.New("Champ de tri inconnu.")
		}
		opts.SortBy = parts[0]
		opts.Desc = len(parts) == 2 && parts[1] == "desc"
	}

	return opts, nil
}
