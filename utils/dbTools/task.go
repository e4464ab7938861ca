package dbTools

import (
	"sort"
	"strings"
	"time"

	"github.com/Romain-GUILLEMOT/TaskyBack/models"
	"github.com/gocql/gocql"
)

// TaskStore travaille toujours dans la partition du propriétaire : une
// tâche d'un autre compte est indistinguable d'une tâche inexistante.
type TaskStore struct {
	Session *gocql.Session
}

type TaskInput struct {
	Description string `json:"description" validate:"required"`
	Completed   bool   `json:"completed"`
}

func (s *TaskStore) Create(ownerID gocql.UUID, in *TaskInput) (*models.Task, error) {
	in.Description = strings.TrimSpace(in.Description)
	if err := validate.Struct(in); err != nil {
		return nil, Invalid("La description est requise.")
	}

	now := time.Now()
	task := &models.Task{
		TaskID:      gocql.TimeUUID(),
		OwnerID:     ownerID,
		Description: in.Description,
		Completed:   in.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Session.Query(
		`INSERT INTO tasks_by_owner (owner_id, task_id, description, completed, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		task.OwnerID, task.TaskID, task.Description, task.Completed, task.CreatedAt, task.UpdatedAt,
	).Exec(); err != nil {
		return nil, err
	}
	return task, nil
}

type ListOptions struct {
	Completed *bool
	SortBy    string // createdAt, updatedAt, description ou completed
	Desc      bool
	Limit     *int
	Skip      *int
}

// ApplyListOptions filtre, trie puis pagine en mémoire les tâches d'une
// partition. Un Limit ou Skip absent reste absent : aucune borne, jamais
// une coercition silencieuse vers 0.
func ApplyListOptions(tasks []models.Task, opts ListOptions) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if opts.Completed != nil && t.Completed != *opts.Completed {
			continue
		}
		out = append(out, t)
	}

	if opts.SortBy != "" {
		less := func(a, b models.Task) bool {
			switch opts.SortBy {
			case "createdAt":
				return a.CreatedAt.Before(b.CreatedAt)
			case "updatedAt":
				return a.UpdatedAt.Before(b.UpdatedAt)
			case "description":
				return a.Description < b.Description
			case "completed":
				return !a.Completed && b.Completed
			}
			return false
		}
		sort.SliceStable(out, func(i, j int) bool {
			if opts.Desc {
				return less(out[j], out[i])
			}
			return less(out[i], out[j])
		})
	}

	if opts.Skip != nil {
		if *opts.Skip >= len(out) {
			return []models.Task{}
		}
		out = out[*opts.Skip:]
	}
	if opts.Limit != nil && *opts.Limit < len(out) {
		out = out[:*opts.Limit]
	}
	return out
}

func (s *TaskStore) List(ownerID gocql.UUID, opts ListOptions) ([]models.Task, error) {
	iter := s.Session.Query(
		`SELECT task_id, description, completed, created_at, updated_at FROM tasks_by_owner WHERE owner_id = ?`, ownerID,
	).Iter()

	tasks := []models.Task{}
	task := models.Task{OwnerID: ownerID}
	for iter.Scan(&task.TaskID, &task.Description, &task.Completed, &task.CreatedAt, &task.UpdatedAt) {
		tasks = append(tasks, task)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return ApplyListOptions(tasks, opts), nil
}

func (s *TaskStore) FindOne(ownerID, taskID gocql.UUID) (*models.Task, error) {
	task := &models.Task{TaskID: taskID, OwnerID: ownerID}
	if err := s.Session.Query(
		`SELECT description, completed, created_at, updated_at FROM tasks_by_owner WHERE owner_id = ? AND task_id = ? LIMIT 1`,
		ownerID, taskID,
	).Scan(&task.Description, &task.Completed, &task.CreatedAt, &task.UpdatedAt); err != nil {
		if err == gocql.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

// AllowedTaskUpdates est la liste blanche des champs modifiables d'une
// tâche. owner n'y figure pas : il ne change jamais.
var AllowedTaskUpdates = []string{"description", "completed"}

type TaskPatch struct {
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (s *TaskStore) Update(ownerID, taskID gocql.UUID, patch *TaskPatch) (*models.Task, error) {
	task, err := s.FindOne(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		if description == "" {
			return nil, Invalid("La description ne peut pas être vide.")
		}
		task.Description = description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	task.UpdatedAt = time.Now()

	if err := s.Session.Query(
		`UPDATE tasks_by_owner SET description = ?, completed = ?, updated_at = ? WHERE owner_id = ? AND task_id = ?`,
		task.Description, task.Completed, task.UpdatedAt, ownerID, taskID,
	).Exec(); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete relit la tâche puis la supprime avec un IF EXISTS : si la ligne a
// disparu entre-temps, on répond not found plutôt que de réussir à vide.
func (s *TaskStore) Delete(ownerID, taskID gocql.UUID) (*models.Task, error) {
	task, err := s.FindOne(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	applied, err := s.Session.Query(
		`DELETE FROM tasks_by_owner WHERE owner_id = ? AND task_id = ? IF EXISTS`, ownerID, taskID,
	).ScanCAS()
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, ErrNotFound
	}
	return task, nil
}

// DeleteAllForOwner vide la partition d'un propriétaire. Appelé par la
// cascade de suppression de compte, avant la suppression du compte.
func (s *TaskStore) DeleteAllForOwner(ownerID gocql.UUID) error {
	return s.Session.Query(`DELETE FROM tasks_by_owner WHERE owner_id = ?`, ownerID).Exec()
}
