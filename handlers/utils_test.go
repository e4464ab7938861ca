package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestCheckAllowedFields(t *testing.T) {
	t.Parallel()

	// Un champ hors liste blanche est refusé, pas ignoré : envoyer owner
	// sur une tâche doit échouer.
	err := checkAllowedFields([]byte(`{"owner":"other-id"}`), dbTools.AllowedTaskUpdates)
	require.Error(t, err)

	err = checkAllowedFields([]byte(`{"description":"a","completed":true}`), dbTools.AllowedTaskUpdates)
	require.NoError(t, err)

	err = checkAllowedFields([]byte(`{"description":"a","priority":3}`), dbTools.AllowedTaskUpdates)
	require.Error(t, err)

	err = checkAllowedFields([]byte(`{"tokens":[]}`), dbTools.AllowedUserUpdates)
	require.Error(t, err)

	err = checkAllowedFields([]byte(`{"name":"Ann","age":30}`), dbTools.AllowedUserUpdates)
	require.NoError(t, err)

	err = checkAllowedFields([]byte(`not json`), dbTools.AllowedUserUpdates)
	require.Error(t, err)

	// Corps vide : rien à refuser, le store décidera.
	err = checkAllowedFields([]byte(`{}`), dbTools.AllowedUserUpdates)
	require.NoError(t, err)
}

func listOptionsFor(t *testing.T, target string) (dbTools.ListOptions, error) {
	t.Helper()

	app := fiber.New()
	var opts dbTools.ListOptions
	var optsErr error
	app.Get("/tasks", func(c *fiber.Ctx) error {
		opts, optsErr = parseListOptions(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	return opts, optsErr
}

func TestParseListOptions_AbsentMeansUnbounded(t *testing.T) {
	t.Parallel()

	opts, err := listOptionsFor(t, "/tasks")
	require.NoError(t, err)
	require.Nil(t, opts.Limit)
	require.Nil(t, opts.Skip)
	require.Nil(t, opts.Completed)
	require.Empty(t, opts.SortBy)
}

func TestParseListOptions_FullQuery(t *testing.T) {
	t.Parallel()

	opts, err := listOptionsFor(t, "/tasks?completed=true&limit=5&skip=2&sortBy=createdAt:desc")
	require.NoError(t, err)
	require.NotNil(t, opts.Completed)
	require.True(t, *opts.Completed)
	require.NotNil(t, opts.Limit)
	require.Equal(t, 5, *opts.Limit)
	require.NotNil(t, opts.Skip)
	require.Equal(t, 2, *opts.Skip)
	require.Equal(t, "createdAt", opts.SortBy)
	require.True(t, opts.Desc)
}

func TestParseListOptions_Invalid(t *testing.T) {
	t.Parallel()

	_, err := listOptionsFor(t, "/tasks?limit=abc")
	require.Error(t, err)

	_, err = listOptionsFor(t, "/tasks?skip=-1")
	require.Error(t, err)

	_, err = listOptionsFor(t, "/tasks?sortBy=owner:desc")
	require.Error(t, err)
}

func TestParseListOptions_SortAscByDefault(t *testing.T) {
	t.Parallel()

	opts, err := listOptionsFor(t, "/tasks?sortBy=description")
	require.NoError(t, err)
	require.Equal(t, "description", opts.SortBy)
	require.False(t, opts.Desc)
}
