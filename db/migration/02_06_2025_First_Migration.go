package migration

import "github.com/gocql/gocql"

type FirstMigration struct{}

func (m FirstMigration) Name() string {
	return "02_06_2025_First_Migration"
}

func (m FirstMigration) Up(session *gocql.Session) error {
	cql := []string{
		// ------------------------------------------------------------
		// 0. Journal des migrations
		// ------------------------------------------------------------
		`CREATE TABLE IF NOT EXISTS migrations_applied (
            name TEXT PRIMARY KEY,
            applied_at TIMESTAMP
        );`,

		// ------------------------------------------------------------
		// 1. Utilisateurs
		// ------------------------------------------------------------
		`CREATE TABLE IF NOT EXISTS users (
            id         UUID    PRIMARY KEY,
            name       TEXT,
            email      TEXT,
            password   TEXT,
            age        INT,
            tokens     SET<TEXT>,
            avatar     BLOB,
            created_at TIMESTAMP,
            updated_at TIMESTAMP
        );`,

		// Table de lookup « write-time » pour l'unicité et le login par email
		`CREATE TABLE IF NOT EXISTS users_by_email (
            email      TEXT,
            id         UUID,
            PRIMARY KEY ((email))
        );`,

		// ------------------------------------------------------------
		// 2. Tâches, partitionnées par propriétaire
		// ------------------------------------------------------------
		// Toute lecture passe par la partition du propriétaire : une tâche
		// qui n'est pas à vous est invisible, comme si elle n'existait pas.
		`CREATE TABLE IF NOT EXISTS tasks_by_owner (
            owner_id    UUID,
            task_id     UUID,
            description TEXT,
            completed   BOOLEAN,
            created_at  TIMESTAMP,
            updated_at  TIMESTAMP,
            PRIMARY KEY ((owner_id), task_id)
        );`,
	}

	for _, q := range cql {
		if err := session.Query(q).Exec(); err != nil {
			return err
		}
	}
	return nil
}
