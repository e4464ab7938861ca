package dbTools

import (
	"strings"
	"time"

	"github.com/Romain-GUILLEMOT/TaskyBack/models"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gocql/gocql"
)

var validate = validator.New()

// UserStore porte toutes les opérations de compte : création, login, cycle
// de vie des tokens, mise à jour, suppression en cascade. La session Scylla
// est injectée au démarrage.
type UserStore struct {
	Session *gocql.Session
	Secret  []byte
	Tasks   *TaskStore
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Age      *int   `json:"age" validate:"omitempty,gte=0"`
}

// Normalize applique les règles de champ avant validation : trim partout,
// email en minuscules.
func (in *RegisterInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Password = strings.TrimSpace(in.Password)
}

func (in *RegisterInput) Validate() error {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return Invalid("Champs invalides : vérifiez le nom, l'email et l'âge.")
	}
	if err := utils.CheckPasswordPolicy(in.Password); err != nil {
		return Invalid(err.Error())
	}
	return nil
}

// Create valide le candidat, hash le mot de passe puis insère le compte et
// sa ligne de lookup email dans le même batch loggé.
func (s *UserStore) Create(in *RegisterInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var existing gocql.UUID
	if err := s.Session.Query(`SELECT id FROM users_by_email WHERE email = ? LIMIT 1`, in.Email).Scan(&existing); err == nil {
		return nil, Invalid("Un compte avec cet email existe déjà.")
	} else if err != gocql.ErrNotFound {
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        gocql.TimeUUID(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hashed,
		Age:       in.Age,
		Tokens:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	batch := s.Session.NewBatch(gocql.LoggedBatch)
	batch.Query(`INSERT INTO users (id, name, email, password, age, tokens, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.Password, user.Age, user.Tokens, user.CreatedAt, user.UpdatedAt)
	batch.Query(`INSERT INTO users_by_email (email, id) VALUES (?, ?)`, user.Email, user.ID)
	if err := s.Session.ExecuteBatch(batch); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByCredentials répond ErrUnableToLogin que l'email soit inconnu ou le
// mot de passe faux : rien ne doit distinguer les deux cas côté client.
func (s *UserStore) FindByCredentials(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var id gocql.UUID
	if err := s.Session.Query(`SELECT id FROM users_by_email WHERE email = ? LIMIT 1`, email).Scan(&id); err != nil {
		if err == gocql.ErrNotFound {
			return nil, ErrUnableToLogin
		}
		return nil, err
	}

	user, err := s.FindByID(id)
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrUnableToLogin
		}
		return nil, err
	}

	if ok := utils.CheckPasswordHash(password, user.Password); !ok {
		return nil, ErrUnableToLogin
	}
	return user, nil
}

// FindByID ne ramène pas l'avatar : le blob a sa propre lecture (GetAvatar)
// pour ne pas alourdir chaque requête authentifiée.
func (s *UserStore) FindByID(id gocql.UUID) (*models.User, error) {
	user := &models.User{ID: id}
	if err := s.Session.Query(
		`SELECT name, email, password, age, tokens, created_at, updated_at FROM users WHERE id = ? LIMIT 1`, id,
	).Scan(&user.Name, &user.Email, &user.Password, &user.Age, &user.Tokens, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if err == gocql.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// IssueToken signe un token de session et l'ajoute au set actif du compte.
// Plusieurs tokens peuvent coexister : un par appareil connecté.
func (s *UserStore) IssueToken(user *models.User) (string, error) {
	token, err := utils.SignSessionToken(user.ID.String(), s.Secret)
	if err != nil {
		return "", err
	}
	if err := s.Session.Query(`UPDATE users SET tokens = tokens + ? WHERE id = ?`, []string{token}, user.ID).Exec(); err != nil {
		return "", err
	}
	user.Tokens = append(user.Tokens, token)
	return token, nil
}

// RevokeToken retire exactement le token présenté : les autres sessions du
// même compte restent valables.
func (s *UserStore) RevokeToken(user *models.User, token string) error {
	return s.Session.Query(`UPDATE users SET tokens = tokens - ? WHERE id = ?`, []string{token}, user.ID).Exec()
}

func (s *UserStore) RevokeAllTokens(user *models.User) error {
	return s.Session.Query(`UPDATE users SET tokens = {} WHERE id = ?`, user.ID).Exec()
}

// AllowedUserUpdates est la liste blanche des champs modifiables du compte.
var AllowedUserUpdates = []string{"name", "email", "password", "age"}

type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Age      *int    `json:"age"`
}

// Update applique un patch partiel. Un mot de passe touché est re-hashé
// avant persistance ; un email qui change déplace la ligne de lookup dans
// le même batch que la mise à jour du compte.
func (s *UserStore) Update(user *models.User, patch *UserPatch) error {
	oldEmail := user.Email

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return Invalid("Le nom ne peut pas être vide.")
		}
		user.Name = name
	}
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if err := validate.Var(email, "required,email"); err != nil {
			return Invalid("L'adresse email fournie est invalide.")
		}
		user.Email = email
	}
	if patch.Password != nil {
		password := strings.TrimSpace(*patch.Password)
		if err := utils.CheckPasswordPolicy(password); err != nil {
			return Invalid(err.Error())
		}
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}
	if patch.Age != nil {
		if *patch.Age < 0 {
			return Invalid("L'âge doit être un nombre positif.")
		}
		user.Age = patch.Age
	}
	user.UpdatedAt = time.Now()

	if user.Email != oldEmail {
		var existing gocql.UUID
		if err := s.Session.Query(`SELECT id FROM users_by_email WHERE email = ? LIMIT 1`, user.Email).Scan(&existing); err == nil {
			return Invalid("Un compte avec cet email existe déjà.")
		} else if err != gocql.ErrNotFound {
			return err
		}

		batch := s.Session.NewBatch(gocql.LoggedBatch)
		batch.Query(`DELETE FROM users_by_email WHERE email = ?`, oldEmail)
		batch.Query(`INSERT INTO users_by_email (email, id) VALUES (?, ?)`, user.Email, user.ID)
		batch.Query(`UPDATE users SET name = ?, email = ?, password = ?, age = ?, updated_at = ? WHERE id = ?`,
			user.Name, user.Email, user.Password, user.Age, user.UpdatedAt, user.ID)
		return s.Session.ExecuteBatch(batch)
	}

	return s.Session.Query(`UPDATE users SET name = ?, password = ?, age = ?, updated_at = ? WHERE id = ?`,
		user.Name, user.Password, user.Age, user.UpdatedAt, user.ID).Exec()
}

// Remove supprime le compte. Les tâches du propriétaire partent d'abord :
// si cette étape échoue, le compte reste intact et l'appel échoue.
func (s *UserStore) Remove(user *models.User) error {
	if err := s.Tasks.DeleteAllForOwner(user.ID); err != nil {
		return err
	}

	batch := s.Session.NewBatch(gocql.LoggedBatch)
	batch.Query(`DELETE FROM users_by_email WHERE email = ?`, user.Email)
	batch.Query(`DELETE FROM users WHERE id = ?`, user.ID)
	return s.Session.ExecuteBatch(batch)
}

func (s *UserStore) SetAvatar(user *models.User, avatar []byte) error {
	return s.Session.Query(`UPDATE users SET avatar = ?, updated_at = ? WHERE id = ?`, avatar, time.Now(), user.ID).Exec()
}

func (s *UserStore) ClearAvatar(user *models.User) error {
	return s.Session.Query(`UPDATE users SET avatar = null, updated_at = ? WHERE id = ?`, time.Now(), user.ID).Exec()
}

// GetAvatar est la seule lecture publique : un compte inconnu et un compte
// sans avatar répondent pareil, ErrNotFound.
func (s *UserStore) GetAvatar(id gocql.UUID) ([]byte, error) {
	var avatar []byte
	if err := s.Session.Query(`SELECT avatar FROM users WHERE id = ? LIMIT 1`, id).Scan(&avatar); err != nil {
		if err == gocql.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(avatar) == 0 {
		return nil, ErrNotFound
	}
	return avatar, nil
}
