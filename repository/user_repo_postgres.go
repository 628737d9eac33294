package repository

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"shiptrack/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// CreateUser creates an API user after validating email uniqueness and
// hashing the password
func (r *PostgresUserRepo) CreateUser(user *models.AppUser) error {
	if user.Role != models.RoleIngest && user.Role != models.RoleAgent {
		return &models.ErrInvalidEnum{Field: "role", Value: user.Role}
	}

	existingUser, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return errors.New("email already exists")
	}

	if user.Password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	err = r.DB.QueryRow(`
		INSERT INTO app_user (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, user.Name, user.Email, user.Password, user.Role).Scan(&user.ID, &user.CreatedAt)

	return translateError(err)
}

// GetUserByEmail fetches a user by email; nil when not found
func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.DB.QueryRow(`
		SELECT id, name, email, password_hash, role, created_at
		FROM app_user
		WHERE email=$1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
