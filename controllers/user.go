package controllers

import (
	"context"

	"github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/relato-cidadao/relato-cidadao-be/model"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	db db.UserDatabase
}

func NewUserController(userDB db.UserDatabase) *UserController {
	return &UserController{db: userDB}
}

// Register creates a user with a bcrypt-hashed password. Emails are unique;
// a duplicate fails with ErrEmailTaken.
func (uc *UserController) Register(ctx context.Context, email, nome, senha string) error {
	if email == "" || nome == "" || senha == "" {
		return invalid("Todos os campos são obrigatórios.")
	}

	existing, err := uc.db.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := uc.db.CreateUser(ctx, &db.CreateUser{
		Email:     email,
		Nome:      nome,
		SenhaHash: string(hash),
	}); err != nil {
		// the pre-check races with concurrent registrations
		if db.IsDupKeyErr(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// Login checks the credentials and returns the user. An unknown email and a
// wrong password are indistinguishable to the caller.
func (uc *UserController) Login(ctx context.Context, email, senha string) (*model.User, error) {
	usuario, err := uc.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)) != nil {
		return nil, ErrBadCredentials
	}
	return usuario, nil
}

func (uc *UserController) List(ctx context.Context) ([]*model.User, error) {
	return uc.db.GetUsers(ctx)
}

func (uc *UserController) GetById(ctx context.Context, id int64) (*model.User, error) {
	usuario, err := uc.db.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, notFound("Usuário não encontrado.")
	}
	return usuario, nil
}

// Delete removes a user and, through the schema's cascade, their posts and
// comments. Returns the removed user.
func (uc *UserController) Delete(ctx context.Context, id int64) (*model.User, error) {
	usuario, err := uc.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.db.DeleteUser(ctx, id); err != nil {
		return nil, err
	}
	return usuario, nil
}
