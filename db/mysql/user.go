package mysql

import (
	"context"

	db2 "github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/relato-cidadao/relato-cidadao-be/model"
	"github.com/upper/db/v4"
)

type UserDB struct {
	sess db.Session
}

func getUserDB(sess db.Session) *UserDB {
	return &UserDB{sess}
}

func (udb *UserDB) CreateUser(ctx context.Context, req *db2.CreateUser) (int64, error) {
	res, err := udb.sess.SQL().
		InsertInto("usuario").
		Columns("email", "nome", "senha_hash").
		Values(req.Email, req.Nome, req.SenhaHash).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (udb *UserDB) GetUserById(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("*").
		From("usuario").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (udb *UserDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("*").
		From("usuario").
		Where("email = ?", email).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (udb *UserDB) GetUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := udb.sess.SQL().
		Select("id", "email", "nome").
		From("usuario").
		OrderBy("id").
		IteratorContext(ctx).
		All(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func (udb *UserDB) DeleteUser(ctx context.Context, id int64) error {
	_, err := udb.sess.SQL().
		DeleteFrom("usuario").
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}
