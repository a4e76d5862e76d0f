package mysql

import (
	"context"

	db2 "github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/relato-cidadao/relato-cidadao-be/model"
	"github.com/upper/db/v4"
)

type CommentDB struct {
	sess db.Session
}

func getCommentDB(sess db.Session) *CommentDB {
	return &CommentDB{sess}
}

var commentColumns = []interface{}{
	"c.id",
	"c.conteudo",
	"c.postagem_id",
	"c.usuario_id",
	"c.criado_em",
	"u.nome AS autor_nome",
}

func (cdb *CommentDB) CreateComment(ctx context.Context, req *db2.CreateComment) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("comentario").
		Columns("conteudo", "postagem_id", "usuario_id").
		Values(req.Conteudo, req.PostagemId, req.AutorId).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (cdb *CommentDB) GetCommentById(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := cdb.sess.SQL().
		Select(commentColumns...).
		From("comentario AS c").
		Join("usuario AS u").On("c.usuario_id = u.id").
		Where("c.id = ?", id).
		IteratorContext(ctx).
		One(&comment); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsForPost returns the post's comments in insertion order.
func (cdb *CommentDB) GetCommentsForPost(ctx context.Context, postagemId int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := cdb.sess.SQL().
		Select(commentColumns...).
		From("comentario AS c").
		Join("usuario AS u").On("c.usuario_id = u.id").
		Where("c.postagem_id = ?", postagemId).
		OrderBy("c.id").
		IteratorContext(ctx).
		All(&comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (cdb *CommentDB) DeleteComment(ctx context.Context, id int64) error {
	_, err := cdb.sess.SQL().
		DeleteFrom("comentario").
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}
