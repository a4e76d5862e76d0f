package mysql

import (
	"context"

	db2 "github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/relato-cidadao/relato-cidadao-be/model"
	"github.com/upper/db/v4"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

func (pdb *PostDB) CreatePost(ctx context.Context, req *db2.CreatePost) (int64, error) {
	res, err := pdb.sess.SQL().
		InsertInto("postagem").
		Columns("titulo", "descricao", "localizacao", "foto", "estado_id", "cidade_id", "usuario_id").
		Values(req.Titulo, req.Descricao, req.Localizacao, req.Foto, req.EstadoId, req.CidadeId, req.AutorId).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (pdb *PostDB) GetPostById(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := pdb.sess.SQL().
		Select("*").
		From("postagem").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&post); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (pdb *PostDB) GetPostDetailById(ctx context.Context, id int64) (*model.PostDetail, error) {
	var post model.PostDetail
	if err := pdb.sess.SQL().
		Select("p.id", "p.titulo", "p.descricao", "p.localizacao", "p.foto",
			"p.estado_id", "p.cidade_id", "p.usuario_id", "p.criado_em",
			"u.nome AS autor_nome", "u.email AS autor_email").
		From("postagem AS p").
		Join("usuario AS u").On("p.usuario_id = u.id").
		Where("p.id = ?", id).
		IteratorContext(ctx).
		One(&post); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (pdb *PostDB) GetPosts(ctx context.Context, query *db2.PostsQuery) ([]*model.Post, error) {
	cond := db.Cond{}
	if query != nil {
		if query.EstadoId != nil {
			cond["estado_id"] = *query.EstadoId
		}
		if query.CidadeId != nil {
			cond["cidade_id"] = *query.CidadeId
		}
		if query.AutorId != nil {
			cond["usuario_id"] = *query.AutorId
		}
	}

	stmt := pdb.sess.SQL().
		Select("*").
		From("postagem")
	if len(cond) > 0 {
		stmt = stmt.Where(cond)
	}

	var posts []*model.Post
	if err := stmt.
		OrderBy("criado_em DESC", "id DESC").
		IteratorContext(ctx).
		All(&posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (pdb *PostDB) UpdatePost(ctx context.Context, id int64, req *db2.UpdatePost) error {
	_, err := pdb.sess.SQL().
		Update("postagem").
		Set(map[string]interface{}{
			"titulo":      req.Titulo,
			"descricao":   req.Descricao,
			"localizacao": req.Localizacao,
			"foto":        req.Foto,
		}).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

func (pdb *PostDB) DeletePost(ctx context.Context, id int64) error {
	_, err := pdb.sess.SQL().
		DeleteFrom("postagem").
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}
