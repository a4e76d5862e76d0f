package controllers

import (
	"context"
	"net/url"
	"strconv"

	"github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/relato-cidadao/relato-cidadao-be/model"
	"github.com/relato-cidadao/relato-cidadao-be/util"
)

// Sentinel display names for posts whose geography can no longer be
// resolved against the directory.
const (
	estadoNaoEncontrado = "Estado não encontrado"
	cidadeNaoEncontrada = "Cidade não encontrada"
)

// Geography is the slice of the geography gateway the controllers need.
type Geography interface {
	Estados(ctx context.Context) ([]*model.Estado, error)
	Cidades(ctx context.Context, chave string) ([]*model.Cidade, error)
	EstadoNome(ctx context.Context, estadoId int64) string
	CidadeNome(ctx context.Context, estadoId, cidadeId int64) string
}

type PostController struct {
	db  db.PostDatabase
	geo Geography
}

func NewPostController(postDB db.PostDatabase, geo Geography) *PostController {
	return &PostController{db: postDB, geo: geo}
}

// Create validates the geography against the directory before inserting;
// posts never reference a state/city pair that did not exist at creation
// time.
func (pc *PostController) Create(ctx context.Context, autorId int64, req *db.CreatePost) (*model.Post, error) {
	if req.Titulo == "" || req.Descricao == "" || req.Localizacao == "" ||
		req.Foto == "" || req.EstadoId == 0 || req.CidadeId == 0 {
		return nil, invalid("Todos os campos são obrigatórios.")
	}
	if _, err := url.ParseRequestURI(req.Foto); err != nil {
		return nil, invalid("A URL da foto não é válida.")
	}
	if err := pc.validateLocalizacao(ctx, req.EstadoId, req.CidadeId); err != nil {
		return nil, err
	}

	req.AutorId = autorId
	req.Titulo = util.SanitizeText(req.Titulo)
	req.Descricao = util.SanitizeText(req.Descricao)
	req.Localizacao = util.SanitizeText(req.Localizacao)

	id, err := pc.db.CreatePost(ctx, req)
	if err != nil {
		return nil, err
	}
	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, err
	}
	pc.enrich(ctx, post)
	return post, nil
}

// List returns posts newest-first, restricted to whichever filters are set,
// each enriched with resolved state/city names.
func (pc *PostController) List(ctx context.Context, query *db.PostsQuery) ([]*model.Post, error) {
	posts, err := pc.db.GetPosts(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		pc.enrich(ctx, post)
	}
	return posts, nil
}

// ListMine returns the requester's own posts, newest-first.
func (pc *PostController) ListMine(ctx context.Context, requesterId int64) ([]*model.Post, error) {
	return pc.List(ctx, &db.PostsQuery{AutorId: &requesterId})
}

// GetById returns the post with its author's name and email.
func (pc *PostController) GetById(ctx context.Context, id int64) (*model.PostDetail, error) {
	post, err := pc.db.GetPostDetailById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, notFound("Postagem não encontrada.")
	}
	pc.enrich(ctx, &post.Post)
	return post, nil
}

// Update mutates titulo/descricao/localizacao/foto. Owner only; geography is
// immutable after creation.
func (pc *PostController) Update(ctx context.Context, id, requesterId int64, req *db.UpdatePost) (*model.Post, error) {
	if req.Titulo == "" || req.Descricao == "" || req.Localizacao == "" || req.Foto == "" {
		return nil, invalid("Todos os campos são obrigatórios.")
	}
	if _, err := url.ParseRequestURI(req.Foto); err != nil {
		return nil, invalid("A URL da foto não é válida.")
	}

	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, notFound("Postagem não encontrada.")
	}
	if post.AutorId != requesterId {
		return nil, ErrForbidden
	}

	req.Titulo = util.SanitizeText(req.Titulo)
	req.Descricao = util.SanitizeText(req.Descricao)
	req.Localizacao = util.SanitizeText(req.Localizacao)

	if err := pc.db.UpdatePost(ctx, id, req); err != nil {
		return nil, err
	}
	updated, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, err
	}
	pc.enrich(ctx, updated)
	return updated, nil
}

// Delete removes the post and returns it. Owner only.
func (pc *PostController) Delete(ctx context.Context, id, requesterId int64) (*model.Post, error) {
	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, notFound("Postagem não encontrada.")
	}
	if post.AutorId != requesterId {
		return nil, ErrForbidden
	}
	if err := pc.db.DeletePost(ctx, id); err != nil {
		return nil, err
	}
	pc.enrich(ctx, post)
	return post, nil
}

func (pc *PostController) validateLocalizacao(ctx context.Context, estadoId, cidadeId int64) error {
	estados, err := pc.geo.Estados(ctx)
	if err != nil {
		return err
	}
	estadoExiste := false
	for _, estado := range estados {
		if estado.Id == estadoId {
			estadoExiste = true
			break
		}
	}
	if !estadoExiste {
		return invalid("Estado não encontrado.")
	}

	cidades, err := pc.geo.Cidades(ctx, strconv.FormatInt(estadoId, 10))
	if err != nil {
		return err
	}
	for _, cidade := range cidades {
		if cidade.Id == cidadeId {
			return nil
		}
	}
	return invalid("Cidade não encontrada no estado selecionado.")
}

func (pc *PostController) enrich(ctx context.Context, post *model.Post) {
	post.EstadoNome = pc.geo.EstadoNome(ctx, post.EstadoId)
	if post.EstadoNome == "" {
		post.EstadoNome = estadoNaoEncontrado
	}
	post.CidadeNome = pc.geo.CidadeNome(ctx, post.EstadoId, post.CidadeId)
	if post.CidadeNome == "" {
		post.CidadeNome = cidadeNaoEncontrada
	}
}
