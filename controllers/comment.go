package controllers

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/relato-cidadao/relato-cidadao-be/model"
	"github.com/relato-cidadao/relato-cidadao-be/util"
)

const maxConteudoLen = 300

type CommentController struct {
	db    db.CommentDatabase
	posts db.PostDatabase
}

func NewCommentController(commentDB db.CommentDatabase, postDB db.PostDatabase) *CommentController {
	return &CommentController{db: commentDB, posts: postDB}
}

// Create attaches a comment to an existing post. Content must be non-empty
// and at most 300 characters.
func (cc *CommentController) Create(ctx context.Context, autorId, postagemId int64, conteudo string) (*model.Comment, error) {
	conteudo = strings.TrimSpace(conteudo)
	if conteudo == "" {
		return nil, invalid("O comentário não pode ser vazio.")
	}
	if utf8.RuneCountInString(conteudo) > maxConteudoLen {
		return nil, invalid("O comentário deve ter no máximo 300 caracteres.")
	}

	post, err := cc.posts.GetPostById(ctx, postagemId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, notFound("Postagem não encontrada.")
	}

	id, err := cc.db.CreateComment(ctx, &db.CreateComment{
		Conteudo:   util.SanitizeText(conteudo),
		PostagemId: postagemId,
		AutorId:    autorId,
	})
	if err != nil {
		return nil, err
	}
	return cc.db.GetCommentById(ctx, id)
}

// ListForPost returns the post's comments in insertion order.
func (cc *CommentController) ListForPost(ctx context.Context, postagemId int64) ([]*model.Comment, error) {
	return cc.db.GetCommentsForPost(ctx, postagemId)
}

// Delete removes a comment. Only the comment's author may delete it;
// ownership is checked by author id, not display name.
func (cc *CommentController) Delete(ctx context.Context, id, requesterId int64) (*model.Comment, error) {
	comment, err := cc.db.GetCommentById(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, notFound("Comentário não encontrado.")
	}
	if comment.AutorId != requesterId {
		return nil, ErrForbidden
	}
	if err := cc.db.DeleteComment(ctx, id); err != nil {
		return nil, err
	}
	return comment, nil
}
