package db

import (
	"context"
	"database/sql"

	"github.com/relato-cidadao/relato-cidadao-be/model"

	_ "github.com/go-sql-driver/mysql"
)

type Database interface {
	UserDatabase
	PostDatabase
	CommentDatabase
	GetSQLDB() *sql.DB
	Close() error
}

type CreateUser struct {
	Email     string
	Nome      string
	SenhaHash string
}

type CreatePost struct {
	Titulo      string
	Descricao   string
	Localizacao string
	Foto        string
	EstadoId    int64
	CidadeId    int64
	AutorId     int64
}

// UpdatePost carries the mutable fields of a post. Geography is immutable
// after creation.
type UpdatePost struct {
	Titulo      string
	Descricao   string
	Localizacao string
	Foto        string
}

type CreateComment struct {
	Conteudo   string
	PostagemId int64
	AutorId    int64
}

// PostsQuery filters the post listing. Nil fields are ignored.
type PostsQuery struct {
	EstadoId *int64
	CidadeId *int64
	AutorId  *int64
}

type UserDatabase interface {
	CreateUser(ctx context.Context, req *CreateUser) (userId int64, err error)
	GetUserById(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (postId int64, err error)
	GetPostById(ctx context.Context, id int64) (*model.Post, error)
	GetPostDetailById(ctx context.Context, id int64) (*model.PostDetail, error)
	GetPosts(ctx context.Context, query *PostsQuery) ([]*model.Post, error)
	UpdatePost(ctx context.Context, id int64, req *UpdatePost) error
	DeletePost(ctx context.Context, id int64) error
}

type CommentDatabase interface {
	CreateComment(ctx context.Context, req *CreateComment) (commentId int64, err error)
	GetCommentById(ctx context.Context, id int64) (*model.Comment, error)
	GetCommentsForPost(ctx context.Context, postagemId int64) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
