// Package testutil provides in-memory doubles for the database and the
// geography gateway, used by package tests.
package testutil

import (
	"context"
	"database/sql"
	"sync"
	"time"

	db2 "github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/relato-cidadao/relato-cidadao-be/model"
)

// MemDB is an in-memory db.Database. It mirrors the relational schema's
// observable behavior: auto-increment ids, newest-first post listings and
// cascading user deletion.
type MemDB struct {
	mu            sync.Mutex
	nextUserId    int64
	nextPostId    int64
	nextCommentId int64
	clock         time.Time

	Users    []*model.User
	Posts    []*model.Post
	Comments []*model.Comment
}

func NewMemDB() *MemDB {
	return &MemDB{clock: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *MemDB) GetSQLDB() *sql.DB { return nil }
func (m *MemDB) Close() error      { return nil }

// tick hands out strictly increasing timestamps so ordering is stable.
func (m *MemDB) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *MemDB) CreateUser(ctx context.Context, req *db2.CreateUser) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextUserId++
	m.Users = append(m.Users, &model.User{
		Id:        m.nextUserId,
		Email:     req.Email,
		Nome:      req.Nome,
		SenhaHash: req.SenhaHash,
	})
	return m.nextUserId, nil
}

func (m *MemDB) GetUserById(ctx context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.Users {
		if user.Id == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.Users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemDB) GetUsers(ctx context.Context) ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]*model.User, len(m.Users))
	for i, user := range m.Users {
		users[i] = &model.User{Id: user.Id, Email: user.Email, Nome: user.Nome}
	}
	return users, nil
}

func (m *MemDB) DeleteUser(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := m.Users[:0]
	for _, user := range m.Users {
		if user.Id != id {
			users = append(users, user)
		}
	}
	m.Users = users

	// cascade, like the schema's foreign keys
	posts := m.Posts[:0]
	removedPosts := map[int64]bool{}
	for _, post := range m.Posts {
		if post.AutorId == id {
			removedPosts[post.Id] = true
			continue
		}
		posts = append(posts, post)
	}
	m.Posts = posts

	comments := m.Comments[:0]
	for _, comment := range m.Comments {
		if comment.AutorId == id || removedPosts[comment.PostagemId] {
			continue
		}
		comments = append(comments, comment)
	}
	m.Comments = comments
	return nil
}

func (m *MemDB) CreatePost(ctx context.Context, req *db2.CreatePost) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextPostId++
	m.Posts = append(m.Posts, &model.Post{
		Id:          m.nextPostId,
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		Localizacao: req.Localizacao,
		Foto:        req.Foto,
		EstadoId:    req.EstadoId,
		CidadeId:    req.CidadeId,
		AutorId:     req.AutorId,
		CriadoEm:    m.tick(),
	})
	return m.nextPostId, nil
}

// InsertPost bypasses validation for tests that need pre-existing rows.
func (m *MemDB) InsertPost(post *model.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextPostId++
	post.Id = m.nextPostId
	post.CriadoEm = m.tick()
	m.Posts = append(m.Posts, post)
}

func (m *MemDB) GetPostById(ctx context.Context, id int64) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, post := range m.Posts {
		if post.Id == id {
			copied := *post
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemDB) GetPostDetailById(ctx context.Context, id int64) (*model.PostDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, post := range m.Posts {
		if post.Id != id {
			continue
		}
		detail := &model.PostDetail{Post: *post}
		for _, user := range m.Users {
			if user.Id == post.AutorId {
				detail.AutorNome = user.Nome
				detail.AutorEmail = user.Email
				break
			}
		}
		return detail, nil
	}
	return nil, nil
}

func (m *MemDB) GetPosts(ctx context.Context, query *db2.PostsQuery) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var posts []*model.Post
	// newest-first: ids increase with creation time
	for i := len(m.Posts) - 1; i >= 0; i-- {
		post := m.Posts[i]
		if query != nil {
			if query.EstadoId != nil && post.EstadoId != *query.EstadoId {
				continue
			}
			if query.CidadeId != nil && post.CidadeId != *query.CidadeId {
				continue
			}
			if query.AutorId != nil && post.AutorId != *query.AutorId {
				continue
			}
		}
		copied := *post
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (m *MemDB) UpdatePost(ctx context.Context, id int64, req *db2.UpdatePost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, post := range m.Posts {
		if post.Id == id {
			post.Titulo = req.Titulo
			post.Descricao = req.Descricao
			post.Localizacao = req.Localizacao
			post.Foto = req.Foto
			return nil
		}
	}
	return nil
}

func (m *MemDB) DeletePost(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	posts := m.Posts[:0]
	for _, post := range m.Posts {
		if post.Id != id {
			posts = append(posts, post)
		}
	}
	m.Posts = posts
	return nil
}

func (m *MemDB) CreateComment(ctx context.Context, req *db2.CreateComment) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextCommentId++
	m.Comments = append(m.Comments, &model.Comment{
		Id:         m.nextCommentId,
		Conteudo:   req.Conteudo,
		PostagemId: req.PostagemId,
		AutorId:    req.AutorId,
		CriadoEm:   m.tick(),
	})
	return m.nextCommentId, nil
}

func (m *MemDB) GetCommentById(ctx context.Context, id int64) (*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, comment := range m.Comments {
		if comment.Id == id {
			copied := *comment
			copied.AutorNome = m.userNome(comment.AutorId)
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemDB) GetCommentsForPost(ctx context.Context, postagemId int64) ([]*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var comments []*model.Comment
	for _, comment := range m.Comments {
		if comment.PostagemId == postagemId {
			copied := *comment
			copied.AutorNome = m.userNome(comment.AutorId)
			comments = append(comments, &copied)
		}
	}
	return comments, nil
}

func (m *MemDB) DeleteComment(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	comments := m.Comments[:0]
	for _, comment := range m.Comments {
		if comment.Id != id {
			comments = append(comments, comment)
		}
	}
	m.Comments = comments
	return nil
}

func (m *MemDB) userNome(id int64) string {
	for _, user := range m.Users {
		if user.Id == id {
			return user.Nome
		}
	}
	return ""
}
