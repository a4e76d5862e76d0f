package model

import "time"

// Comment is a short reply attached to a post. AutorNome is joined in from
// the usuario table on read.
type Comment struct {
	Id         int64     `db:"id,omitempty" json:"id"`
	Conteudo   string    `db:"conteudo" json:"conteudo"`
	PostagemId int64     `db:"postagem_id" json:"postagemId"`
	AutorId    int64     `db:"usuario_id" json:"autorId"`
	AutorNome  string    `db:"autor_nome" json:"autorNome"`
	CriadoEm   time.Time `db:"criado_em" json:"criadoEm"`
}
