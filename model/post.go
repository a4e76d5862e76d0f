package model

import "time"

// Post is a citizen-submitted report of a local infrastructure problem,
// pinned to an IBGE state and city.
type Post struct {
	Id          int64     `db:"id,omitempty" json:"id"`
	Titulo      string    `db:"titulo" json:"titulo"`
	Descricao   string    `db:"descricao" json:"descricao"`
	Localizacao string    `db:"localizacao" json:"localizacao"`
	Foto        string    `db:"foto" json:"foto"`
	EstadoId    int64     `db:"estado_id" json:"estadoId"`
	CidadeId    int64     `db:"cidade_id" json:"cidadeId"`
	AutorId     int64     `db:"usuario_id" json:"autorId"`
	CriadoEm    time.Time `db:"criado_em" json:"criadoEm"`

	// Resolved through the geography gateway on read; never stored.
	EstadoNome string `db:"-" json:"estadoNome,omitempty"`
	CidadeNome string `db:"-" json:"cidadeNome,omitempty"`
}

// PostDetail is a post plus its author, as returned by the detail endpoint.
type PostDetail struct {
	Post       `db:",inline"`
	AutorNome  string `db:"autor_nome" json:"autorNome"`
	AutorEmail string `db:"autor_email" json:"autorEmail"`
}
