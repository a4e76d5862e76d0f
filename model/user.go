package model

// User is a registered citizen. The password hash never leaves the server.
type User struct {
	Id        int64  `db:"id,omitempty" json:"id"`
	Email     string `db:"email" json:"email"`
	Nome      string `db:"nome" json:"nome"`
	SenhaHash string `db:"senha_hash" json:"-"`
}
