package model

// Estado and Cidade mirror the IBGE localidades payloads, trimmed to the
// fields this API exposes.
type Estado struct {
	Id    int64  `json:"id"`
	Nome  string `json:"nome"`
	Sigla string `json:"sigla"`
}

type Cidade struct {
	Id   int64  `json:"id"`
	Nome string `json:"nome"`
}
