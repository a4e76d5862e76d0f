package testutil

import (
	"context"
	"strconv"

	"github.com/relato-cidadao/relato-cidadao-be/model"
)

// FakeGeography is a canned geography directory. When Err is set, the list
// methods fail with it and the name resolvers degrade to "".
type FakeGeography struct {
	EstadosList     []*model.Estado
	CidadesByEstado map[int64][]*model.Cidade
	Err             error
}

// NewFakeGeography returns a directory with two states and a handful of
// cities, enough for the filter and enrichment tests.
func NewFakeGeography() *FakeGeography {
	return &FakeGeography{
		EstadosList: []*model.Estado{
			{Id: 35, Nome: "São Paulo", Sigla: "SP"},
			{Id: 33, Nome: "Rio de Janeiro", Sigla: "RJ"},
		},
		CidadesByEstado: map[int64][]*model.Cidade{
			35: {
				{Id: 3509502, Nome: "Campinas"},
				{Id: 3550308, Nome: "São Paulo"},
			},
			33: {
				{Id: 3304557, Nome: "Rio de Janeiro"},
			},
		},
	}
}

func (fg *FakeGeography) Estados(ctx context.Context) ([]*model.Estado, error) {
	if fg.Err != nil {
		return nil, fg.Err
	}
	return fg.EstadosList, nil
}

func (fg *FakeGeography) Cidades(ctx context.Context, chave string) ([]*model.Cidade, error) {
	if fg.Err != nil {
		return nil, fg.Err
	}
	if id, err := strconv.ParseInt(chave, 10, 64); err == nil {
		return fg.CidadesByEstado[id], nil
	}
	for _, estado := range fg.EstadosList {
		if estado.Sigla == chave {
			return fg.CidadesByEstado[estado.Id], nil
		}
	}
	return nil, nil
}

func (fg *FakeGeography) EstadoNome(ctx context.Context, estadoId int64) string {
	if fg.Err != nil {
		return ""
	}
	for _, estado := range fg.EstadosList {
		if estado.Id == estadoId {
			return estado.Nome
		}
	}
	return ""
}

func (fg *FakeGeography) CidadeNome(ctx context.Context, estadoId, cidadeId int64) string {
	if fg.Err != nil {
		return ""
	}
	for _, cidade := range fg.CidadesByEstado[estadoId] {
		if cidade.Id == cidadeId {
			return cidade.Nome
		}
	}
	return ""
}
