package controllers

import (
	"context"
	"testing"

	"github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/relato-cidadao/relato-cidadao-be/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLogin(t *testing.T) {
	mem := testutil.NewMemDB()
	controller := NewUserController(mem)
	ctx := context.Background()

	require.NoError(t, controller.Register(ctx, "ana@example.com", "Ana", "senha123"))
	require.Len(t, mem.Users, 1)
	assert.NotEqual(t, "senha123", mem.Users[0].SenhaHash)

	usuario, err := controller.Login(ctx, "ana@example.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "Ana", usuario.Nome)
	assert.Equal(t, int64(1), usuario.Id)
}

func TestLoginWrongPassword(t *testing.T) {
	mem := testutil.NewMemDB()
	controller := NewUserController(mem)
	ctx := context.Background()

	require.NoError(t, controller.Register(ctx, "ana@example.com", "Ana", "senha123"))

	_, err := controller.Login(ctx, "ana@example.com", "outra-senha")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	controller := NewUserController(testutil.NewMemDB())

	_, err := controller.Login(context.Background(), "ninguem@example.com", "senha123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mem := testutil.NewMemDB()
	controller := NewUserController(mem)
	ctx := context.Background()

	require.NoError(t, controller.Register(ctx, "ana@example.com", "Ana", "senha123"))

	err := controller.Register(ctx, "ana@example.com", "Outra Ana", "senha456")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, mem.Users, 1)
}

func TestRegisterMissingFields(t *testing.T) {
	mem := testutil.NewMemDB()
	controller := NewUserController(mem)
	ctx := context.Background()

	var validationErr *ValidationError
	assert.ErrorAs(t, controller.Register(ctx, "", "Ana", "senha123"), &validationErr)
	assert.ErrorAs(t, controller.Register(ctx, "ana@example.com", "", "senha123"), &validationErr)
	assert.ErrorAs(t, controller.Register(ctx, "ana@example.com", "Ana", ""), &validationErr)
	assert.Empty(t, mem.Users)
}

func TestGetByIdMissing(t *testing.T) {
	controller := NewUserController(testutil.NewMemDB())

	_, err := controller.GetById(context.Background(), 42)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Usuário não encontrado.", notFoundErr.Message)
}

func TestDeleteUserCascades(t *testing.T) {
	mem := testutil.NewMemDB()
	controller := NewUserController(mem)
	ctx := context.Background()

	require.NoError(t, controller.Register(ctx, "ana@example.com", "Ana", "senha123"))
	_, err := mem.CreatePost(ctx, &db.CreatePost{
		Titulo: "Buraco na rua", Descricao: "Cratera", Localizacao: "Rua A",
		Foto: "https://example.com/foto.jpg", EstadoId: 35, CidadeId: 3509502, AutorId: 1,
	})
	require.NoError(t, err)
	_, err = mem.CreateComment(ctx, &db.CreateComment{Conteudo: "Verdade", PostagemId: 1, AutorId: 1})
	require.NoError(t, err)

	usuario, err := controller.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", usuario.Email)
	assert.Empty(t, mem.Users)
	assert.Empty(t, mem.Posts)
	assert.Empty(t, mem.Comments)
}

func TestDeleteUserMissing(t *testing.T) {
	controller := NewUserController(testutil.NewMemDB())

	_, err := controller.Delete(context.Background(), 42)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestListOmitsPasswordHash(t *testing.T) {
	mem := testutil.NewMemDB()
	controller := NewUserController(mem)
	ctx := context.Background()

	require.NoError(t, controller.Register(ctx, "ana@example.com", "Ana", "senha123"))

	usuarios, err := controller.List(ctx)
	require.NoError(t, err)
	require.Len(t, usuarios, 1)
	assert.Empty(t, usuarios[0].SenhaHash)
}

func TestStoredHashMatchesBcrypt(t *testing.T) {
	mem := testutil.NewMemDB()
	controller := NewUserController(mem)

	require.NoError(t, controller.Register(context.Background(), "ana@example.com", "Ana", "senha123"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(mem.Users[0].SenhaHash), []byte("senha123")))
}
