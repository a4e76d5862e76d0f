package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/relato-cidadao/relato-cidadao-be/controllers"
	"github.com/relato-cidadao/relato-cidadao-be/middleware"
	"github.com/relato-cidadao/relato-cidadao-be/services"
	"github.com/relato-cidadao/relato-cidadao-be/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metrics register against the default prometheus registry, so initialize
// them once for the package.
var testMetrics = middleware.InitMetrics()

type fixture struct {
	router *gin.Engine
	mem    *testutil.MemDB
	geo    *testutil.FakeGeography
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)
	mem := testutil.NewMemDB()
	geo := testutil.NewFakeGeography()
	tokens := services.NewTokenService("segredo-de-teste", time.Hour)

	r := gin.New()
	AddHealthCheckRoutes(&r.RouterGroup)
	AddUserRoutes(&r.RouterGroup, controllers.NewUserController(mem), tokens, testMetrics)
	AddPostRoutes(&r.RouterGroup, controllers.NewPostController(mem, geo), tokens, testMetrics)
	AddCommentRoutes(&r.RouterGroup, controllers.NewCommentController(mem, mem), tokens, testMetrics)
	AddGeographyRoutes(&r.RouterGroup, geo)

	return &fixture{router: r, mem: mem, geo: geo}
}

func (f *fixture) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func (f *fixture) registerAndLogin(t *testing.T, email, nome string) string {
	t.Helper()
	w, _ := f.do(t, http.MethodPost, "/usuarios/register", "", gin.H{
		"email": email, "nome": nome, "senha": "senha123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := f.do(t, http.MethodPost, "/usuarios/login", "", gin.H{
		"email": email, "senha": "senha123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func validPostagem() gin.H {
	return gin.H{
		"titulo":      "Buraco na rua",
		"descricao":   "Cratera aberta há duas semanas",
		"localizacao": "Av. Norte-Sul, 100",
		"foto":        "https://example.com/buraco.jpg",
		"estadoId":    35,
		"cidadeId":    3509502,
	}
}

func TestHealth(t *testing.T) {
	f := newFixture()
	w, _ := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterLoginFlow(t *testing.T) {
	f := newFixture()

	w, body := f.do(t, http.MethodPost, "/usuarios/register", "", gin.H{
		"email": "ana@example.com", "nome": "Ana", "senha": "senha123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Usuário registrado com sucesso.", body["message"])

	w, body = f.do(t, http.MethodPost, "/usuarios/register", "", gin.H{
		"email": "ana@example.com", "nome": "Outra", "senha": "senha456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "O email já está em uso.", body["error"])

	w, body = f.do(t, http.MethodPost, "/usuarios/login", "", gin.H{
		"email": "ana@example.com", "senha": "senha123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["token"])
	usuario := body["usuario"].(map[string]interface{})
	assert.Equal(t, "Ana", usuario["nome"])
	assert.NotContains(t, usuario, "senha")
	assert.NotContains(t, usuario, "senhaHash")

	w, body = f.do(t, http.MethodPost, "/usuarios/login", "", gin.H{
		"email": "ana@example.com", "senha": "errada",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Credenciais inválidas.", body["error"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture()

	w, body := f.do(t, http.MethodGet, "/usuarios", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token não informado", body["error"])

	w, body = f.do(t, http.MethodPost, "/postagens", "", validPostagem())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token não informado", body["error"])
}

func TestPostagemLifecycle(t *testing.T) {
	f := newFixture()
	anaToken := f.registerAndLogin(t, "ana@example.com", "Ana")
	brunoToken := f.registerAndLogin(t, "bruno@example.com", "Bruno")

	w, body := f.do(t, http.MethodPost, "/postagens", anaToken, validPostagem())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Buraco na rua", body["titulo"])
	assert.Equal(t, "São Paulo", body["estadoNome"])
	assert.Equal(t, "Campinas", body["cidadeNome"])
	assert.Equal(t, float64(1), body["autorId"])

	w, body = f.do(t, http.MethodGet, "/postagens/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana", body["autorNome"])
	assert.Equal(t, "ana@example.com", body["autorEmail"])

	// only the owner can modify
	w, body = f.do(t, http.MethodPut, "/postagens/1", brunoToken, gin.H{
		"titulo": "Invadido", "descricao": "d", "localizacao": "l",
		"foto": "https://example.com/f.jpg",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Você não tem permissão para executar esta ação.", body["error"])

	w, body = f.do(t, http.MethodDelete, "/postagens/1", brunoToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Você não tem permissão para executar esta ação.", body["error"])
	assert.Len(t, f.mem.Posts, 1)

	w, body = f.do(t, http.MethodDelete, "/postagens/1", anaToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Buraco na rua", body["titulo"])
	assert.Empty(t, f.mem.Posts)
}

func TestPostagemValidationErrors(t *testing.T) {
	f := newFixture()
	token := f.registerAndLogin(t, "ana@example.com", "Ana")

	postagem := validPostagem()
	postagem["estadoId"] = 99
	w, body := f.do(t, http.MethodPost, "/postagens", token, postagem)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Estado não encontrado.", body["error"])

	postagem = validPostagem()
	postagem["foto"] = "nem-uma-url"
	w, body = f.do(t, http.MethodPost, "/postagens", token, postagem)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A URL da foto não é válida.", body["error"])

	w, body = f.do(t, http.MethodGet, "/postagens/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Postagem não encontrada.", body["error"])

	w, body = f.do(t, http.MethodGet, "/postagens/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Id inválido.", body["error"])
}

func TestPostagemListAndFilters(t *testing.T) {
	f := newFixture()
	token := f.registerAndLogin(t, "ana@example.com", "Ana")

	campinas := validPostagem()
	rio := validPostagem()
	rio["estadoId"] = 33
	rio["cidadeId"] = 3304557
	for _, postagem := range []gin.H{campinas, rio} {
		w, _ := f.do(t, http.MethodPost, "/postagens", token, postagem)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, _ := f.do(t, http.MethodGet, "/postagens", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var postagens []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &postagens))
	require.Len(t, postagens, 2)
	// newest first
	assert.Equal(t, float64(2), postagens[0]["id"])

	w, _ = f.do(t, http.MethodGet, "/postagens?estadoId=33", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &postagens))
	require.Len(t, postagens, 1)
	assert.Equal(t, "Rio de Janeiro", postagens[0]["estadoNome"])

	w, _ = f.do(t, http.MethodGet, "/postagens/minhas", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &postagens))
	assert.Len(t, postagens, 2)
}

func TestComentarioFlow(t *testing.T) {
	f := newFixture()
	anaToken := f.registerAndLogin(t, "ana@example.com", "Ana")
	brunoToken := f.registerAndLogin(t, "bruno@example.com", "Bruno")

	w, _ := f.do(t, http.MethodPost, "/postagens", anaToken, validPostagem())
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := f.do(t, http.MethodPost, "/comentarios", brunoToken, gin.H{
		"conteudo": "Também vi esse buraco.", "postagemId": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Bruno", body["autorNome"])

	w, body = f.do(t, http.MethodPost, "/comentarios", brunoToken, gin.H{
		"conteudo": "", "postagemId": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "O comentário não pode ser vazio.", body["error"])

	w, body = f.do(t, http.MethodPost, "/comentarios", brunoToken, gin.H{
		"conteudo": "oi", "postagemId": 999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Postagem não encontrada.", body["error"])

	// GET lists by post id, no token needed
	w, _ = f.do(t, http.MethodGet, "/comentarios/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comentarios []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comentarios))
	require.Len(t, comentarios, 1)

	// DELETE takes the comment id and checks authorship
	w, body = f.do(t, http.MethodDelete, "/comentarios/1", anaToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Você não tem permissão para executar esta ação.", body["error"])

	w, body = f.do(t, http.MethodDelete, "/comentarios/1", brunoToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Comentário deletado com sucesso.", body["message"])
	assert.Empty(t, f.mem.Comments)
}

func TestEstadosRoutes(t *testing.T) {
	f := newFixture()

	w, _ := f.do(t, http.MethodGet, "/estados", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var estados []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &estados))
	require.Len(t, estados, 2)
	assert.Equal(t, "SP", estados[0]["sigla"])

	for _, path := range []string{"/estados/35/cidades", "/estados/SP/cidades"} {
		w, _ = f.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var cidades []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cidades))
		assert.Len(t, cidades, 2)
	}
}

func TestEstadosUpstreamDown(t *testing.T) {
	f := newFixture()
	f.geo.Err = services.ErrUpstream

	w, body := f.do(t, http.MethodGet, "/estados", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Erro ao buscar estados.", body["error"])
}

func TestUsuarioRoutes(t *testing.T) {
	f := newFixture()
	token := f.registerAndLogin(t, "ana@example.com", "Ana")

	w, _ := f.do(t, http.MethodGet, "/usuarios", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var usuarios []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &usuarios))
	require.Len(t, usuarios, 1)
	assert.NotContains(t, usuarios[0], "senhaHash")

	w, body := f.do(t, http.MethodGet, "/usuarios/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana@example.com", body["email"])

	w, body = f.do(t, http.MethodGet, "/usuarios/42", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuário não encontrado.", body["error"])

	w, body = f.do(t, http.MethodDelete, "/usuarios/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Usuário deletado com sucesso.", body["message"])
	assert.Empty(t, f.mem.Users)
}

func TestMalformedJSONBody(t *testing.T) {
	f := newFixture()

	req := httptest.NewRequest(http.MethodPost, "/usuarios/register", bytes.NewReader([]byte("{nem json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Corpo da requisição inválido."}`, w.Body.String())
}
