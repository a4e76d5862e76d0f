package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/relato-cidadao/relato-cidadao-be/controllers"
	"github.com/relato-cidadao/relato-cidadao-be/middleware"
	"github.com/relato-cidadao/relato-cidadao-be/services"
	"github.com/relato-cidadao/relato-cidadao-be/util"
)

type userRoutes struct {
	controller *controllers.UserController
	tokens     *services.TokenService
	metrics    *middleware.Metrics
}

func AddUserRoutes(group *gin.RouterGroup, controller *controllers.UserController, tokens *services.TokenService, metrics *middleware.Metrics) {
	routes := userRoutes{controller, tokens, metrics}
	usuarios := group.Group("/usuarios")
	usuarios.POST("/register", util.HandlerWrapper(routes.register, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	usuarios.POST("/login", util.HandlerWrapper(routes.login, &util.HandlerOpts{}))

	protegido := usuarios.Group("", middleware.Auth(tokens))
	protegido.GET("", util.HandlerWrapper(routes.list, &util.HandlerOpts{}))
	protegido.GET("/:id", util.HandlerWrapper(routes.getById, &util.HandlerOpts{}))
	protegido.DELETE("/:id", util.HandlerWrapper(routes.delete, &util.HandlerOpts{}))
}

type registerReq struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Senha string `json:"senha"`
}

func (ur *userRoutes) register(c *gin.Context) (interface{}, *util.HTTPError) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if err := ur.controller.Register(c, req.Email, req.Nome, req.Senha); err != nil {
		return nil, mapErr(err, "Erro ao registrar usuário.")
	}
	ur.metrics.UsuariosRegistrados.Inc()
	return gin.H{"message": "Usuário registrado com sucesso."}, nil
}

type loginReq struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (ur *userRoutes) login(c *gin.Context) (interface{}, *util.HTTPError) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	usuario, err := ur.controller.Login(c, req.Email, req.Senha)
	if err != nil {
		return nil, mapErr(err, "Erro ao fazer login.")
	}
	token, err := ur.tokens.Issue(usuario)
	if err != nil {
		return nil, mapErr(err, "Erro ao fazer login.")
	}
	return gin.H{"token": token, "usuario": usuario}, nil
}

func (ur *userRoutes) list(c *gin.Context) (interface{}, *util.HTTPError) {
	usuarios, err := ur.controller.List(c)
	if err != nil {
		return nil, mapErr(err, "Erro ao listar usuários.")
	}
	return usuarios, nil
}

func (ur *userRoutes) getById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	usuario, err := ur.controller.GetById(c, id)
	if err != nil {
		return nil, mapErr(err, "Erro ao buscar usuário.")
	}
	return usuario, nil
}

func (ur *userRoutes) delete(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	usuario, err := ur.controller.Delete(c, id)
	if err != nil {
		return nil, mapErr(err, "Erro ao deletar usuário.")
	}
	return gin.H{"message": "Usuário deletado com sucesso.", "usuario": usuario}, nil
}
