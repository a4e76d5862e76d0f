package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/relato-cidadao/relato-cidadao-be/controllers"
	"github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/relato-cidadao/relato-cidadao-be/middleware"
	"github.com/relato-cidadao/relato-cidadao-be/services"
	"github.com/relato-cidadao/relato-cidadao-be/util"
)

type postRoutes struct {
	controller *controllers.PostController
	metrics    *middleware.Metrics
}

func AddPostRoutes(group *gin.RouterGroup, controller *controllers.PostController, tokens *services.TokenService, metrics *middleware.Metrics) {
	routes := postRoutes{controller, metrics}
	postagens := group.Group("/postagens")
	postagens.GET("", util.HandlerWrapper(routes.list, &util.HandlerOpts{}))
	postagens.GET("/:id", util.HandlerWrapper(routes.getById, &util.HandlerOpts{}))

	protegido := postagens.Group("", middleware.Auth(tokens))
	protegido.GET("/minhas", util.HandlerWrapper(routes.listMine, &util.HandlerOpts{}))
	protegido.POST("", util.HandlerWrapper(routes.create, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	protegido.PUT("/:id", util.HandlerWrapper(routes.update, &util.HandlerOpts{}))
	protegido.DELETE("/:id", util.HandlerWrapper(routes.delete, &util.HandlerOpts{}))
}

func (pr *postRoutes) list(c *gin.Context) (interface{}, *util.HTTPError) {
	query := &db.PostsQuery{}
	if val := c.Query("estadoId"); val != "" {
		id, httpErr := util.ParseId(val)
		if httpErr != nil {
			return nil, httpErr
		}
		query.EstadoId = &id
	}
	if val := c.Query("cidadeId"); val != "" {
		id, httpErr := util.ParseId(val)
		if httpErr != nil {
			return nil, httpErr
		}
		query.CidadeId = &id
	}

	postagens, err := pr.controller.List(c, query)
	if err != nil {
		return nil, mapErr(err, "Erro ao buscar postagens.")
	}
	return postagens, nil
}

func (pr *postRoutes) listMine(c *gin.Context) (interface{}, *util.HTTPError) {
	postagens, err := pr.controller.ListMine(c, middleware.MustGetUsuario(c).Id)
	if err != nil {
		return nil, mapErr(err, "Erro ao buscar postagens.")
	}
	return postagens, nil
}

func (pr *postRoutes) getById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	postagem, err := pr.controller.GetById(c, id)
	if err != nil {
		return nil, mapErr(err, "Erro ao buscar postagem.")
	}
	return postagem, nil
}

type createPostagemReq struct {
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao"`
	Localizacao string `json:"localizacao"`
	Foto        string `json:"foto"`
	EstadoId    int64  `json:"estadoId"`
	CidadeId    int64  `json:"cidadeId"`
}

func (pr *postRoutes) create(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createPostagemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	postagem, err := pr.controller.Create(c, middleware.MustGetUsuario(c).Id, &db.CreatePost{
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		Localizacao: req.Localizacao,
		Foto:        req.Foto,
		EstadoId:    req.EstadoId,
		CidadeId:    req.CidadeId,
	})
	if err != nil {
		return nil, mapErr(err, "Erro ao criar postagem.")
	}
	pr.metrics.PostagensCriadas.Inc()
	return postagem, nil
}

type updatePostagemReq struct {
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao"`
	Localizacao string `json:"localizacao"`
	Foto        string `json:"foto"`
}

func (pr *postRoutes) update(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	var req updatePostagemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	postagem, err := pr.controller.Update(c, id, middleware.MustGetUsuario(c).Id, &db.UpdatePost{
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		Localizacao: req.Localizacao,
		Foto:        req.Foto,
	})
	if err != nil {
		return nil, mapErr(err, "Erro ao atualizar postagem.")
	}
	return postagem, nil
}

func (pr *postRoutes) delete(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	postagem, err := pr.controller.Delete(c, id, middleware.MustGetUsuario(c).Id)
	if err != nil {
		return nil, mapErr(err, "Erro ao deletar postagem.")
	}
	return postagem, nil
}
