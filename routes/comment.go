package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/relato-cidadao/relato-cidadao-be/controllers"
	"github.com/relato-cidadao/relato-cidadao-be/middleware"
	"github.com/relato-cidadao/relato-cidadao-be/services"
	"github.com/relato-cidadao/relato-cidadao-be/util"
)

type commentRoutes struct {
	controller *controllers.CommentController
	metrics    *middleware.Metrics
}

func AddCommentRoutes(group *gin.RouterGroup, controller *controllers.CommentController, tokens *services.TokenService, metrics *middleware.Metrics) {
	routes := commentRoutes{controller, metrics}
	comentarios := group.Group("/comentarios")
	// :id is the post id on GET and the comment id on DELETE
	comentarios.GET("/:id", util.HandlerWrapper(routes.listForPost, &util.HandlerOpts{}))

	protegido := comentarios.Group("", middleware.Auth(tokens))
	protegido.POST("", util.HandlerWrapper(routes.create, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	protegido.DELETE("/:id", util.HandlerWrapper(routes.delete, &util.HandlerOpts{}))
}

func (cr *commentRoutes) listForPost(c *gin.Context) (interface{}, *util.HTTPError) {
	postagemId, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	comentarios, err := cr.controller.ListForPost(c, postagemId)
	if err != nil {
		return nil, mapErr(err, "Erro ao buscar comentários.")
	}
	return comentarios, nil
}

type createComentarioReq struct {
	Conteudo   string `json:"conteudo"`
	PostagemId int64  `json:"postagemId"`
}

func (cr *commentRoutes) create(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createComentarioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	comentario, err := cr.controller.Create(c, middleware.MustGetUsuario(c).Id, req.PostagemId, req.Conteudo)
	if err != nil {
		return nil, mapErr(err, "Erro ao criar comentário.")
	}
	cr.metrics.ComentariosCriados.Inc()
	return comentario, nil
}

func (cr *commentRoutes) delete(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	if _, err := cr.controller.Delete(c, id, middleware.MustGetUsuario(c).Id); err != nil {
		return nil, mapErr(err, "Erro ao deletar comentário.")
	}
	return gin.H{"message": "Comentário deletado com sucesso."}, nil
}
