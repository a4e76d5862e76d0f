package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/relato-cidadao/relato-cidadao-be/controllers"
	"github.com/relato-cidadao/relato-cidadao-be/util"
)

type geographyRoutes struct {
	geo controllers.Geography
}

func AddGeographyRoutes(group *gin.RouterGroup, geo controllers.Geography) {
	routes := geographyRoutes{geo}
	estados := group.Group("/estados")
	estados.GET("", util.HandlerWrapper(routes.listEstados, &util.HandlerOpts{}))
	estados.GET("/:chave/cidades", util.HandlerWrapper(routes.listCidades, &util.HandlerOpts{}))
}

func (gr *geographyRoutes) listEstados(c *gin.Context) (interface{}, *util.HTTPError) {
	estados, err := gr.geo.Estados(c)
	if err != nil {
		return nil, mapErr(err, "Erro ao buscar estados.")
	}
	return estados, nil
}

func (gr *geographyRoutes) listCidades(c *gin.Context) (interface{}, *util.HTTPError) {
	cidades, err := gr.geo.Cidades(c, c.Param("chave"))
	if err != nil {
		return nil, mapErr(err, "Erro ao buscar cidades.")
	}
	return cidades, nil
}
