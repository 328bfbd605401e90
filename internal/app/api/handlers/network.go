package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	netsvc "github.com/moonvest/investd/internal/app/service/network"
	cfgpkg "github.com/moonvest/investd/pkg/config"
	"github.com/moonvest/investd/pkg/response"
)

// @Summary      List active deposit and withdrawal networks
// @Tags         Networks
// @Produce      json
// @Router       /api/networks [get]
func ApiListNetworks(svc *netsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKList(svc.List(c.Request.Context())))
	}
}

// @Summary      List configured investment packages
// @Tags         Networks
// @Produce      json
// @Router       /api/packages [get]
func ApiListPackages(cfg *cfgpkg.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKList(cfg.Packages))
	}
}

func RegisterNetworkRoutes(r gin.IRouter, svc *netsvc.Service, cfg *cfgpkg.Config) {
	r.GET("/networks", ApiListNetworks(svc))
	r.GET("/packages", ApiListPackages(cfg))
}
