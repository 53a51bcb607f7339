package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/routerops/mikrotik-mcp/pkg/logs"
	"github.com/routerops/mikrotik-mcp/pkg/routeros"
)

var Logger = logrus.New()

type Arguments struct {
	Device *routeros.Client
	Logs   *logs.Client
}

type apiResponse struct {
	Code    int
	Message interface{}
}

type handler func(args Arguments, c *gin.Context) (*apiResponse, apiError)

func handleRequest(args Arguments, c *gin.Context, hdlr handler) {
	reqID := c.GetHeader("x-request-id")
	if reqID == "" {
		reqID = uuid.New().String()
	}

	audit := Logger.WithFields(logrus.Fields{
		"request_id": reqID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"client_ip":  c.ClientIP(),
	})

	resp, err := hdlr(args, c)
	if err != nil {
		audit.WithField("code", err.Code()).WithError(err).Warn("API request failed")
		c.JSON(err.Code(), gin.H{"message": err.Message(), "request_id": reqID})
	} else {
		audit.WithField("code", resp.Code).Info("API request")
		c.Header("x-request-id", reqID)
		c.JSON(resp.Code, resp.Message)
	}
}

func SetupRoute(r *gin.RouterGroup, args Arguments) {
	r.GET("/status", func(c *gin.Context) {
		handleRequest(args, c, getStatus)
	})

	r.GET("/logs", func(c *gin.Context) {
		handleRequest(args, c, getLogs)
	})
	r.GET("/logs/:severity", func(c *gin.Context) {
		handleRequest(args, c, getLogsBySeverity)
	})

	r.GET("/system/info", func(c *gin.Context) {
		handleRequest(args, c, getSystemInfo)
	})
	r.GET("/system/resources", func(c *gin.Context) {
		handleRequest(args, c, getSystemResources)
	})
	r.GET("/system/health", func(c *gin.Context) {
		handleRequest(args, c, getSystemHealth)
	})

	r.GET("/ip/addresses", func(c *gin.Context) {
		handleRequest(args, c, getIPAddresses)
	})
	r.GET("/ip/routes", func(c *gin.Context) {
		handleRequest(args, c, getIPRoutes)
	})
	r.GET("/ip/pools", func(c *gin.Context) {
		handleRequest(args, c, getIPPools)
	})
	r.GET("/network/summary", func(c *gin.Context) {
		handleRequest(args, c, getNetworkSummary)
	})

	r.GET("/interfaces", func(c *gin.Context) {
		handleRequest(args, c, getInterfaces)
	})
	r.GET("/firewall/rules", func(c *gin.Context) {
		handleRequest(args, c, getFirewallRules)
	})
	r.GET("/firewall/nat", func(c *gin.Context) {
		handleRequest(args, c, getNATRules)
	})
	r.GET("/dhcp/servers", func(c *gin.Context) {
		handleRequest(args, c, getDHCPServers)
	})
	r.GET("/dhcp/leases", func(c *gin.Context) {
		handleRequest(args, c, getDHCPLeases)
	})
}
