package api

import (
	"github.com/gin-gonic/gin"

	"github.com/routerops/mikrotik-mcp/pkg/routeros"
)

type statusResponse struct {
	Status    string `json:"status"`
	Reachable bool   `json:"reachable"`
}

func getStatus(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	ok := args.Device.IsReachable(c.Request.Context())
	status := "ok"
	if !ok {
		status = "unreachable"
	}
	return &apiResponse{200, &statusResponse{Status: status, Reachable: ok}}, nil
}

func deviceResponse(v interface{}, err error) (*apiResponse, apiError) {
	if err != nil {
		return nil, wrapSystemError(err, 502, "Fail to query device")
	}
	return &apiResponse{200, v}, nil
}

func getSystemInfo(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	info, err := args.Device.SystemInfo(c.Request.Context())
	return deviceResponse(info, err)
}

func getSystemResources(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	res, err := args.Device.SystemResources(c.Request.Context())
	return deviceResponse(res, err)
}

func getSystemHealth(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	health, err := args.Device.SystemHealth(c.Request.Context())
	return deviceResponse(health, err)
}

func getIPAddresses(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	records, err := args.Device.IPAddresses(c.Request.Context(), &routeros.IPAddressOptions{
		Interface: c.Query("interface"),
		Network:   c.Query("network"),
		Comment:   c.Query("comment"),
	})
	return deviceResponse(records, err)
}

func getIPRoutes(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	records, err := args.Device.IPRoutes(c.Request.Context(), &routeros.IPRouteOptions{
		DstAddress: c.Query("dst_address"),
		Gateway:    c.Query("gateway"),
	})
	return deviceResponse(records, err)
}

func getIPPools(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	records, err := args.Device.IPPools(c.Request.Context())
	return deviceResponse(records, err)
}

func getNetworkSummary(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	summary, err := args.Device.GetNetworkSummary(c.Request.Context())
	return deviceResponse(summary, err)
}

func getInterfaces(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	records, err := args.Device.Interfaces(c.Request.Context(), &routeros.InterfaceOptions{
		Name: c.Query("name"),
		Type: c.Query("type"),
	})
	return deviceResponse(records, err)
}

func getFirewallRules(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	records, err := args.Device.FirewallRules(c.Request.Context(), &routeros.FirewallRuleOptions{
		Chain:  c.Query("chain"),
		Action: c.Query("action"),
	})
	return deviceResponse(records, err)
}

func getNATRules(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	records, err := args.Device.NATRules(c.Request.Context())
	return deviceResponse(records, err)
}

func getDHCPServers(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	records, err := args.Device.DHCPServers(c.Request.Context())
	return deviceResponse(records, err)
}

func getDHCPLeases(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	records, err := args.Device.DHCPLeases(c.Request.Context())
	return deviceResponse(records, err)
}
