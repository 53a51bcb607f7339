package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/routerops/mikrotik-mcp/pkg/routeros"
)

// listHandler builds a tool handler for a plain fetch-and-reshape listing.
func (x *Server) listHandler(fetch func(ctx context.Context) ([]routeros.Record, error)) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		records, err := fetch(ctx)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(records)
	}
}

func (x *Server) registerNetworkTools() {
	ipAddresses := mcp.NewTool("get_ip_addresses",
		mcp.WithDescription("Get IP addresses configured on the MikroTik device"),
		mcp.WithString("interface", mcp.Description("Filter by interface name")),
		mcp.WithString("network", mcp.Description("Filter by network")),
	)
	x.mcp.AddTool(ipAddresses, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		records, err := x.device.IPAddresses(ctx, &routeros.IPAddressOptions{
			Interface: argString(args, "interface"),
			Network:   argString(args, "network"),
		})
		if err != nil {
			return errResult(err)
		}
		return jsonResult(records)
	})

	ipRoutes := mcp.NewTool("get_ip_routes",
		mcp.WithDescription("Get IP routes configured on the MikroTik device"),
		mcp.WithString("dstAddress", mcp.Description("Filter by destination address")),
		mcp.WithString("gateway", mcp.Description("Filter by gateway")),
	)
	x.mcp.AddTool(ipRoutes, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		records, err := x.device.IPRoutes(ctx, &routeros.IPRouteOptions{
			DstAddress: argString(args, "dstAddress"),
			Gateway:    argString(args, "gateway"),
		})
		if err != nil {
			return errResult(err)
		}
		return jsonResult(records)
	})

	x.mcp.AddTool(
		mcp.NewTool("get_ip_pools", mcp.WithDescription("Get IP pools configured on the MikroTik device")),
		x.listHandler(x.device.IPPools),
	)

	networkSummary := mcp.NewTool("get_network_summary",
		mcp.WithDescription("Get a summary of network configuration: addresses, routes, pools, interfaces and gateways"),
	)
	x.mcp.AddTool(networkSummary, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := x.device.GetNetworkSummary(ctx)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(summary)
	})

	interfaces := mcp.NewTool("get_interfaces",
		mcp.WithDescription("Get all interfaces configured on the MikroTik device"),
		mcp.WithString("name", mcp.Description("Filter by interface name")),
		mcp.WithString("type", mcp.Description("Filter by interface type")),
	)
	x.mcp.AddTool(interfaces, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		records, err := x.device.Interfaces(ctx, &routeros.InterfaceOptions{
			Name: argString(args, "name"),
			Type: argString(args, "type"),
		})
		if err != nil {
			return errResult(err)
		}
		return jsonResult(records)
	})

	x.mcp.AddTool(
		mcp.NewTool("get_ethernet_interfaces", mcp.WithDescription("Get ethernet interfaces on the MikroTik device")),
		x.listHandler(x.device.EthernetInterfaces),
	)
	x.mcp.AddTool(
		mcp.NewTool("get_bridge_interfaces", mcp.WithDescription("Get bridge interfaces on the MikroTik device")),
		x.listHandler(x.device.BridgeInterfaces),
	)

	firewallRules := mcp.NewTool("get_firewall_rules",
		mcp.WithDescription("Get firewall filter rules configured on the MikroTik device"),
		mcp.WithString("chain", mcp.Description("Filter by chain (input, forward, output)")),
		mcp.WithString("action", mcp.Description("Filter by action (accept, drop, reject)")),
	)
	x.mcp.AddTool(firewallRules, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		records, err := x.device.FirewallRules(ctx, &routeros.FirewallRuleOptions{
			Chain:  argString(args, "chain"),
			Action: argString(args, "action"),
		})
		if err != nil {
			return errResult(err)
		}
		return jsonResult(records)
	})

	x.mcp.AddTool(
		mcp.NewTool("get_nat_rules", mcp.WithDescription("Get NAT rules configured on the MikroTik device")),
		x.listHandler(x.device.NATRules),
	)
	x.mcp.AddTool(
		mcp.NewTool("get_mangle_rules", mcp.WithDescription("Get mangle rules configured on the MikroTik device")),
		x.listHandler(x.device.MangleRules),
	)
	x.mcp.AddTool(
		mcp.NewTool("get_address_lists", mcp.WithDescription("Get firewall address list entries on the MikroTik device")),
		x.listHandler(x.device.AddressLists),
	)

	x.mcp.AddTool(
		mcp.NewTool("get_dhcp_servers", mcp.WithDescription("Get DHCP server instances on the MikroTik device")),
		x.listHandler(x.device.DHCPServers),
	)
	x.mcp.AddTool(
		mcp.NewTool("get_dhcp_leases", mcp.WithDescription("Get current DHCP leases on the MikroTik device")),
		x.listHandler(x.device.DHCPLeases),
	)
	x.mcp.AddTool(
		mcp.NewTool("get_dhcp_networks", mcp.WithDescription("Get DHCP server network definitions on the MikroTik device")),
		x.listHandler(x.device.DHCPNetworks),
	)
	x.mcp.AddTool(
		mcp.NewTool("get_dhcp_clients", mcp.WithDescription("Get DHCP client configurations on the MikroTik device")),
		x.listHandler(x.device.DHCPClients),
	)

	x.mcp.AddTool(
		mcp.NewTool("get_wireless_interfaces", mcp.WithDescription("Get wireless interfaces on the MikroTik device")),
		x.listHandler(x.device.WirelessInterfaces),
	)
	x.mcp.AddTool(
		mcp.NewTool("get_wireless_clients", mcp.WithDescription("Get stations in the wireless registration table")),
		x.listHandler(x.device.WirelessClients),
	)

	x.mcp.AddTool(
		mcp.NewTool("get_ospf_config", mcp.WithDescription("Get OSPF instance configuration on the MikroTik device")),
		x.listHandler(x.device.OSPFConfig),
	)
	x.mcp.AddTool(
		mcp.NewTool("get_bgp_config", mcp.WithDescription("Get BGP instance configuration on the MikroTik device")),
		x.listHandler(x.device.BGPConfig),
	)
	x.mcp.AddTool(
		mcp.NewTool("get_routing_tables", mcp.WithDescription("Get routing table definitions on the MikroTik device")),
		x.listHandler(x.device.RoutingTables),
	)
}
