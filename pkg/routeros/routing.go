package routeros

import "context"

var (
	epOSPFInstance = Endpoint{Path: "/routing/ospf/instance/print"}
	epBGPInstance  = Endpoint{Path: "/routing/bgp/instance/print"}
	epRIPInstance  = Endpoint{Path: "/routing/rip/instance/print"}
	epRoutingTable = Endpoint{Path: "/routing/table/print"}
)

// OSPFConfig returns the OSPF instance configuration.
func (x *Client) OSPFConfig(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epOSPFInstance, nil)
}

// BGPConfig returns the BGP instance configuration.
func (x *Client) BGPConfig(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epBGPInstance, nil)
}

// RIPConfig returns the RIP instance configuration.
func (x *Client) RIPConfig(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epRIPInstance, nil)
}

// RoutingTables returns the routing table definitions.
func (x *Client) RoutingTables(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epRoutingTable, nil)
}
