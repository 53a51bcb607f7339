package routeros

import "context"

var (
	epDHCPServer  = Endpoint{Path: "/ip/dhcp-server/print"}
	epDHCPLease   = Endpoint{Path: "/ip/dhcp-server/lease/print"}
	epDHCPNetwork = Endpoint{Path: "/ip/dhcp-server/network/print"}
	epDHCPClient  = Endpoint{Path: "/ip/dhcp-client/print"}
)

// DHCPServers returns the DHCP server instances.
func (x *Client) DHCPServers(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epDHCPServer, nil)
}

// DHCPLeases returns the current DHCP leases.
func (x *Client) DHCPLeases(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epDHCPLease, nil)
}

// DHCPNetworks returns the DHCP server network definitions.
func (x *Client) DHCPNetworks(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epDHCPNetwork, nil)
}

// DHCPClients returns the DHCP client configurations.
func (x *Client) DHCPClients(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epDHCPClient, nil)
}
