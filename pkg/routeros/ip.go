package routeros

import "context"

var (
	epIPAddress = Endpoint{Path: "/ip/address/print"}
	epIPRoute   = Endpoint{Path: "/ip/route/print"}
	epIPPool    = Endpoint{Path: "/ip/pool/print"}
)

// IPAddressOptions narrows the address listing server-side.
type IPAddressOptions struct {
	Interface string
	Network   string
	Comment   string
}

// IPRouteOptions narrows the route listing server-side.
type IPRouteOptions struct {
	DstAddress  string
	Gateway     string
	RoutingMark string
}

// IPAddresses returns the addresses configured on the device.
func (x *Client) IPAddresses(ctx context.Context, opts *IPAddressOptions) ([]Record, error) {
	params := map[string]interface{}{}
	if opts != nil {
		putIf(params, "interface", opts.Interface)
		putIf(params, "network", opts.Network)
		putIf(params, "comment", opts.Comment)
	}
	return x.Print(ctx, epIPAddress, params)
}

// IPRoutes returns the routing table entries.
func (x *Client) IPRoutes(ctx context.Context, opts *IPRouteOptions) ([]Record, error) {
	params := map[string]interface{}{}
	if opts != nil {
		putIf(params, "dst-address", opts.DstAddress)
		putIf(params, "gateway", opts.Gateway)
		putIf(params, "routing-mark", opts.RoutingMark)
	}
	return x.Print(ctx, epIPRoute, params)
}

// IPPools returns the configured address pools.
func (x *Client) IPPools(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epIPPool, nil)
}

// NetworkSummary aggregates addresses, routes and pools into one overview.
type NetworkSummary struct {
	IPAddressesCount int      `json:"ip_addresses_count"`
	IPRoutesCount    int      `json:"ip_routes_count"`
	IPPoolsCount     int      `json:"ip_pools_count"`
	Interfaces       []string `json:"interfaces"`
	Networks         []string `json:"networks"`
	Gateways         []string `json:"gateways"`
}

// GetNetworkSummary combines the three IP listings. A failure of any single
// listing fails the summary; partial overviews would be misleading.
func (x *Client) GetNetworkSummary(ctx context.Context) (*NetworkSummary, error) {
	addresses, err := x.IPAddresses(ctx, nil)
	if err != nil {
		return nil, err
	}
	routes, err := x.IPRoutes(ctx, nil)
	if err != nil {
		return nil, err
	}
	pools, err := x.IPPools(ctx)
	if err != nil {
		return nil, err
	}

	return &NetworkSummary{
		IPAddressesCount: len(addresses),
		IPRoutesCount:    len(routes),
		IPPoolsCount:     len(pools),
		Interfaces:       distinctField(addresses, "interface"),
		Networks:         distinctField(addresses, "network"),
		Gateways:         distinctField(routes, "gateway"),
	}, nil
}

func distinctField(records []Record, key string) []string {
	seen := map[string]struct{}{}
	result := []string{}
	for _, rec := range records {
		v := stringField(rec, key)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

func putIf(params map[string]interface{}, key, value string) {
	if value != "" {
		params[key] = value
	}
}
