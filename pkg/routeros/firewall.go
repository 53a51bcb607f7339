package routeros

import "context"

var (
	epFirewallFilter      = Endpoint{Path: "/ip/firewall/filter/print"}
	epFirewallNAT         = Endpoint{Path: "/ip/firewall/nat/print"}
	epFirewallMangle      = Endpoint{Path: "/ip/firewall/mangle/print"}
	epFirewallAddressList = Endpoint{Path: "/ip/firewall/address-list/print"}
)

// FirewallRuleOptions narrows the filter rule listing server-side.
type FirewallRuleOptions struct {
	Chain  string
	Action string
}

// FirewallRules returns the firewall filter rules.
func (x *Client) FirewallRules(ctx context.Context, opts *FirewallRuleOptions) ([]Record, error) {
	params := map[string]interface{}{}
	if opts != nil {
		putIf(params, "chain", opts.Chain)
		putIf(params, "action", opts.Action)
	}
	return x.Print(ctx, epFirewallFilter, params)
}

// NATRules returns the NAT rules.
func (x *Client) NATRules(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epFirewallNAT, nil)
}

// MangleRules returns the mangle rules.
func (x *Client) MangleRules(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epFirewallMangle, nil)
}

// AddressLists returns the firewall address list entries.
func (x *Client) AddressLists(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epFirewallAddressList, nil)
}
