package routeros

import "context"

var (
	epInterface         = Endpoint{Path: "/interface/print"}
	epEthernetInterface = Endpoint{Path: "/interface/ethernet/print"}
	epWirelessInterface = Endpoint{Path: "/interface/wireless/print"}
	epBridgeInterface   = Endpoint{Path: "/interface/bridge/print"}
)

// InterfaceOptions narrows the interface listing server-side.
type InterfaceOptions struct {
	Name string
	Type string
}

// Interfaces returns all interfaces configured on the device.
func (x *Client) Interfaces(ctx context.Context, opts *InterfaceOptions) ([]Record, error) {
	params := map[string]interface{}{}
	if opts != nil {
		putIf(params, "name", opts.Name)
		putIf(params, "type", opts.Type)
	}
	return x.Print(ctx, epInterface, params)
}

// EthernetInterfaces returns the ethernet interfaces.
func (x *Client) EthernetInterfaces(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epEthernetInterface, nil)
}

// WirelessInterfaces returns the wireless interfaces.
func (x *Client) WirelessInterfaces(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epWirelessInterface, nil)
}

// BridgeInterfaces returns the bridge interfaces.
func (x *Client) BridgeInterfaces(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epBridgeInterface, nil)
}
