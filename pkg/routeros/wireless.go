package routeros

import "context"

var (
	epWirelessRegistration = Endpoint{Path: "/interface/wireless/registration-table/print"}
	epWirelessSniffer      = Endpoint{Path: "/interface/wireless/sniffer/print"}
)

// WirelessClients returns the stations in the wireless registration table.
func (x *Client) WirelessClients(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epWirelessRegistration, nil)
}

// WirelessSnifferConfig returns the wireless sniffer configuration.
func (x *Client) WirelessSnifferConfig(ctx context.Context) (Record, error) {
	records, err := x.Print(ctx, epWirelessSniffer, nil)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return Record{}, nil
	}
	return records[0], nil
}
