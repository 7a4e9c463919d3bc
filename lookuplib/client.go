package lookuplib

import "context"

// Client resolves lists of IP addresses with a provider. Addresses are
// processed sequentially, one request at a time.
type Client struct {
	provider Provider
	logger   Logger
}

// LookupAll resolves all ips and returns results in the same order.
// Failed lookups are stored as error records and do not interrupt
// processing of the rest of the list.
func (c *Client) LookupAll(ctx context.Context, ips []string) *ResultSet {
	rv := NewResultSet(len(ips))
	name := c.provider.Name()

	for i, ip := range ips {
		index := i + 1

		result, err := c.provider.Lookup(ctx, ip)
		if err != nil {
			c.logger.LookupError(index, ip, name, err)
			rv.Add(index, ip, Record{Error: err.Error()})

			continue
		}

		c.logger.LookupOK(index, ip, name)
		rv.Add(index, ip, Record{Result: &result})
	}

	return rv
}

func NewClient(provider Provider, logger Logger) *Client {
	return &Client{
		provider: provider,
		logger:   logger,
	}
}
