package endpoints

import "context"

// GetBillingStats returns usage and quota for the current account.
//
// The server only accepts session auth here today, so this may fail with
// HTTP 401 when called with an API key.
func (c *Client) GetBillingStats(ctx context.Context) (*BillingStats, error) {
	var stats BillingStats
	if err := c.Get(ctx, "/api/billing/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
