/*
Package api provides the mutate client for campaign extension settings.

Basic usage:

	client := api.New(authToken, devToken)

	op, err := api.ReplaceSitelinks(1234567890, 111222333, feedItems)
	if err != nil {
		return err
	}
	resp, err := client.MutateCampaignExtensionSettings(ctx, 1234567890,
		&api.MutateRequest{Operations: []api.Operation{op}})

A failed call returns exactly one of two error values: *ServiceError when the
platform rejected the request and attached its failure detail (request id plus
one or more coded errors), or *TransportError for everything else. Callers
pick them apart with errors.As.
*/
package api
