package api

import (
	"context"
	"fmt"

	"github.com/adsctl/adsctl/internal/ads"
)

// MutateRequest is one campaignExtensionSettings:mutate call.
type MutateRequest struct {
	Operations     []Operation `json:"operations"`
	PartialFailure bool        `json:"partialFailure,omitempty"`
	ValidateOnly   bool        `json:"validateOnly,omitempty"`
}

// MutateResponse carries one result per operation, in operation order.
type MutateResponse struct {
	Results []MutateResult `json:"results"`
}

type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// Operation is the create/update/remove union the mutate endpoint takes.
// Exactly one arm is populated; UpdateMask accompanies the update arm.
type Operation struct {
	Create     *ads.CampaignExtensionSetting `json:"create,omitempty"`
	Update     *ads.CampaignExtensionSetting `json:"update,omitempty"`
	Remove     string                        `json:"remove,omitempty"`
	UpdateMask string                        `json:"updateMask,omitempty"`
}

// NewUpdate wraps a partially-populated setting in an update operation. The
// mask comes from DeriveMask, so it names exactly the populated fields.
func NewUpdate(setting *ads.CampaignExtensionSetting) (Operation, error) {
	mask, err := ads.DeriveMask(setting)
	if err != nil {
		return Operation{}, fmt.Errorf("build update operation: %w", err)
	}
	return Operation{Update: setting, UpdateMask: ads.MaskString(mask)}, nil
}

// NewRemove builds a remove operation for an existing setting.
func NewRemove(resourceName string) Operation {
	return Operation{Remove: resourceName}
}

// ReplaceSitelinks builds the single update operation that replaces the
// sitelink feed items attached to a campaign. The input order and length are
// preserved exactly; an empty list is a valid replacement (it clears the
// setting) and still masks the field. Feed-item names are not validated here;
// malformed names are the platform's to reject.
func ReplaceSitelinks(customerID, campaignID int64, feedItems []string) (Operation, error) {
	if feedItems == nil {
		feedItems = []string{}
	}
	return NewUpdate(&ads.CampaignExtensionSetting{
		ResourceName:       ads.CampaignExtensionSettingName(customerID, campaignID, ads.ExtensionTypeSitelink),
		ExtensionFeedItems: feedItems,
	})
}

// RemoveSitelinkSetting builds the remove operation for a campaign's sitelink
// extension setting.
func RemoveSitelinkSetting(customerID, campaignID int64) Operation {
	return NewRemove(ads.CampaignExtensionSettingName(customerID, campaignID, ads.ExtensionTypeSitelink))
}

// MutateCampaignExtensionSettings sends one mutate request for one customer.
// The whole call either succeeds or fails; there is no partial-success
// handling unless the request opts into it.
func (c *Client) MutateCampaignExtensionSettings(ctx context.Context, customerID int64, req *MutateRequest) (*MutateResponse, error) {
	path := fmt.Sprintf("/%s/customers/%d/campaignExtensionSettings:mutate", c.version, customerID)
	var resp MutateResponse
	if err := c.post(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
