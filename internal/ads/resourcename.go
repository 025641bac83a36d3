package ads

import "fmt"

// Resource name construction. Each helper is a pure function of its
// identifiers; the same inputs always produce the same name.

func CustomerName(customerID int64) string {
	return fmt.Sprintf("customers/%d", customerID)
}

func CampaignName(customerID, campaignID int64) string {
	return fmt.Sprintf("customers/%d/campaigns/%d", customerID, campaignID)
}

func ExtensionFeedItemName(customerID, feedItemID int64) string {
	return fmt.Sprintf("customers/%d/extensionFeedItems/%d", customerID, feedItemID)
}

// CampaignExtensionSettingName names the setting that attaches extensions of
// type t to a campaign. The trailing segment is the composite campaign-id~type
// key the platform uses.
func CampaignExtensionSettingName(customerID, campaignID int64, t ExtensionType) string {
	return fmt.Sprintf("customers/%d/campaignExtensionSettings/%d~%s", customerID, campaignID, t)
}
