package ads

// ExtensionType identifies the kind of extension a setting governs. The wire
// form is the platform's enum name.
type ExtensionType string

const (
	ExtensionTypeSitelink     ExtensionType = "SITELINK"
	ExtensionTypeCallout      ExtensionType = "CALLOUT"
	ExtensionTypeCall         ExtensionType = "CALL"
	ExtensionTypePrice        ExtensionType = "PRICE"
	ExtensionTypePromotion    ExtensionType = "PROMOTION"
	ExtensionTypeStructured   ExtensionType = "STRUCTURED_SNIPPET"
	ExtensionTypeApp          ExtensionType = "APP"
	ExtensionTypeLocation     ExtensionType = "LOCATION"
	ExtensionTypeHotelCallout ExtensionType = "HOTEL_CALLOUT"
	ExtensionTypeImage        ExtensionType = "IMAGE"
	ExtensionTypeUnspecified  ExtensionType = "UNSPECIFIED"
)

func (t ExtensionType) String() string {
	if t == "" {
		return string(ExtensionTypeUnspecified)
	}
	return string(t)
}

// CampaignExtensionSetting is the mutable resource adsctl targets. Only the
// fields being changed are populated on an update payload; ResourceName is the
// identifier and is excluded from mask derivation.
type CampaignExtensionSetting struct {
	ResourceName       string        `json:"resourceName,omitempty" mask:"-"`
	ExtensionType      ExtensionType `json:"extensionType,omitempty"`
	Campaign           string        `json:"campaign,omitempty"`
	ExtensionFeedItems []string      `json:"extensionFeedItems,omitempty"`
	Device             string        `json:"device,omitempty"`
}
