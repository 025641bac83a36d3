package ads

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeriveMask(t *testing.T) {
	tests := []struct {
		name      string
		payload   any
		wantPaths []string
	}{
		{
			name: "only feed items set",
			payload: &CampaignExtensionSetting{
				ResourceName:       "customers/1/campaignExtensionSettings/2~SITELINK",
				ExtensionFeedItems: []string{"customers/1/extensionFeedItems/3"},
			},
			wantPaths: []string{"extensionFeedItems"},
		},
		{
			name: "empty but non-nil list still masks the field",
			payload: &CampaignExtensionSetting{
				ResourceName:       "customers/1/campaignExtensionSettings/2~SITELINK",
				ExtensionFeedItems: []string{},
			},
			wantPaths: []string{"extensionFeedItems"},
		},
		{
			name: "multiple fields set, struct order preserved",
			payload: &CampaignExtensionSetting{
				ExtensionType:      ExtensionTypeSitelink,
				ExtensionFeedItems: []string{"customers/1/extensionFeedItems/3"},
				Device:             "MOBILE",
			},
			wantPaths: []string{"extensionType", "extensionFeedItems", "device"},
		},
		{
			name:      "nothing set",
			payload:   &CampaignExtensionSetting{},
			wantPaths: nil,
		},
		{
			name: "untagged fields fall back to lowerCamel",
			payload: struct {
				PlainValue    string
				NestedPointer *int `json:"nested,omitempty"`
			}{PlainValue: "x"},
			wantPaths: []string{"plainValue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := DeriveMask(tt.payload)
			if err != nil {
				t.Fatalf("DeriveMask() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantPaths, mask.GetPaths()); diff != "" {
				t.Errorf("mask paths mismatch (-want +got):\n%s", diff)
			}

			// Idempotent: re-deriving from the same payload yields the same mask.
			again, err := DeriveMask(tt.payload)
			if err != nil {
				t.Fatalf("second DeriveMask() error = %v", err)
			}
			if diff := cmp.Diff(mask.GetPaths(), again.GetPaths()); diff != "" {
				t.Errorf("re-derived mask differs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestDeriveMaskRejectsNonStructs(t *testing.T) {
	if _, err := DeriveMask("not a struct"); err == nil {
		t.Error("DeriveMask(string) error = nil, want error")
	}
	var nilSetting *CampaignExtensionSetting
	if _, err := DeriveMask(nilSetting); err == nil {
		t.Error("DeriveMask(nil pointer) error = nil, want error")
	}
}

func TestMaskString(t *testing.T) {
	setting := &CampaignExtensionSetting{
		ResourceName:       "customers/1/campaignExtensionSettings/2~SITELINK",
		ExtensionFeedItems: []string{},
	}
	mask, err := DeriveMask(setting)
	if err != nil {
		t.Fatalf("DeriveMask() error = %v", err)
	}
	if got, want := MaskString(mask), "extensionFeedItems"; got != want {
		t.Errorf("MaskString() = %q, want %q", got, want)
	}
}
