/*
Adsctl mutates campaign extension settings through the advertising platform's
REST API. Its main job is replacing the sitelink extension feed items attached
to a campaign with a masked update, so that only the feed-item list changes
and every other attribute of the setting is left untouched.

	adsctl update-sitelinks -customer 1234567890 -campaign 111222333 \
	    -feed-item customers/1234567890/extensionFeedItems/1 \
	    -feed-item customers/1234567890/extensionFeedItems/2

Credentials come from flags, the environment (ADSCTL_AUTH_TOKEN,
ADSCTL_DEV_TOKEN), a stored ~/.adsctl/env file, or a YAML config file.
Obtaining and refreshing the OAuth token itself is out of scope; pass a valid
bearer token.
*/
package main
