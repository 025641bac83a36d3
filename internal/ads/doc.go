/*
Package ads models the small slice of the advertising platform's resource
schema that adsctl mutates: extension types, resource names, and the campaign
extension setting payload.

Resource names are derived, never parsed back. The update field mask is always
produced by DeriveMask from whatever fields are populated on the payload, so
the mask and the payload cannot drift apart.
*/
package ads
