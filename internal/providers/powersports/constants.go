package powersports

import "time"

const (
	providerName = "powersports"

	DefaultHost      = "powersports.ml"
	DefaultCDN       = "akc"
	DefaultUserAgent = "Mozilla/5.0 Gecko Firefox"

	// ExpiredMessage is reported when the signed URL's expiry already passed.
	ExpiredMessage = "Stream URL is expired"

	notReadyMarker = "Not"
	expMarker      = "exp="
	expTerminator  = "~"

	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 8 << 10
)
