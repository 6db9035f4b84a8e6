package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer
// access token on protected requests.
const AuthorizationHeaderName = "Authorization"

// AccessTokenQueryParam is the query parameter fallback for transports
// that cannot set headers (browser WebSocket clients).
const AccessTokenQueryParam = "access_token"
