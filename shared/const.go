package shared

import "time"

const (
	UserID    = "user_id"
	Username  = "username"
	SessionID = "session_id"

	SessionCookie = "session"
	SessionTTL    = 7 * 24 * time.Hour

	// Contact defaults applied when a create request omits a field.
	DefaultAvatar   = "U"
	DefaultGradient = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	DefaultStatus   = "offline"
)
