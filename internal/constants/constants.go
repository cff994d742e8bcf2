package constants

// Session
const (
	SessionCookieName = "kerja_session"
	ContextKeyUserID  = "user_id"
	ContextKeyTask    = "task"
	ContextKeyEvent   = "event"
	ContextKeyRequest = "request_id"
)

// Snapshot keys in the durable store
const (
	StorageKeyTasks      = "tasks"
	StorageKeyEvents     = "events"
	StorageKeyUsers      = "users"
	StorageKeyActivities = "activities"
	StorageKeySession    = "session"
)

// Workspace
const (
	GlobalTeamID       = "global-workspace"
	MaxActivityEntries = 50

	DefaultAdminID       = "u1"
	DefaultAdminName     = "Admin User"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "123"
	DefaultAdminEmail    = "admin@kerja.app"

	AvatarURLFormat = "https://ui-avatars.com/api/?name=%s&background=10b981&color=fff&size=128"
)

// Id prefixes
const (
	TaskIDPrefix     = "t"
	EventIDPrefix    = "e"
	UserIDPrefix     = "u-"
	ActivityIDPrefix = "log-"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 50
)

// Auth
const (
	MinPasswordLength = 3
)

// AI
const (
	MaxAIGeneratedTasks = 20
)
