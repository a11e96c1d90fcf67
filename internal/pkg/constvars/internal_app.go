package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY   contextKey = "request_id"
	CONTEXT_AUTH_CONTEXT_KEY contextKey = "auth_context"
	CONTEXT_SESSION_KEY      contextKey = "session"
)

// Auth contexts: the backoffice holds a single "user" token pair, the mobile
// app additionally keeps a "client" (service-account) pair.
const (
	AuthContextUser   = "user"
	AuthContextClient = "client"
)

// Fixed storage key layout for persisted token pairs.
const TokenStorageKeyFormat = "auth:tokens:%s"

const (
	AuthLoginEndpoint     = "auth/login"
	AuthRefreshEndpoint   = "auth/refresh"
	UsersRegisterEndpoint = "users/register"
)

const (
	URLParamResourceType = "resourceType"
	URLParamResourceID   = "resourceID"
	QueryParamIDs        = "ids"
	QueryParamID         = "_id"
)
