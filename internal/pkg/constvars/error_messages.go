package constvars

// Error messages for clients. User-facing copy is Portuguese.
const (
	ErrClientSomethingWrongWithApplication = "Ocorreu um erro na aplicação, tente novamente mais tarde"
	ErrClientCannotProcessRequest          = "Não foi possível processar o pedido"
	ErrClientNotAuthorized                 = "Não tem autorização para aceder a este recurso"
	ErrClientNotLoggedIn                   = "A sessão expirou, inicie sessão novamente"
	ErrClientInvalidEmailOrPassword        = "Email ou palavra-passe inválidos"
	ErrClientInsufficientRole              = "A conta não tem permissões de acesso a esta aplicação"
	ErrClientUserAlreadyExists             = "Já existe uma conta registada com estes dados"
	ErrClientUserInvalidData               = "Os dados da conta são inválidos"
	ErrClientResourceNotFound              = "O registo pedido não existe"
	ErrClientResourceStillReferenced       = "O registo não pode ser eliminado porque ainda é referenciado por outros registos"
	ErrClientServerLongRespond             = "O servidor demorou demasiado tempo a responder, tente novamente"
	ErrClientUnknownResourceType           = "Tipo de recurso desconhecido"
	ErrClientMissingIDs                    = "O pedido não indica os registos a eliminar"
)

// Error messages for developers.
const (
	ErrDevBuildRequest              = "Failed to build HTTP request"
	ErrDevSendRequest               = "Failed to send HTTP request"
	ErrDevServerDeadlineExceeded    = "Request deadline exceeded"
	ErrDevCannotParseJSON           = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON         = "Failed to marshal JSON payload"
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevAuthTokenMissing          = "Authorization token missing"
	ErrDevAuthTokenInvalidOrExpired = "Token is invalid or expired"
	ErrDevAuthTokenDecode           = "Failed to decode token claims"
	ErrDevAuthRoleMismatch          = "Token role claim does not match required role"
	ErrDevAuthRefreshFailed         = "Token refresh rejected by auth service"
	ErrDevAuthLoginFailed           = "Login rejected by auth service"
	ErrDevRedisSet                  = "Failed to write key to Redis"
	ErrDevRedisGet                  = "Failed to read key from Redis"
	ErrDevRedisDelete               = "Failed to delete key from Redis"
	ErrDevFHIRRequestFailed         = "FHIR API returned a non-2xx response"
	ErrDevFHIRDecodeFailed          = "Failed to decode FHIR resource payload"
	ErrDevUserAlreadyExists         = "Auth service reported the account already exists"
	ErrDevUserInvalidData           = "Auth service rejected the registration payload"
	ErrDevUnknownResourceType       = "No such resource type is exposed by the data provider"
	ErrDevMissingRequestID          = "Request ID missing from context"
	ErrDevResourceStillReferenced   = "Delete rejected because the resource is still referenced"
	ErrDevMissingIDs                = "Query parameter ids is empty"
)
