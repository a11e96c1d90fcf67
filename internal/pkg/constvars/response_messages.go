package constvars

const (
	ResponseSuccessLogin    = "Sessão iniciada com sucesso"
	ResponseSuccessLogout   = "Sessão terminada"
	ResponseSuccessRefresh  = "Sessão renovada"
	ResponseSuccessRegister = "Conta criada com sucesso"
	ResponseSuccessList     = "Registos obtidos com sucesso"
	ResponseSuccessGet      = "Registo obtido com sucesso"
	ResponseSuccessCreate   = "Registo criado com sucesso"
	ResponseSuccessUpdate   = "Registo atualizado com sucesso"
	ResponseSuccessDelete   = "Registo eliminado com sucesso"
	ResponseSuccessProfile  = "Perfil obtido com sucesso"

	ResponseUnknown = "unknown"
)
