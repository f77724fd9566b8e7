package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	UserTitle    string `json:"error_user_title,omitempty"`
	UserMessage  string `json:"error_user_msg,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é o erro retornado pelo cliente quando a Graph API responde com o
// envelope {"error": {...}}, com ou sem status HTTP de falha.
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	msg := e.Details.Message
	if e.Details.UserMessage != "" {
		msg = e.Details.UserMessage
	}
	return fmt.Sprintf("meta: %s (code=%d, status=%d)", msg, e.Details.Code, e.StatusCode)
}

// Message retorna o texto mais adequado para exibir ao usuário.
func (e *APIError) Message() string {
	if e.Details.UserMessage != "" {
		return e.Details.UserMessage
	}
	return e.Details.Message
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *APIError) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Details.Code == 190 ||
		(e.Details.Type == "OAuthException" && (e.Details.ErrorSubcode == 460 || e.Details.ErrorSubcode == 463 || e.Details.ErrorSubcode == 467))
}

// IsRateLimited identifica os códigos de limitação de uso da plataforma.
func (e *APIError) IsRateLimited() bool {
	switch e.Details.Code {
	case 4, 17, 32, 613, 80000, 80003, 80004:
		return true
	}
	return false
}

// IsClientError indica erros causados pela requisição (permissão, parâmetro,
// token). Esses erros não indicam indisponibilidade da plataforma.
func (e *APIError) IsClientError() bool {
	if e.IsRateLimited() {
		return false
	}
	return (e.StatusCode >= 400 && e.StatusCode < 500) || e.StatusCode == 200
}
