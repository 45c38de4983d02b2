package response

// Every endpoint answers with this envelope: success plus an optional error
// message, payload fields alongside.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TokenResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type DispatchResponse struct {
	Success     bool `json:"success"`
	SentCount   int  `json:"sentCount"`
	FailedCount int  `json:"failedCount"`
}

func Err(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

func Msg(msg string) MessageResponse {
	return MessageResponse{Success: true, Message: msg}
}
