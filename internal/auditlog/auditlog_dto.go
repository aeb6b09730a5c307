package auditlog

type CreateLogRequest struct {
	// Actor falls back to the X-Actor request header when omitted.
	Actor  string `json:"actor"`
	Action string `json:"action" binding:"required"`
}

type LogResponse struct {
	ID       string `json:"id"`
	Actor    string `json:"actor"`
	Action   string `json:"action"`
	LoggedAt string `json:"loggedAt"`
}
