package runner

// QueryRequest is the payload sent to the agent runner's /query endpoint.
type QueryRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id,omitempty"`
	Model     string `json:"model,omitempty"`
}

// QueryResponse is the agent runner's reply.
type QueryResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}
