package domain

// TokenRequest is the body accepted by POST /api/token.
type TokenRequest struct {
	TenantID  string `json:"tenantId"`
	AppID     string `json:"appId"`
	AppSecret string `json:"appSecret"`
}

func (r TokenRequest) Credentials() Credentials {
	return Credentials{TenantID: r.TenantID, AppID: r.AppID, AppSecret: r.AppSecret}
}

// PresenceRequest is the body accepted by POST /api/presence.
type PresenceRequest struct {
	Token        string `json:"token"`
	UserObjectID string `json:"userObjectId"`
	Action       string `json:"action"`
	Body         any    `json:"body,omitempty"`
}

// GatewayCall is a validated presence gateway invocation.
type GatewayCall struct {
	Token  string
	UserID string
	Action Action
	Body   any
}

// APIResponse is what an endpoint answers: a status code and a JSON body.
type APIResponse struct {
	StatusCode int
	Body       any
}

func (r APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ErrorMessage returns the "error" field of a failed response body.
func (r APIResponse) ErrorMessage() string {
	if m, ok := r.Body.(map[string]any); ok {
		if msg, ok := m["error"].(string); ok {
			return msg
		}
	}
	return ""
}
