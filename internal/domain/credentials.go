package domain

type Credentials struct {
	TenantID  string
	AppID     string
	AppSecret string
}

func (c Credentials) Complete() bool {
	return c.TenantID != "" && c.AppID != "" && c.AppSecret != ""
}

// Validate reports a ValidationError naming every missing field.
func (c Credentials) Validate() error {
	var missing []string
	if c.TenantID == "" {
		missing = append(missing, "tenantId")
	}
	if c.AppID == "" {
		missing = append(missing, "appId")
	}
	if c.AppSecret == "" {
		missing = append(missing, "appSecret")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Message: "Missing required parameters"}
	}
	return nil
}
