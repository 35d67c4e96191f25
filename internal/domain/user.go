package domain

type User struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	UserPrincipalName string `json:"userPrincipalName"`
	Mail              string `json:"mail,omitempty"`
	JobTitle          string `json:"jobTitle,omitempty"`
}

// UserFromPayload decodes a /users/{id} payload.
func UserFromPayload(payload any) (User, bool) {
	var user User
	if err := decodePayload(payload, &user); err != nil {
		return User{}, false
	}
	if user.ID == "" && user.DisplayName == "" && user.UserPrincipalName == "" {
		return User{}, false
	}
	return user, true
}
