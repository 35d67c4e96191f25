package console

import (
	"fmt"
	"strings"

	"github.com/bnema/graph-presence-cli/internal/application"
	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const notSet = "(not set)"

type RenderOptions struct {
	// ShowToken prints the raw access token instead of "acquired".
	ShowToken bool
}

func renderView(state application.State, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Graph Presence"),
		s.header.Render(headerLine(state)),
		s.section.Render(renderCredentials(state, opts, s)),
		s.section.Render(renderSelections(state, s)),
	}

	if state.User != nil {
		lines = append(lines, s.section.Render(renderUser(*state.User, s)))
	}
	if state.Presence != nil {
		lines = append(lines, s.section.Render(renderPresence(*state.Presence, s)))
	}
	if state.User == nil && state.Presence == nil {
		lines = append(lines, s.section.Render(s.empty.Render("No user or presence loaded.")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(state application.State) string {
	token := "no token"
	if state.Token != "" {
		token = "token acquired"
	}
	if state.Busy {
		return token + " | busy"
	}
	return token
}

func renderCredentials(state application.State, opts RenderOptions, s styles) string {
	token := notSet
	switch {
	case state.Token != "" && opts.ShowToken:
		token = state.Token
	case state.Token != "":
		token = "acquired"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		field(s, "tenant id", orNotSet(state.TenantID)),
		field(s, "app id", orNotSet(state.AppID)),
		field(s, "app secret", MaskSecret(state.AppSecret)),
		field(s, "user object id", orNotSet(state.UserObjectID)),
		field(s, "token", token),
	)
}

func renderSelections(state application.State, s styles) string {
	session := optionLabel(domain.SessionPresenceOptions, state.SessionOption)
	preferred := optionLabel(domain.PreferredPresenceOptions, state.PreferredOption)

	return lipgloss.JoinVertical(lipgloss.Left,
		field(s, "session presence", fmt.Sprintf("%s for %s", session, expiration(state.ExpirationDuration))),
		field(s, "preferred presence", preferred),
	)
}

func renderUser(user domain.User, s styles) string {
	lines := []string{
		s.cardTitle.Render(orNotSet(user.DisplayName)),
		field(s, "upn", orNotSet(user.UserPrincipalName)),
	}
	if user.Mail != "" {
		lines = append(lines, field(s, "mail", user.Mail))
	}
	if user.JobTitle != "" {
		lines = append(lines, field(s, "job title", user.JobTitle))
	}
	lines = append(lines, field(s, "id", orNotSet(user.ID)))

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderPresence(presence domain.Presence, s styles) string {
	badge := s.tone(presence.Availability.Tone()).Render(
		presence.Availability.Glyph() + " " + string(presence.Availability),
	)

	lines := []string{
		s.cardTitle.Render("Presence"),
		field(s, "availability", badge),
		field(s, "activity", orNotSet(presence.Activity)),
	}
	if msg := presence.StatusMessage; msg != nil && strings.TrimSpace(msg.Content) != "" {
		lines = append(lines, field(s, "status", msg.Content))
		if !msg.PublishedAt.IsZero() {
			lines = append(lines, field(s, "published", msg.PublishedAt.Local().Format("2006-01-02 15:04")))
		}
	}

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderNotification(n domain.Notification, s styles) string {
	title := s.success.Render(n.Title)
	if n.Variant == domain.NotificationDestructive {
		title = s.destructive.Render(n.Title)
	}
	if n.Description == "" {
		return title
	}
	return title + " " + s.value.Render(n.Description)
}

func field(s styles, label, value string) string {
	return s.label.Render(label+":") + " " + s.value.Render(value)
}

func orNotSet(v string) string {
	if strings.TrimSpace(v) == "" {
		return notSet
	}
	return v
}

func optionLabel(options []domain.PresenceOption, index int) string {
	if index < 0 || index >= len(options) {
		return "unknown"
	}
	return options[index].Label()
}

func expiration(v string) string {
	if v == "" {
		return domain.DefaultExpirationDuration
	}
	return v
}

// MaskSecret hides all of a secret. Only whether it is set is shown.
func MaskSecret(secret string) string {
	if secret == "" {
		return notSet
	}
	return strings.Repeat("*", 8)
}
