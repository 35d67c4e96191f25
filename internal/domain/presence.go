package domain

import (
	"encoding/json"
	"strings"
	"time"
)

const DefaultExpirationDuration = "PT5M"

type Availability string

const (
	AvailabilityAvailable    Availability = "Available"
	AvailabilityBusy         Availability = "Busy"
	AvailabilityDoNotDisturb Availability = "DoNotDisturb"
	AvailabilityBeRightBack  Availability = "BeRightBack"
	AvailabilityAway         Availability = "Away"
	AvailabilityOffline      Availability = "Offline"
)

type StatusMessage struct {
	Content     string
	ContentType string
	PublishedAt time.Time
}

type Presence struct {
	ID            string
	Availability  Availability
	Activity      string
	StatusMessage *StatusMessage
}

// PresenceOption is one availability/activity pair an operator can pick.
type PresenceOption struct {
	Availability Availability
	Activity     string
}

func (o PresenceOption) Label() string {
	if string(o.Availability) == o.Activity {
		return o.Activity
	}
	return string(o.Availability) + " / " + o.Activity
}

// SessionPresenceOptions are valid for an application session (setPresence).
var SessionPresenceOptions = []PresenceOption{
	{Availability: AvailabilityAvailable, Activity: "Available"},
	{Availability: AvailabilityBusy, Activity: "InACall"},
	{Availability: AvailabilityBusy, Activity: "InAConferenceCall"},
	{Availability: AvailabilityAway, Activity: "Away"},
	{Availability: AvailabilityDoNotDisturb, Activity: "Presenting"},
}

// PreferredPresenceOptions are valid for setUserPreferredPresence.
var PreferredPresenceOptions = []PresenceOption{
	{Availability: AvailabilityAvailable, Activity: "Available"},
	{Availability: AvailabilityBusy, Activity: "Busy"},
	{Availability: AvailabilityDoNotDisturb, Activity: "DoNotDisturb"},
	{Availability: AvailabilityBeRightBack, Activity: "BeRightBack"},
	{Availability: AvailabilityAway, Activity: "Away"},
	{Availability: AvailabilityOffline, Activity: "OffWork"},
}

type presencePayload struct {
	ID            string `json:"id"`
	Availability  string `json:"availability"`
	Activity      string `json:"activity"`
	StatusMessage *struct {
		Message *struct {
			Content     string `json:"content"`
			ContentType string `json:"contentType"`
		} `json:"message"`
		PublishedDateTime string `json:"publishedDateTime"`
	} `json:"statusMessage"`
}

type presenceCollection struct {
	Value []presencePayload `json:"value"`
}

// FirstPresence extracts the first record of a getPresencesByUserId payload.
// It reports false when the payload holds no presence.
func FirstPresence(payload any) (Presence, bool) {
	var collection presenceCollection
	if err := decodePayload(payload, &collection); err != nil || len(collection.Value) == 0 {
		return Presence{}, false
	}

	raw := collection.Value[0]
	presence := Presence{
		ID:           raw.ID,
		Availability: Availability(raw.Availability),
		Activity:     raw.Activity,
	}
	if raw.StatusMessage != nil && raw.StatusMessage.Message != nil {
		message := &StatusMessage{
			Content:     raw.StatusMessage.Message.Content,
			ContentType: raw.StatusMessage.Message.ContentType,
		}
		if ts, err := time.Parse(time.RFC3339Nano, raw.StatusMessage.PublishedDateTime); err == nil {
			message.PublishedAt = ts
		}
		presence.StatusMessage = message
	}
	return presence, true
}

// Tone groups availabilities that share a display style.
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneRed    Tone = "red"
	ToneYellow Tone = "yellow"
	ToneGrey   Tone = "grey"
)

func (a Availability) Tone() Tone {
	switch strings.ToLower(string(a)) {
	case "available":
		return ToneGreen
	case "busy", "donotdisturb":
		return ToneRed
	case "away", "berightback":
		return ToneYellow
	default:
		return ToneGrey
	}
}

func (a Availability) Glyph() string {
	switch strings.ToLower(string(a)) {
	case "available", "busy":
		return "●"
	case "donotdisturb":
		return "⊘"
	case "away", "berightback":
		return "◐"
	default:
		return "○"
	}
}

func decodePayload(payload any, out any) error {
	if payload == nil {
		return &ValidationError{Message: "empty payload"}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
