package domain

type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

type Notification struct {
	Title       string
	Description string
	Variant     NotificationVariant
}
