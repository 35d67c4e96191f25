package ports

import "github.com/bnema/graph-presence-cli/internal/domain"

type Notifier interface {
	Notify(n domain.Notification)
}
