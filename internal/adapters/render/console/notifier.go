package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/ports"
)

// Notifier prints notifications one per line.
type Notifier struct {
	mu     sync.Mutex
	w      io.Writer
	styles styles
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w, styles: newStyles()}
}

func (n *Notifier) Notify(note domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.w, renderNotification(note, n.styles))
}
