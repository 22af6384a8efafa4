package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/save"
)

// Notices keeps the latest player-facing notice and forwards every frame to next
// Sits between the broadcast system and the HUD feed; called from the tick goroutine only
type Notices struct {
	next network.Publisher
	now  func() time.Time

	text  string
	warn  bool
	shown time.Time
}

// NewNotices wraps next, which may be nil
func NewNotices(next network.Publisher) *Notices {
	return &Notices{next: next, now: time.Now}
}

func (n *Notices) PublishHUD(state network.HUDState) {
	if n.next != nil {
		n.next.PublishHUD(state)
	}
}

func (n *Notices) PublishEvent(notice network.EventNotice) {
	if text, warn, ok := noticeText(notice); ok {
		n.text = text
		n.warn = warn
		n.shown = n.now()
	}
	if n.next != nil {
		n.next.PublishEvent(notice)
	}
}

// Current returns the live notice; empty once it has been shown for MessageDuration
func (n *Notices) Current(now time.Time) (string, bool) {
	if n.text == "" || now.Sub(n.shown) > parameter.MessageDuration {
		return "", false
	}
	return n.text, n.warn
}

func noticeText(notice network.EventNotice) (text string, warn, ok bool) {
	switch notice.Name {
	case event.EventPurchaseCompleted.String():
		return "Bought " + notice.Detail, false, true
	case event.EventPurchaseRejected.String():
		return notice.Detail, true, true
	case event.EventWeaponChanged.String():
		return "Weapon: " + notice.Detail, false, true
	case event.EventSessionSaved.String():
		return "Saved to " + save.DisplayName(notice.Detail), false, true
	case event.EventSessionRestored.String():
		if notice.Detail == "" {
			return "Restored", false, true
		}
		return "Loaded " + save.DisplayName(notice.Detail), false, true
	}
	return "", false, false
}

// MessageRenderer shows the current notice above the ground line
type MessageRenderer struct {
	notices *Notices
}

func NewMessageRenderer(notices *Notices) *MessageRenderer {
	return &MessageRenderer{notices: notices}
}

func (r *MessageRenderer) Render(ctx Context, scr tcell.Screen) {
	text, warn := r.notices.Current(ctx.Now)
	if text == "" {
		return
	}
	style := styleGood
	if warn {
		style = styleWarn
	}
	w, _ := scr.Size()
	drawText(scr, (w-len(text))/2, 2, style, text)
}
