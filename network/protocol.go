package network

// Message is the JSON envelope for every feed frame
type Message struct {
	Type    string `json:"type"` // "hud" or "event"
	Payload any    `json:"payload"`
	Sender  string `json:"sender"` // Run id of the session
}

const (
	MessageHUD   = "hud"
	MessageEvent = "event"
)

// HUDState is the read model shown by HUD collaborators
type HUDState struct {
	Frame int64 `json:"frame"`

	Currency      int     `json:"currency"`
	BufferCurrent float64 `json:"buffer_current"`
	BufferMax     float64 `json:"buffer_max"`
	BufferPercent float64 `json:"buffer_percent"`

	Weapon   string         `json:"weapon"`
	Weapons  []string       `json:"weapons"`
	Upgrades map[string]int `json:"upgrades"`

	Proximity string `json:"proximity"`
	ShopOpen  bool   `json:"shop_open"`

	Elapsed string `json:"elapsed"` // MM:SS
	Paused  bool   `json:"paused"`

	Coins int `json:"coins"` // Pickups in the world
}

// EventNotice is a discrete gameplay notification
type EventNotice struct {
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
}

// Publisher receives feed frames from the simulation; implementations must not block
type Publisher interface {
	PublishHUD(state HUDState)
	PublishEvent(notice EventNotice)
}
