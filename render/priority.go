package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityWorld Priority = iota
	PriorityHUD
	PriorityShop
	PriorityMessage
	PriorityDebug
)
