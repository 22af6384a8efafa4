package component

// CoinComponent is a pickup carrying a currency share
type CoinComponent struct {
	Value int

	// Landed is one-way: physics stops, coin stays collectible
	Landed bool
}
