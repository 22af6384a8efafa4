package economy

// Wallet holds spendable currency, never negative
type Wallet struct {
	currency int
}

// Balance returns the spendable currency
func (w *Wallet) Balance() int {
	return w.currency
}

// credit adds absorbed pickup value; non-positive amounts are ignored
func (w *Wallet) credit(amount int) {
	if amount > 0 {
		w.currency += amount
	}
}

// trySpend debits cost only if affordable
func (w *Wallet) trySpend(cost int) bool {
	if cost < 0 || w.currency < cost {
		return false
	}
	w.currency -= cost
	return true
}
