package component

// VisualHint tells the presentation layer how to draw an entity
type VisualHint uint8

const (
	VisualNone VisualHint = iota
	VisualPlayer
	VisualTarget
	VisualGround
	VisualWeaponShop
	VisualUpgradeShop
	VisualProjectile
	VisualBeam
	VisualCoin
)

// VisualComponent carries the draw hint and glyph
type VisualComponent struct {
	Hint  VisualHint
	Glyph rune
}
