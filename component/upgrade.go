package component

// UpgradeKind identifies a permanent upgrade
type UpgradeKind uint8

const (
	UpgradeSpeedBoost UpgradeKind = iota
	UpgradeCoinMagnet
	UpgradeBuffer
	UpgradeCount // Sentinel for array sizing
)

// UpgradeProfile describes an upgrade's shape; level caps come from balance config
type UpgradeProfile struct {
	Name    string
	Leveled bool // false = boolean ownership, level 0 or 1
}

var UpgradeProfiles = [UpgradeCount]UpgradeProfile{
	UpgradeSpeedBoost: {Name: "SpeedBoost", Leveled: true},
	UpgradeCoinMagnet: {Name: "CoinMagnet", Leveled: false},
	UpgradeBuffer:     {Name: "BufferUpgrade", Leveled: true},
}

func (k UpgradeKind) String() string {
	if k >= UpgradeCount {
		return "Unknown"
	}
	return UpgradeProfiles[k].Name
}

// ParseUpgradeKind resolves an upgrade by its name
func ParseUpgradeKind(name string) (UpgradeKind, bool) {
	for k := UpgradeKind(0); k < UpgradeCount; k++ {
		if UpgradeProfiles[k].Name == name {
			return k, true
		}
	}
	return 0, false
}
