package config

import "time"

// Timer settings.
const (
	// TickInterval drives the display refresh. The tick only triggers a
	// re-render; accounting state changes only on user actions.
	TickInterval = time.Second
)

// Database/application settings.
const (
	AppName    = "tally"
	DBFileName = "tally.db"

	// SettingTheme is the KV key for the persisted theme name.
	SettingTheme = "theme"
)

// Input constraints.
const (
	// MaxNameLength is the maximum task name length.
	MaxNameLength = 100
)

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 48

	// TargetNameWidth is the preferred width for task names.
	TargetNameWidth = 36

	// MinNameWidth is the minimum width for task names.
	MinNameWidth = 10

	// MaxVisibleTasks limits tasks shown before scrolling.
	MaxVisibleTasks = 15
)
