// internal/config/config.go
package config

import "image/color"

// Game rules.
const (
	DefaultFood          = 2
	TunnelLength         = 9
	MoatFrequency        = 3
	ThrowerMaxRange      = 10
	LongThrowerMinRange  = 5
	ShortThrowerMaxRange = 3
	WallArmor            = 4
	ContainerArmor       = 2
	FireDamage           = 3
	HungryDigestTime     = 3
	SlowDuration         = 3
	StunDuration         = 1
	WaspDamage           = 2
	HornetDamage         = 0.25
	BossDamageCap        = 8
)

// Food costs.
const (
	CostHarvester = 2
	CostThrower   = 4
	CostLong      = 2
	CostShort     = 2
	CostScuba     = 5
	CostFire      = 6
	CostWall      = 4
	CostNinja     = 6
	CostHungry    = 4
	CostBodyguard = 4
	CostTank      = 6
	CostQueen     = 6
	CostSlow      = 4
	CostStun      = 6
)

// Batch runs.
const (
	DefaultSeed    = 12345
	BatchWorkers   = 8
	SeedWorkerStep = 7919
)

// Viewer.
const (
	ScreenWidth      = 1200
	ScreenHeight     = 700
	PlaceWidth       = 100
	PlaceHeight      = 90
	PlaceGap         = 6
	BoardOffsetX     = 150
	BoardOffsetY     = 110
	FontSize         = 12
	TicksPerSecond   = 1.0
	MaxDeltaTime     = 0.06
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	StrokeWidth      = 2.0
	RosterButtonW    = 80
	RosterButtonH    = 36
	RosterButtonGap  = 4
	RosterTop        = 20
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TunnelColor     = color.RGBA{70, 100, 120, 220}
	WaterColor      = color.RGBA{40, 80, 200, 220}
	GoalColor       = color.RGBA{50, 205, 50, 255}
	HiveColor       = color.RGBA{220, 180, 40, 255}
	SelectedColor   = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	AntColor        = color.RGBA{150, 220, 150, 255}
	BeeColor        = color.RGBA{255, 200, 60, 255}
	RunningColor    = color.RGBA{70, 130, 180, 220}
	PausedColor     = color.RGBA{194, 178, 128, 255}
	AntsWinColor    = color.RGBA{50, 205, 50, 255}
	BeesWinColor    = color.RGBA{220, 60, 60, 220}
	ButtonColor     = color.RGBA{60, 60, 80, 255}
	ButtonHotColor  = color.RGBA{90, 90, 120, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
)
