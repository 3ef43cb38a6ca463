// internal/event/types.go
package event

const (
	AntDeployed   EventType = "AntDeployed"   // Ant placed by a strategy
	AntRemoved    EventType = "AntRemoved"    // Ant taken off the board by a strategy
	InsectExpired EventType = "InsectExpired" // Armor dropped to zero
	BeesReleased  EventType = "BeesReleased"  // Hive released a wave
	NotEnoughFood EventType = "NotEnoughFood" // Deployment rejected
	GameOver      EventType = "GameOver"
)
