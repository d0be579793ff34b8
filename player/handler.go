package player

import "github.com/oomph-ac/vrloco/teleport"

type Handler interface {
	// HandleTeleport is called when the user commits to a valid destination. Returning false
	// cancels the teleport.
	HandleTeleport(c *Character, dest teleport.Destination) bool
	// OnTick is called at the end of every frame.
	OnTick(c *Character)
}

// NopHandler ...
type NopHandler struct{}

func (NopHandler) HandleTeleport(*Character, teleport.Destination) bool { return true }
func (NopHandler) OnTick(*Character)                                    {}
