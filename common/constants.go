package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed update rate the frame loop runs at.
	TPS = 60
	// TickSeconds is the simulated time advanced by one update.
	TickSeconds = 1.0 / TPS
)
