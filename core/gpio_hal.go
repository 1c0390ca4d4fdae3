package core

// GPIOPin identifies a hardware GPIO line offset
type GPIOPin uint32

// Pull selects the input bias resistor
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// EdgeHandler is called once per transition with the new level and the
// counter value at the edge. It may run in interrupt context.
type EdgeHandler func(level Level, tick Tick)

// InputLine is an acquired input with edge detection on both edges
type InputLine interface {
	// Watch registers the edge callback. A line has at most one callback.
	Watch(handler EdgeHandler) error

	// Close stops edge delivery and releases the line
	Close() error
}

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// AcquireInput configures pin as an input and returns its handle
	AcquireInput(pin GPIOPin, pull Pull) (InputLine, error)
}

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}
