package core

// Blink parameters
const (
	LEDPin          = D7
	BlinkIntervalMs = 500
)

// Setup configures the LED pin as an output. Called once at boot.
func (b *Board) Setup() {
	b.ConfigurePin(LEDPin, Output)
}

// Loop runs one full blink cycle and returns.
// No state is carried between calls.
func (b *Board) Loop() {
	b.WritePin(LEDPin, High)
	b.Delay(BlinkIntervalMs)
	b.WritePin(LEDPin, Low)
	b.Delay(BlinkIntervalMs)
}

// Setup is the boot entry point, bound to the registered HAL
func Setup() {
	if IsDebugEnabled() {
		DebugPrintln("[BLINK] setup " + LEDPin.String() + " " + Output.String())
	}
	NewBoard(MustHAL()).Setup()
}

// Loop is the repeating entry point, bound to the registered HAL
func Loop() {
	NewBoard(MustHAL()).Loop()
}

// Run calls Setup once and then Loop forever. It never returns.
// A panic anywhere below lands in the fault hook.
func (b *Board) Run() {
	defer RecoverFault()

	b.Setup()
	for {
		b.Loop()
	}
}

// Run drives the registered HAL forever
func Run() {
	if IsDebugEnabled() {
		DebugPrintln("[BLINK] run " + LEDPin.String() + " every " + utoa(BlinkIntervalMs) + "ms")
	}
	NewBoard(MustHAL()).Run()
}
