package sweeper

// Leds is an immutable value describing the LED panel. Reducers return an
// updated copy; nothing reaches the device until Commit. This keeps LED
// state composable: build the value up across any number of steps, then
// push it once.
type Leds struct {
	bits           byte
	powerColor     byte // 0 green .. 255 red
	powerIntensity byte // 0 off .. 255 full
}

const (
	ledDirtDetect = 1 << 0
	ledMax        = 1 << 1
	ledClean      = 1 << 2
	ledSpot       = 1 << 3
	ledStatusRed  = 1 << 4
	ledStatusGrn  = 1 << 5
)

func (l Leds) with(mask byte, on bool) Leds {
	if on {
		l.bits |= mask
	} else {
		l.bits &^= mask
	}
	return l
}

// WithDirtDetect switches the dirt detect LED.
func (l Leds) WithDirtDetect(on bool) Leds { return l.with(ledDirtDetect, on) }

// WithMax switches the max LED.
func (l Leds) WithMax(on bool) Leds { return l.with(ledMax, on) }

// WithClean switches the clean LED.
func (l Leds) WithClean(on bool) Leds { return l.with(ledClean, on) }

// WithSpot switches the spot LED.
func (l Leds) WithSpot(on bool) Leds { return l.with(ledSpot, on) }

// WithStatus sets the bicolour status LED: red, green, both (amber) or
// neither.
func (l Leds) WithStatus(red, green bool) Leds {
	return l.with(ledStatusRed, red).with(ledStatusGrn, green)
}

// WithPower sets the power LED colour (0 green to 255 red) and intensity.
func (l Leds) WithPower(color, intensity byte) Leds {
	l.powerColor = color
	l.powerIntensity = intensity
	return l
}

// CommitLeds encodes the LED value and sends it. This is the only point
// at which LED state reaches the transport.
func (c *Codec) CommitLeds(l Leds) error {
	return c.command(opLeds, l.bits, l.powerColor, l.powerIntensity)
}
