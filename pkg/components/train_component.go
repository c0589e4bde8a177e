package components

import "image/color"

// TrainColor identifies one of the palette colors a train can carry.
type TrainColor int

const (
	TrainRed TrainColor = iota
	TrainBlue
	TrainGreen
	TrainYellow
	TrainPurple
	TrainOrange
	TrainCyan
	trainColorCount
)

// NumTrainColors is the size of the train color table.
const NumTrainColors = int(trainColorCount)

var trainColorNames = [...]string{
	TrainRed:    "Red",
	TrainBlue:   "Blue",
	TrainGreen:  "Green",
	TrainYellow: "Yellow",
	TrainPurple: "Purple",
	TrainOrange: "Orange",
	TrainCyan:   "Cyan",
}

var trainColorValues = [...]color.RGBA{
	TrainRed:    {234, 67, 53, 255},
	TrainBlue:   {66, 133, 244, 255},
	TrainGreen:  {52, 168, 83, 255},
	TrainYellow: {251, 188, 4, 255},
	TrainPurple: {156, 39, 176, 255},
	TrainOrange: {255, 109, 0, 255},
	TrainCyan:   {0, 188, 212, 255},
}

// String returns the display name of the color.
func (c TrainColor) String() string {
	if c < 0 || int(c) >= NumTrainColors {
		return "Unknown"
	}
	return trainColorNames[c]
}

// RGBA returns the fill color used to draw trains and swatches of this
// color.
func (c TrainColor) RGBA() color.RGBA {
	if c < 0 || int(c) >= NumTrainColors {
		return color.RGBA{128, 128, 128, 255}
	}
	return trainColorValues[c]
}

// TrainComponent marks an entity as a train waiting on the track or
// departing after a match.
type TrainComponent struct {
	Color TrainColor
	// Slot is the queue index, 0 being the leftmost waiting train.
	Slot int
	// TargetX is the slot position the train glides toward.
	TargetX float64
	// GlideFrom and GlideProgress drive the eased slide into TargetX.
	// GlideProgress >= 1 means the train is settled.
	GlideFrom     float64
	GlideProgress float64
	// Departing is set once the train is matched; it then drives off the
	// left edge of the screen.
	Departing bool
	// Speed is the departure speed in pixels per second.
	Speed float64
}
