package config

// Fixed layout constants. These are tied to the drawing code rather than
// the tuning file.
const (
	// MaxTrainColors is the size of the train color table.
	MaxTrainColors = 7

	// TrackY is the vertical center of the train track.
	TrackY = 240.0
	// TrackHeight is the visible bed height of the track.
	TrackHeight = 40.0
	// TieSpacing is the horizontal distance between track ties.
	TieSpacing = 30.0
	// RailThickness is the drawn thickness of each rail.
	RailThickness = 5.0

	// SelectorY is the vertical center of the color selector row.
	SelectorY = 420.0
	// SelectorSize is the side length of a selector swatch.
	SelectorSize = 50.0
	// SelectorSpacing is the horizontal distance between swatch centers.
	SelectorSpacing = 70.0

	// ButtonWidth and ButtonHeight are the standard menu button size.
	ButtonWidth  = 200.0
	ButtonHeight = 50.0

	// HUDMargin is the screen-edge padding for score and level text.
	HUDMargin = 20.0
)
