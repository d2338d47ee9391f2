package rng

// Fixed seeds for the structural streams. Spines keep their look when only
// placement or flower seeds change.
const (
	BodySpineSeed int32 = 99
	ArmSpineSeed  int32 = 199
)

// Streams holds the four independent streams of one generation pass.
type Streams struct {
	BodySpines   *Stream
	ArmSpines    *Stream
	Flowers      *Stream
	ArmPlacement *Stream
}

// NewStreams seeds the structural streams from the fixed internal seeds and the
// placement streams from the supplied flower and arm placement seeds.
func NewStreams(flowerSeed, placementSeed int32) *Streams {
	return &Streams{
		BodySpines:   New(BodySpineSeed),
		ArmSpines:    New(ArmSpineSeed),
		Flowers:      New(flowerSeed),
		ArmPlacement: New(placementSeed),
	}
}
