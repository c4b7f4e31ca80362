package component

import "github.com/tanema/gween"

// Pickup is a collectible that bobs in place until the player touches it.
type Pickup struct {
	Kind         string
	BaseY        float64
	BobAmplitude float64
	BobSeconds   float64

	Tween   *gween.Sequence
	Started bool
}

var PickupComponent = NewComponent[Pickup]()

type Score struct {
	Collected int
}

var ScoreComponent = NewComponent[Score]()
