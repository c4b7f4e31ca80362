package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// WallTag marks solid level geometry that stops bullets.
type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()
