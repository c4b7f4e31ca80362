package component

type Bullet struct {
	VelocityX float64
	VelocityY float64
	Damage    int
	Lifetime  Timer
}

var BulletComponent = NewComponent[Bullet]()
