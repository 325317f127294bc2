package component

type PickupKind int

const (
	PickupHeart PickupKind = iota
	PickupAmmo
)

func (k PickupKind) String() string {
	if k == PickupAmmo {
		return "ammo"
	}
	return "heart"
}

// Pickup is collected at most once. FloatOffset is the bob phase in radians.
type Pickup struct {
	Kind        PickupKind
	Collected   bool
	FloatOffset float64
}

var PickupComponent = NewComponent[Pickup]()
