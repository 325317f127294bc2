package component

// Trap closes for good on its first capture.
type Trap struct {
	Open bool
}

var TrapComponent = NewComponent[Trap]()
