package component

// Input is the logical key set for one frame. Up doubles as aim-up; the
// keyboard also maps it onto Jump.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool
	Shoot bool
	Trap  bool
}

var InputComponent = NewComponent[Input]()
