package audio

// Effect names a short feedback sound.
type Effect string

const (
	EffectJump     Effect = "jump"
	EffectShoot    Effect = "shoot"
	EffectHit      Effect = "hit"
	EffectCollect  Effect = "collect"
	EffectEnemyDie Effect = "enemy_die"
)

// Effects lists every effect in a stable order.
func Effects() []Effect {
	return []Effect{EffectJump, EffectShoot, EffectHit, EffectCollect, EffectEnemyDie}
}

// ParseEffect maps an event name onto an effect.
func ParseEffect(name string) (Effect, bool) {
	for _, e := range Effects() {
		if string(e) == name {
			return e, true
		}
	}
	return "", false
}
