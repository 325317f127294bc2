package tuning

import (
	"embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var TuningFS embed.FS

const File = "tuning.yaml"

type Tuning struct {
	Player PlayerTuning `yaml:"player"`
	Arrow  ArrowTuning  `yaml:"arrow"`
	Trap   TrapTuning   `yaml:"trap"`
	Items  ItemTuning   `yaml:"items"`
	Enemy  EnemyTuning  `yaml:"enemy"`
}

type PlayerTuning struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	StartHealth      int     `yaml:"start_health"`
	MaxHealth        int     `yaml:"max_health"`
	Speed            float64 `yaml:"speed"`
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"`
	InvincibleFrames int     `yaml:"invincible_frames"`
	ShootAnimFrames  int     `yaml:"shoot_anim_frames"`
	ShootLockFrames  int     `yaml:"shoot_lock_frames"`
	TrapLockFrames   int     `yaml:"trap_lock_frames"`
	CheckpointFrames int     `yaml:"checkpoint_frames"`
	FallMargin       float64 `yaml:"fall_margin"`
	RespawnLift      float64 `yaml:"respawn_lift"`
	KnockbackX       float64 `yaml:"knockback_x"`
	KnockbackY       float64 `yaml:"knockback_y"`
	KnockbackFrames  int     `yaml:"knockback_frames"`
	KnockbackDecay   float64 `yaml:"knockback_decay"`
}

type ArrowTuning struct {
	Speed         float64 `yaml:"speed"`
	Lift          float64 `yaml:"lift"`
	AimSpeedX     float64 `yaml:"aim_speed_x"`
	AimSpeedY     float64 `yaml:"aim_speed_y"`
	StraightSpeed float64 `yaml:"straight_speed"`
	Gravity       float64 `yaml:"gravity"`
	TrailEvery    int     `yaml:"trail_every"`
}

type TrapTuning struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	CaptureFrames int     `yaml:"capture_frames"`
}

type ItemTuning struct {
	Size      float64 `yaml:"size"`
	HeartHeal int     `yaml:"heart_heal"`
	AmmoBonus int     `yaml:"ammo_bonus"`
}

type EnemyTuning struct {
	BaseSize     float64        `yaml:"base_size"`
	SizePerLevel float64        `yaml:"size_per_level"`
	BaseHP       int            `yaml:"base_hp"`
	HPPerLevel   int            `yaml:"hp_per_level"`
	FlashFrames  int            `yaml:"flash_frames"`
	Octopus      OctopusTuning  `yaml:"octopus"`
	Spider       SpiderTuning   `yaml:"spider"`
	Mosquito     MosquitoTuning `yaml:"mosquito"`
}

type OctopusTuning struct {
	PatrolSpeed float64 `yaml:"patrol_speed"`
	ChaseSpeed  float64 `yaml:"chase_speed"`
	ChaseRange  float64 `yaml:"chase_range"`
	ChaseBand   float64 `yaml:"chase_band"`
}

type SpiderTuning struct {
	TriggerBand  float64 `yaml:"trigger_band"`
	DropSpeed    float64 `yaml:"drop_speed"`
	ClimbSpeed   float64 `yaml:"climb_speed"`
	DropDistance float64 `yaml:"drop_distance"`
}

type MosquitoTuning struct {
	Ease         float64 `yaml:"ease"`
	HoverOffset  float64 `yaml:"hover_offset"`
	BobRate      float64 `yaml:"bob_rate"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
}

// SizeScale is the multiplicative enemy size factor for a zero-based level index.
func (e EnemyTuning) SizeScale(levelIndex int) float64 {
	return 1 + float64(levelIndex)*e.SizePerLevel
}

// HP is the starting (and maximum) enemy hit points for a zero-based level index.
func (e EnemyTuning) HP(levelIndex int) int {
	return e.BaseHP + levelIndex*e.HPPerLevel
}

var (
	embeddedOnce sync.Once
	embedded     Tuning
)

// Default returns a copy of the embedded tuning.
func Default() *Tuning {
	embeddedOnce.Do(func() {
		data, err := TuningFS.ReadFile(File)
		if err != nil {
			log.Fatalf("tuning: read embedded %s: %v", File, err)
		}
		if err := yaml.Unmarshal(data, &embedded); err != nil {
			log.Fatalf("tuning: unmarshal embedded %s: %v", File, err)
		}
	})
	t := embedded
	return &t
}

// Parse overlays data on top of the embedded defaults, so a partial file
// only needs the keys it changes.
func Parse(data []byte) (*Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	if t.Player.MaxHealth <= 0 {
		return nil, fmt.Errorf("tuning: max_health must be positive")
	}
	if t.Player.StartHealth <= 0 || t.Player.StartHealth > t.Player.MaxHealth {
		return nil, fmt.Errorf("tuning: start_health %d outside (0, %d]", t.Player.StartHealth, t.Player.MaxHealth)
	}
	return t, nil
}

// Load prefers ./tuning/tuning.yaml on disk and falls back to the embedded copy.
func Load() (*Tuning, error) {
	data, err := os.ReadFile(filepath.Join("tuning", File))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("tuning: read %s: %w", File, err)
	}
	return Parse(data)
}
