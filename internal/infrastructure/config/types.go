package config

// TuningConfig is the root config for tuning.json
type TuningConfig struct {
	Display  DisplayConfig  `json:"display"`
	Player   PlayerConfig   `json:"player"`
	Weapon   WeaponConfig   `json:"weapon"`
	Door     DoorConfig     `json:"door"`
	Painting PaintingConfig `json:"painting"`
	Enemy    EnemyConfig    `json:"enemy"`
	Effects  EffectsConfig  `json:"effects"`
	Hitscan  HitscanConfig  `json:"hitscan"`
	Level    LevelScale     `json:"level"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        int     `json:"scale"`
	TPS          int     `json:"tps"`
	MapScale     float64 `json:"mapScale"` // debug map pixels per world unit
	// MaxDeltaTime caps the tick delta in seconds. 0 leaves it unclamped.
	MaxDeltaTime float64 `json:"maxDeltaTime"`
}

type PlayerConfig struct {
	TurnSpeed  float32 `json:"turnSpeed"` // radians per second
	MoveSpeed  float32 `json:"moveSpeed"`
	StrideRate float32 `json:"strideRate"`
	DoorReach  float32 `json:"doorReach"`
	HalfWidth  float32 `json:"halfWidth"`
	HalfHeight float32 `json:"halfHeight"`
}

type WeaponConfig struct {
	AnimDuration float32 `json:"animDuration"`
	FrameTime    float32 `json:"frameTime"`
	FireFrame    int     `json:"fireFrame"`
	Jitter       float32 `json:"jitter"` // max angular error either way, radians
	MuzzleHeight float32 `json:"muzzleHeight"`
}

type DoorConfig struct {
	OpenSpeed  float32 `json:"openSpeed"`
	OpenAmount float32 `json:"openAmount"`
	HalfWidth  float32 `json:"halfWidth"`
	HalfHeight float32 `json:"halfHeight"`
	HalfDepth  float32 `json:"halfDepth"`
}

type PaintingConfig struct {
	Stiffness  float32 `json:"stiffness"`
	HalfWidth  float32 `json:"halfWidth"`
	HalfHeight float32 `json:"halfHeight"`
	HalfDepth  float32 `json:"halfDepth"`
}

type EnemyConfig struct {
	Health     int     `json:"health"`
	Speed      float32 `json:"speed"`
	HalfWidth  float32 `json:"halfWidth"`
	HalfHeight float32 `json:"halfHeight"`

	SightDistance     float32 `json:"sightDistance"`
	ShootDistance     float32 `json:"shootDistance"`
	LoseSightDistance float32 `json:"loseSightDistance"`

	IdleTime     float32 `json:"idleTime"`
	WalkTime     float32 `json:"walkTime"`
	ReactionTime float32 `json:"reactionTime"`
	SpinUpTime   float32 `json:"spinUpTime"`
	HitReactTime float32 `json:"hitReactTime"`
	WanderAngle  float32 `json:"wanderAngle"` // max heading change when starting a walk

	ChaseSpeedScale float32 `json:"chaseSpeedScale"`
	WalkFrameTime   float32 `json:"walkFrameTime"`
	DeathFrameTime  float32 `json:"deathFrameTime"`
	ShootFrameTime  float32 `json:"shootFrameTime"`
}

type EffectsConfig struct {
	MaxImpacts    int     `json:"maxImpacts"`
	MaxTracers    int     `json:"maxTracers"`
	ImpactLife    float32 `json:"impactLife"`
	TracerLife    float32 `json:"tracerLife"`
	TracerSpeed   float32 `json:"tracerSpeed"`
	TracerYOffset float32 `json:"tracerYOffset"`
}

type HitscanConfig struct {
	MaxCandidates int `json:"maxCandidates"`
	MaxHits       int `json:"maxHits"`
}

type LevelScale struct {
	ScaleFactor float32 `json:"scaleFactor"` // world units per grid cell
}

// DefaultTuning returns the stock gameplay values. Loaded files are decoded
// on top of it, so they only need the fields they change.
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        1,
			TPS:          60,
			MapScale:     12,
		},
		Player: PlayerConfig{
			TurnSpeed:  2.5,
			MoveSpeed:  6,
			StrideRate: 10,
			DoorReach:  2.5,
			HalfWidth:  0.5,
			HalfHeight: 1,
		},
		Weapon: WeaponConfig{
			AnimDuration: 0.1,
			FrameTime:    0.02,
			FireFrame:    3,
			Jitter:       0.01,
		},
		Door: DoorConfig{
			OpenSpeed:  1.5,
			OpenAmount: 1.5,
			HalfWidth:  1,
			HalfHeight: 0.5,
			HalfDepth:  0.2,
		},
		Painting: PaintingConfig{
			Stiffness:  20,
			HalfWidth:  1,
			HalfHeight: 0.3,
			HalfDepth:  0.3,
		},
		Enemy: EnemyConfig{
			Health:            1,
			Speed:             2,
			HalfWidth:         0.3,
			HalfHeight:        0.5,
			SightDistance:     16,
			ShootDistance:     6,
			LoseSightDistance: 24,
			IdleTime:          2,
			WalkTime:          3,
			ReactionTime:      0.5,
			SpinUpTime:        0.3,
			HitReactTime:      1.5,
			WanderAngle:       1.5707964,
			ChaseSpeedScale:   1.5,
			WalkFrameTime:     0.15,
			DeathFrameTime:    0.12,
			ShootFrameTime:    0.1,
		},
		Effects: EffectsConfig{
			MaxImpacts:    64,
			MaxTracers:    32,
			ImpactLife:    1.5,
			TracerLife:    1,
			TracerSpeed:   60,
			TracerYOffset: -0.2,
		},
		Hitscan: HitscanConfig{
			MaxCandidates: 1024,
			MaxHits:       32,
		},
		Level: LevelScale{
			ScaleFactor: 2,
		},
	}
}
