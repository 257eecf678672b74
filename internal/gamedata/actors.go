package gamedata

// ActorDef defines a playable party actor loaded from JSON.
type ActorDef struct {
	ID       string   `json:"id"`       // Unique identifier (e.g., "fencer")
	Name     string   `json:"name"`     // Display name (e.g., "Fencer")
	Stats    StatsDef `json:"stats"`    // Base stat block
	WeaponID int      `json:"weaponId"` // Equipped weapon, sub-id for attack speed factors
	SkillIDs []int    `json:"skillIds"` // Skills available to the action layer
}

// ActorsFile represents the structure of actors.json.
type ActorsFile struct {
	Actors []ActorDef `json:"actors"`
}

// LoadActors loads actor definitions from the embedded actors.json file.
func LoadActors() ([]ActorDef, error) {
	file, err := load[ActorsFile]("actors.json")
	if err != nil {
		return nil, err
	}
	return file.Actors, nil
}

// MustLoadActors loads actor definitions, panicking on error.
func MustLoadActors() []ActorDef {
	actors, err := LoadActors()
	if err != nil {
		panic(err)
	}
	return actors
}
