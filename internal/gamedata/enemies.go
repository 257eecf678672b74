package gamedata

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID    string   `json:"id"`    // Unique identifier (e.g., "ghoul")
	Name  string   `json:"name"`  // Display name (e.g., "Ghoul")
	Boss  bool     `json:"boss"`  // Boss-class enemies are flagged in displays
	Stats StatsDef `json:"stats"` // Base stat block
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// MustLoadEnemies loads enemy definitions, panicking on error.
func MustLoadEnemies() []EnemyDef {
	enemies, err := LoadEnemies()
	if err != nil {
		panic(err)
	}
	return enemies
}
