package gamedata

import "fmt"

// StatsDef is a battler's base stat block, covering the full charge-formula
// vocabulary. Current HP/SP start at the maximums.
type StatsDef struct {
	MaxHP int `json:"maxhp"`
	MaxSP int `json:"maxsp"`
	Str   int `json:"str"`
	Dex   int `json:"dex"`
	Agi   int `json:"agi"`
	Int   int `json:"int"`
	Atk   int `json:"atk"`
	PDef  int `json:"pdef"`
	MDef  int `json:"mdef"`
	Eva   int `json:"eva"`
}

// Validate rejects stat blocks a battle cannot run on.
func (s *StatsDef) Validate() error {
	if s.MaxHP <= 0 {
		return fmt.Errorf("maxhp must be positive, got %d", s.MaxHP)
	}
	if s.MaxSP < 0 {
		return fmt.Errorf("maxsp must not be negative, got %d", s.MaxSP)
	}
	for name, v := range map[string]int{
		"str": s.Str, "dex": s.Dex, "agi": s.Agi, "int": s.Int,
		"atk": s.Atk, "pdef": s.PDef, "mdef": s.MDef, "eva": s.Eva,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, v)
		}
	}
	return nil
}
