package world

// Built-in world content. The same content ships as JSON under data/ for
// authoring and validation; the compiled-in copy keeps the binaries
// self-contained when no data dir is configured.

// DefaultItems returns the built-in item definitions.
func DefaultItems() []ItemDef {
	return []ItemDef{
		{
			ID:          "torch",
			Name:        "torch",
			Description: "A crude torch that casts a flickering light.",
			Slot:        SlotLight,
		},
		{
			ID:          "broadsword",
			Name:        "broadsword",
			Description: "A Cimmerian broadsword, heavy and sharp.",
			Slot:        SlotWeapon,
		},
		{
			ID:          "brass_key",
			Name:        "brass key",
			Description: "An ancient brass key, green with age.",
		},
		{
			ID:          "jewel",
			Name:        "jewel of the serpent",
			Description: "A blood-red jewel carved in the shape of a serpent.",
		},
		{
			ID:          "iron_key",
			Name:        "iron key",
			Description: "A cold iron key, stained with dried blood.",
		},
		{
			ID:          "crown",
			Name:        "crown of the serpent king",
			Description: "A crown of black iron and rubies, worn by the serpent cult's high priest.",
		},
	}
}

// DefaultMaps returns the built-in maps in progression order.
func DefaultMaps() []MapDef {
	return []MapDef{
		{
			ID:       "tower",
			Name:     "The Ruined Tower",
			Sequence: 1,
			Rooms: []Room{
				{
					ID:          "field",
					Name:        "West of the Ruined Tower",
					Description: "You stand in a windswept field. To the east, a crumbling tower rises against the sky. The grass is brown and dead. Something stirs in the shadows.",
					Exits:       map[string]string{East: "tower_entrance"},
				},
				{
					ID:          "tower_entrance",
					Name:        "Tower Entrance",
					Description: "The door of the tower hangs open. Dust and bones litter the threshold. Stairs lead down into darkness. A rusty sconce holds an unlit torch.",
					Exits:       map[string]string{West: "field", Down: "hall"},
					Items:       []string{"torch", "broadsword"},
				},
				{
					ID:          "hall",
					Name:        "Hall of Serpents",
					Description: "A long hall. Serpents are carved into the walls, their eyes seeming to follow you. To the north, a heavy door bars the way. To the east, an antechamber. To the south, the stairs lead back up.",
					Exits:       map[string]string{South: "tower_entrance", North: "sanctum", East: "antechamber"},
					Dark:        true,
				},
				{
					ID:          "antechamber",
					Name:        "Antechamber",
					Description: "A small room. Skeletons in rusted mail lie against the walls. A brass key glints on the floor.",
					Exits:       map[string]string{West: "hall"},
					Items:       []string{"brass_key"},
					Dark:        true,
				},
				{
					ID:          "sanctum",
					Name:        "The Sanctum",
					Description: "A circular chamber. An altar of black stone stands in the center. Upon it rests a blood-red jewel. The walls bear runes that make your head ache to look upon.",
					Exits:       map[string]string{South: "hall"},
					Items:       []string{"jewel"},
				},
			},
			StartRoomID: "field",
			Win:         WinCondition{RoomID: "sanctum", ItemID: "jewel"},
			MaxScore:    12,
			LockedExits: []LockedExit{
				{
					FromRoomID: "hall",
					ToRoomID:   "sanctum",
					Direction:  North,
					KeyID:      "brass_key",
					Flag:       "sanctum_door_open",
				},
			},
		},
		{
			ID:       "vault",
			Name:     "The Serpent Vault",
			Sequence: 2,
			Rooms: []Room{
				{
					ID:          "passage",
					Name:        "Dark Passage",
					Description: "A narrow passage hewn from rock. To the north, a heavy iron door bars the way. A rusty sconce holds an unlit torch. An iron key hangs on a hook.",
					Exits:       map[string]string{North: "chamber"},
					Items:       []string{"torch", "iron_key"},
				},
				{
					ID:          "chamber",
					Name:        "Chamber of Echoes",
					Description: "A vast chamber. Your footsteps echo. Bones and broken weapons litter the floor. To the south, the passage back. To the west, an archway leads deeper.",
					Exits:       map[string]string{South: "passage", West: "altar_room"},
					Dark:        true,
				},
				{
					ID:          "altar_room",
					Name:        "Altar of the Serpent",
					Description: "A smaller chamber. An altar of obsidian gleams in the torchlight. Upon it rests a crown of black iron and rubies—the crown of the serpent king.",
					Exits:       map[string]string{East: "chamber"},
					Items:       []string{"crown"},
					Dark:        true,
				},
			},
			StartRoomID: "passage",
			Win:         WinCondition{RoomID: "altar_room", ItemID: "crown"},
			MaxScore:    14,
			LockedExits: []LockedExit{
				{
					FromRoomID: "passage",
					ToRoomID:   "chamber",
					Direction:  North,
					KeyID:      "iron_key",
					Flag:       "vault_door_open",
				},
			},
		},
	}
}

// Default returns the registry of built-in content.
func Default() *Registry {
	r, err := NewRegistry(DefaultItems(), DefaultMaps())
	if err != nil {
		// Built-in content is fixed at compile time; this cannot fail.
		panic(err)
	}
	return r
}
