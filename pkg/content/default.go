package content

func strptr(s string) *string { return &s }

// Default is the built-in demo world: two rooms, some scenery, and a few
// portable things including a nested container. Used when no world file
// is configured; data/world.yaml carries the same world as a file.
func Default() *Definition {
	return &Definition{
		Rooms: []RoomDef{
			{
				Name:        "The Living Room",
				Description: "This is the living room.",
				Contents: []ThingDef{
					{
						Name:        "plant",
						Article:     "a",
						Description: "It has seen better days.",
						Environment: strptr("Over in the corner there is a plant."),
					},
					{
						Name:        "picture",
						Article:     "a",
						Description: "A boat on a lake.",
						Environment: strptr("There is a picture on the wall."),
					},
					{
						Name:        "window",
						Article:     "a",
						Description: "The sun is shining outside.",
						Environment: strptr("On the west side of the room there is a window."),
					},
					{
						Name:        "rug",
						Article:     "a",
						Description: "An antique oriental rug.",
						Environment: strptr("There is a rug on the floor."),
					},
					{
						Name:        "book",
						Article:     "a",
						Description: "'Alice's Adventures in Wonderland' by Lewis Carroll.",
						Inscription: "Alice was beginning to get very tired of sitting by her sister on the bank, and of having nothing to do: once or twice she had peeped into the book her sister was reading, but it had no pictures or conversations in it, 'and what is the use of a book,' thought Alice 'without pictures or conversations?'",
					},
					{
						Name:        "box",
						Article:     "a",
						Description: "A box.",
						Container:   true,
						Contents: []ThingDef{
							{
								Name:        "die",
								Article:     "a",
								Description: "A small die.",
							},
						},
					},
					{
						Name:        "marble",
						Article:     "a",
						Description: "A white marble.",
					},
				},
			},
			{
				Name:        "The Garden",
				Description: "This is the garden.",
				Contents: []ThingDef{
					{
						Name:        "tree",
						Description: "It's an apple tree.",
						Environment: strptr("In the middle of the garden is a large tree."),
					},
					{
						Name:        "shovel",
						Article:     "a",
						Description: "A small chrome shovel.",
					},
				},
			},
		},
		Links: []LinkDef{
			{From: "The Living Room", Direction: "west", To: "The Garden"},
		},
		Player: PlayerDef{
			Name:        "Player",
			Description: "This is you.",
			Start:       "The Living Room",
		},
	}
}
