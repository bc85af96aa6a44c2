package loader

import "github.com/tmarceau/fable/types"

// SampleDocument returns the built-in demonstration world: four rooms,
// a locked treasure room behind the silver key, a talkative old man,
// and a riddle worth a coin. It is passed into EnsureFile by the entry
// point; nothing in the core consumes it directly.
func SampleDocument() *Document {
	return &Document{
		Rooms: map[string]*types.Room{
			"Hall": {
				Description: "You are standing in a long hall. A door leads east to the Kitchen and south to the Garden.",
				Items:       []string{"map"},
				Exits: map[string]*types.Exit{
					"east":  {To: "Kitchen"},
					"south": {To: "Garden"},
				},
				Tasks: []string{"Find a way into the treasure room"},
			},
			"Kitchen": {
				Description: "A tidy kitchen with a faint smell of spice. There's a locked door to the north.",
				Items:       []string{"knife", "silver_key"},
				Exits: map[string]*types.Exit{
					"west":  {To: "Hall"},
					"north": {To: "Treasure Room", Locked: true, Key: "silver_key"},
				},
			},
			"Garden": {
				Description: "A small garden. The flowers are in bloom.",
				Items:       []string{"flower"},
				Exits: map[string]*types.Exit{
					"north": {To: "Hall"},
				},
				NPCs: map[string]*types.NPC{
					"old_man": {
						Name: "Old Man",
						Dialogue: []string{
							"Stay awhile and listen...",
							"The treasure lies behind the locked door.",
						},
					},
				},
				Riddle: &types.Riddle{
					Question: "What has keys but can't open locks?",
					Answer:   "piano",
					Reward:   "golden_coin",
				},
			},
			"Treasure Room": {
				Description: "You've found the treasure room! A glittering chest sits in the centre.",
				Items:       []string{"treasure"},
				Exits: map[string]*types.Exit{
					"south": {To: "Kitchen"},
				},
			},
		},
		Start: "Hall",
		Win:   &types.Condition{InventoryContains: []string{"treasure"}},
		Metadata: types.Metadata{
			Title:       "The Locked Door",
			Author:      "fable",
			Description: "A small sample adventure. Edit the world file to make your own game.",
		},
		Tasks: types.TaskList{
			MainQuest:  "Claim the treasure from the locked room",
			SideQuests: []string{"Hear the old man out", "Solve the garden riddle"},
		},
	}
}
