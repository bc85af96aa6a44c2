package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/tmarceau/fable/types"
)

// loadLua executes a world script in a sandboxed Lua VM and collects
// the declared rooms into a Document. The DSL:
//
//	Game { title = "...", author = "...", start = "Hall",
//	       main_quest = "...", side_quests = {"..."} }
//	Room "Hall" {
//	    description = "...",
//	    items = {"map"},
//	    exits = { east = { to = "Kitchen", locked = true, key = "silver_key" } },
//	    npcs = { old_man = { name = "Old Man", dialogue = {"...", "..."} } },
//	    riddle = { question = "...", answer = "...", reward = "..." },
//	    tasks = {"..."},
//	}
//	WinCondition { inventory_contains = {"treasure"} }
//	LoseCondition { in_room_equals = "Pit" }
//
// The VM is discarded after loading; scripts declare data, they don't
// run game logic.
func loadLua(path string) (*Document, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	doc := &Document{Rooms: map[string]*types.Room{}}
	registerWorldAPI(L, doc)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing world script %s: %w", path, err)
	}
	return doc, nil
}

// openSafeLibs opens only the safe subset of the Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that would let a world script touch the host.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}

func registerWorldAPI(L *lua.LState, doc *Document) {
	// Game { ... }: metadata, start room, quest summary.
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		doc.Metadata.Title = luaString(tbl, "title")
		doc.Metadata.Author = luaString(tbl, "author")
		doc.Metadata.Description = luaString(tbl, "description")
		doc.Start = luaString(tbl, "start")
		doc.Tasks.MainQuest = luaString(tbl, "main_quest")
		doc.Tasks.SideQuests = luaStrings(tbl.RawGetString("side_quests"))
		return 0
	}))

	// Room "id" { ... } is curried: Room("id") returns a function taking
	// the definition table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			doc.Rooms[id] = roomFromTable(tbl)
			return 0
		}))
		return 1
	}))

	L.SetGlobal("WinCondition", L.NewFunction(func(L *lua.LState) int {
		doc.Win = conditionFromTable(L.CheckTable(1))
		return 0
	}))

	L.SetGlobal("LoseCondition", L.NewFunction(func(L *lua.LState) int {
		doc.Lose = conditionFromTable(L.CheckTable(1))
		return 0
	}))
}

func roomFromTable(tbl *lua.LTable) *types.Room {
	room := &types.Room{
		Description: luaString(tbl, "description"),
		Items:       luaStrings(tbl.RawGetString("items")),
		Exits:       map[string]*types.Exit{},
		NPCs:        map[string]*types.NPC{},
		Tasks:       luaStrings(tbl.RawGetString("tasks")),
	}

	if exits, ok := tbl.RawGetString("exits").(*lua.LTable); ok {
		exits.ForEach(func(k, v lua.LValue) {
			dir, ok := k.(lua.LString)
			if !ok {
				return
			}
			exitTbl, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			room.Exits[string(dir)] = &types.Exit{
				To:     luaString(exitTbl, "to"),
				Locked: luaBool(exitTbl, "locked"),
				Key:    luaString(exitTbl, "key"),
			}
		})
	}

	if npcs, ok := tbl.RawGetString("npcs").(*lua.LTable); ok {
		npcs.ForEach(func(k, v lua.LValue) {
			id, ok := k.(lua.LString)
			if !ok {
				return
			}
			npcTbl, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			room.NPCs[string(id)] = &types.NPC{
				Name:     luaString(npcTbl, "name"),
				Dialogue: luaStrings(npcTbl.RawGetString("dialogue")),
			}
		})
	}

	if riddle, ok := tbl.RawGetString("riddle").(*lua.LTable); ok {
		room.Riddle = &types.Riddle{
			Question: luaString(riddle, "question"),
			Answer:   luaString(riddle, "answer"),
			Reward:   luaString(riddle, "reward"),
		}
	}

	return room
}

func conditionFromTable(tbl *lua.LTable) *types.Condition {
	cond := &types.Condition{
		InventoryContains: luaStrings(tbl.RawGetString("inventory_contains")),
		InventoryHasAny:   luaStrings(tbl.RawGetString("inventory_has_any")),
		InRoomEquals:      luaString(tbl, "in_room_equals"),
		HasSolvedRiddle:   luaBool(tbl, "has_solved_riddle"),
	}
	if counts, ok := tbl.RawGetString("inventory_count").(*lua.LTable); ok {
		cond.InventoryCount = map[string]int{}
		counts.ForEach(func(k, v lua.LValue) {
			item, ok := k.(lua.LString)
			if !ok {
				return
			}
			if n, ok := v.(lua.LNumber); ok {
				cond.InventoryCount[string(item)] = int(n)
			}
		})
	}
	return cond
}

func luaString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func luaBool(tbl *lua.LTable, key string) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return false
}

func luaStrings(v lua.LValue) []string {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	tbl.ForEach(func(_, entry lua.LValue) {
		if s, ok := entry.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}
