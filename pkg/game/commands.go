package game

import (
	"fmt"
	"strings"

	"github.com/willowmere/gofiction/pkg/mecs"
	"github.com/willowmere/gofiction/pkg/world"
)

// Handler is the signature for game command implementations. A handler
// reads and mutates world components directly and returns exactly one
// response string.
type Handler func(g *Game, actor mecs.Entity, args []string) string

// Command represents a registered game command. Abbreviations are extra
// table keys pointing at the same Command.
type Command struct {
	Name    string
	Handler Handler
}

// UnknownCommand is the response for input whose first token is not in
// the command table.
const UnknownCommand = "You don't know how to do this, but you can always ask for 'help'."

// InitCommands registers all available game commands.
func InitCommands() map[string]*Command {
	cmds := make(map[string]*Command)

	register := func(name string, handler Handler) {
		cmds[name] = &Command{Name: name, Handler: handler}
	}

	// Information
	register("help", cmdHelp)
	register("look", cmdLook)
	register("l", cmdLook)
	register("examine", cmdExamine)
	register("x", cmdExamine)
	register("read", cmdRead)

	// Movement: "go <dir>", plus every direction and its short form as a
	// command of its own.
	register("go", cmdGo)
	goDirection := func(direction string) Handler {
		return func(g *Game, actor mecs.Entity, args []string) string {
			return cmdGo(g, actor, append([]string{direction}, args...))
		}
	}
	for _, dir := range world.Directions {
		register(dir, goDirection(dir))
	}
	register("n", goDirection("north"))
	register("s", goDirection("south"))
	register("w", goDirection("west"))
	register("e", goDirection("east"))
	register("nw", goDirection("northwest"))
	register("ne", goDirection("northeast"))
	register("sw", goDirection("southwest"))
	register("se", goDirection("southeast"))
	register("u", goDirection("up"))
	register("d", goDirection("down"))

	// Inventory
	register("inventory", cmdInventory)
	register("i", cmdInventory)
	register("take", cmdTake)
	register("drop", cmdDrop)

	return cmds
}

// helpOrder fixes the listing order of 'help'; Go map iteration is
// randomized, so the catalogue order is kept explicitly.
var helpOrder = []string{
	"help", "look", "examine", "go", "inventory", "take", "drop", "read",
}

// helpText documents each canonical command. Only canonical names appear
// here; 'help x' does not resolve abbreviations.
var helpText = map[string]string{
	"help":      "Get help for a specific command with 'help <command>'.",
	"look":      "You can look at your environment with 'look' or at specific things with 'look <thing>'. The shorthand for 'look' is 'l'.",
	"examine":   "You can examine things with 'examine <thing>'. This is the same as 'look <thing>'. The shorthand for 'examine' is 'x'.",
	"go":        "You can move through the world with 'go <direction>' where north, south, west, east, northwest, northeast, southwest, southeast, up, and down are valid directions. Their shorthands are n, s, w, e, nw, ne, sw, se, u, and d. You can also use the direction directly, without writing 'go' explicitly. For instance to go north use 'go north' or 'north' or 'n'.",
	"inventory": "You can view the things that you are carrying with this command. The shorthand is 'i'.",
	"take":      "To add something to your inventory use 'take <thing>'. To take something from a container use 'take <thing> from <container>'.",
	"drop":      "Drop things in your inventory with 'drop <thing>'. To drop something into a container use 'drop <thing> into <container>'.",
	"read":      "You can read a book or some other text with 'read <thing>'.",
}

func cmdHelp(g *Game, actor mecs.Entity, args []string) string {
	if len(args) == 1 {
		text, ok := helpText[args[0]]
		if !ok {
			return "There is no such command. Try 'help' for a list of commands."
		}
		return text
	}

	var sb strings.Builder
	sb.WriteString("Get further help with 'help <command>'.")
	sb.WriteString("\nThe following commands are available:")
	for _, name := range helpOrder {
		sb.WriteString("\n  ")
		sb.WriteString(name)
	}
	return sb.String()
}

func cmdLook(g *Game, actor mecs.Entity, args []string) string {
	sc := g.Scene
	requireComponents(sc, actor, "The player is lacking vital components.",
		world.KindLocation, world.KindContainer)
	location := world.LocationOf(sc, actor).Container

	if len(args) == 0 {
		requireComponents(sc, location, "The player's location is lacking vital components.",
			world.KindName, world.KindDescription, world.KindContainer, world.KindMap)

		members := world.ContainerOf(sc, location).Members

		var things, env []string
		for _, e := range members {
			if envc := world.EnvironmentOf(sc, e); envc != nil {
				if envc.Text != "" {
					env = append(env, envc.Text)
				}
				continue
			}
			if e == actor {
				continue
			}
			if n := world.NameOf(sc, e); n != nil {
				things = append(things, n.Display(false))
			}
		}

		var sb strings.Builder
		sb.WriteString(world.NameOf(sc, location).Display(false))
		sb.WriteString("\n\n")
		sb.WriteString(world.DescriptionOf(sc, location).Text)
		if len(env) > 0 {
			sb.WriteString(" ")
			sb.WriteString(strings.Join(env, " "))
		}
		sb.WriteString("\n\n")
		if len(things) > 0 {
			verb := "is"
			if len(things) > 1 {
				verb = "are"
			}
			fmt.Fprintf(&sb, "Here %s %s.\n\n", verb, world.ListJoin(things, "and"))
		}
		directions := world.MapOf(sc, location).Directions()
		fmt.Fprintf(&sb, "You can go %s.", world.ListJoin(directions, "or"))
		return sb.String()
	}

	name := strings.Join(args, " ")
	scope := concat(world.ContainerOf(sc, location).Members, world.ContainerOf(sc, actor).Members)
	thing, ok := world.FindByName(sc, name, scope)
	if !ok {
		return "There is no such thing."
	}

	desc := world.DescriptionOf(sc, thing)
	contents := world.ContainerOf(sc, thing)
	if desc == nil && contents == nil {
		return fmt.Sprintf("There is nothing special about %s.",
			world.NameOf(sc, thing).Display(true))
	}

	var sb strings.Builder
	if desc != nil {
		sb.WriteString(desc.Text)
	}
	if contents != nil {
		var names []string
		for _, e := range contents.Members {
			if n := world.NameOf(sc, e); n != nil {
				names = append(names, n.Display(false))
			}
		}
		if len(names) > 0 {
			sb.WriteString(" It contains ")
			sb.WriteString(world.ListJoin(names, "and"))
			sb.WriteString(".")
		} else {
			sb.WriteString(" It is empty.")
		}
	}
	return sb.String()
}

func cmdExamine(g *Game, actor mecs.Entity, args []string) string {
	if len(args) == 0 {
		return "You have to name a thing to examine."
	}
	return cmdLook(g, actor, args)
}

func cmdGo(g *Game, actor mecs.Entity, args []string) string {
	if len(args) == 0 {
		return "You have to name a direction to go towards."
	}

	sc := g.Scene
	requireComponents(sc, actor, "The player is lacking vital components.", world.KindLocation)
	location := world.LocationOf(sc, actor).Container
	requireComponents(sc, location, "The player's location is lacking vital components.", world.KindMap)

	direction := world.ExpandDirection(strings.Join(args, " "))
	destination, ok := world.MapOf(sc, location).Edges[direction]
	if !ok {
		return "You cannot go this way."
	}

	world.Move(sc, actor, destination)
	// Entering a room always re-describes it.
	return cmdLook(g, actor, nil)
}

func cmdInventory(g *Game, actor mecs.Entity, args []string) string {
	sc := g.Scene
	requireComponents(sc, actor, "The player is lacking a vital component.", world.KindContainer)

	var names []string
	for _, e := range world.ContainerOf(sc, actor).Members {
		if n := world.NameOf(sc, e); n != nil {
			names = append(names, n.Display(false))
		}
	}
	if len(names) == 0 {
		return "You are carrying nothing."
	}

	var sb strings.Builder
	sb.WriteString("You carry the following things:")
	for _, name := range names {
		sb.WriteString("\n  ")
		sb.WriteString(name)
	}
	return sb.String()
}

func cmdTake(g *Game, actor mecs.Entity, args []string) string {
	if len(args) == 0 {
		return "You have to name a thing to take."
	}

	sc := g.Scene
	requireComponents(sc, actor, "The player is lacking vital components.",
		world.KindLocation, world.KindContainer)
	location := world.LocationOf(sc, actor).Container
	requireComponents(sc, location, "The player's location is lacking a vital component.",
		world.KindContainer)

	name := strings.Join(args, " ")
	// Room contents take precedence over inventory when names collide.
	scope := concat(world.ContainerOf(sc, location).Members, world.ContainerOf(sc, actor).Members)
	if before, after, found := strings.Cut(name, " from "); found {
		name = before
		holder, ok := world.FindByName(sc, after, scope)
		if !ok {
			return "There is no such container."
		}
		inner := world.ContainerOf(sc, holder)
		if inner == nil {
			return "You cannot do that."
		}
		scope = inner.Members
	}
	thing, ok := world.FindByName(sc, name, scope)
	if !ok {
		return "There is no such thing."
	}

	if loc := world.LocationOf(sc, thing); loc != nil && loc.Container == actor {
		return "You already have that."
	}
	if sc.Has(thing, world.KindEnvironment) {
		return "You are unable to take that."
	}

	world.Move(sc, thing, actor)
	return "Taken."
}

func cmdDrop(g *Game, actor mecs.Entity, args []string) string {
	if len(args) == 0 {
		return "You have to name a thing to drop."
	}

	sc := g.Scene
	requireComponents(sc, actor, "The player is lacking vital components.",
		world.KindLocation, world.KindContainer)
	location := world.LocationOf(sc, actor).Container
	requireComponents(sc, location, "The player's location is lacking a vital component.",
		world.KindContainer)

	name := strings.Join(args, " ")
	// Inventory takes precedence over room contents when names collide.
	scope := concat(world.ContainerOf(sc, actor).Members, world.ContainerOf(sc, location).Members)
	container := location
	if before, after, found := strings.Cut(name, " into "); found {
		name = before
		holder, ok := world.FindByName(sc, after, scope)
		if !ok {
			return "There is no such container."
		}
		if !sc.Has(holder, world.KindContainer) {
			return "You cannot do that."
		}
		container = holder
	}
	thing, ok := world.FindByName(sc, name, scope)
	if !ok {
		return "There is no such thing."
	}

	loc := world.LocationOf(sc, thing)
	if loc == nil {
		panic("game: drop: the thing is missing a vital component")
	}
	if loc.Container != actor {
		return "You do not have that."
	}
	if thing == container {
		return "You cannot do that."
	}

	world.Move(sc, thing, container)
	return "Dropped."
}

func cmdRead(g *Game, actor mecs.Entity, args []string) string {
	if len(args) == 0 {
		return "You have to name a thing you want to read."
	}

	sc := g.Scene
	requireComponents(sc, actor, "The player is lacking vital components.",
		world.KindContainer, world.KindLocation)
	location := world.LocationOf(sc, actor).Container
	requireComponents(sc, location, "The player's location is lacking a vital component.",
		world.KindContainer)

	name := strings.Join(args, " ")
	scope := concat(world.ContainerOf(sc, actor).Members, world.ContainerOf(sc, location).Members)
	thing, ok := world.FindByName(sc, name, scope)
	if !ok {
		return "There is no such thing."
	}

	ins := world.InscriptionOf(sc, thing)
	if ins == nil {
		return "There is nothing to read."
	}
	return fmt.Sprintf("It says: '%s'", ins.Text)
}

// requireComponents panics when an entity is missing components a handler
// depends on. That is malformed world-build data, never a player mistake.
func requireComponents(sc *mecs.Scene, e mecs.Entity, msg string, kinds ...mecs.Kind) {
	if !sc.Has(e, kinds...) {
		panic("game: " + msg)
	}
}

// concat returns a fresh slice holding a then b, so callers never alias
// live container membership.
func concat(a, b []mecs.Entity) []mecs.Entity {
	out := make([]mecs.Entity, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
