package cli

import "fmt"

// CommandHelp represents the help information for one command.
type CommandHelp struct {
	Scope     string
	Operation string
	ShortDesc string
	LongDesc  string
	Syntax    string
	Arguments []string
	Options   []string
	Examples  []string
}

// HandleHelp shows general, scope or operation help.
func (c *CLI) HandleHelp(args []string) error {
	switch len(args) {
	case 0:
		return c.showGeneralHelp()
	case 1:
		return c.showScopeHelp(args[0])
	case 2:
		return c.showOperationHelp(args[0], args[1])
	default:
		return fmt.Errorf("invalid help command. Use 'help [scope] [operation]'")
	}
}

func (c *CLI) showGeneralHelp() error {
	c.ui.Println("Command syntax: <scope> <operation> [arguments] [options]")
	c.ui.Println("\nAvailable commands:")

	currentScope := ""
	for _, cmd := range commandHelps {
		if cmd.Scope != currentScope {
			c.ui.Printf("\n%s:\n", cmd.Scope)
			currentScope = cmd.Scope
		}
		c.ui.Printf("  %-12s %s\n", cmd.Operation, cmd.ShortDesc)
	}
	return nil
}

func (c *CLI) showScopeHelp(scope string) error {
	found := false
	for _, cmd := range commandHelps {
		if cmd.Scope != scope {
			continue
		}
		if !found {
			c.ui.Printf("Commands for %s:\n\n", scope)
			found = true
		}
		c.ui.Printf("%-12s %s\n", cmd.Operation, cmd.ShortDesc)
	}
	if !found {
		return fmt.Errorf("no help found for %s", scope)
	}
	return nil
}

func (c *CLI) showOperationHelp(scope, operation string) error {
	for _, cmd := range commandHelps {
		if cmd.Scope != scope || cmd.Operation != operation {
			continue
		}
		c.ui.Printf("Command: %s %s\n", scope, operation)
		c.ui.Printf("Description: %s\n", cmd.LongDesc)
		c.ui.Printf("Syntax: %s\n", cmd.Syntax)
		printSection(c, "Arguments:", cmd.Arguments)
		printSection(c, "Options:", cmd.Options)
		printSection(c, "Examples:", cmd.Examples)
		return nil
	}
	return fmt.Errorf("no help found for %s %s", scope, operation)
}

func printSection(c *CLI, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	c.ui.Println(title)
	for _, l := range lines {
		c.ui.Printf("  %s\n", l)
	}
}

const fieldKeys = "type, label, body, color, x, y, w, h, rotation, opacity, visible, locked"

// commandHelps lists every command in display order.
var commandHelps = []CommandHelp{
	{
		Scope:     "element",
		Operation: "add",
		ShortDesc: "Place a new element",
		LongDesc:  "Places a new element of a registry type centered on the canvas, or pinned to the top or bottom edge for header and footer bars. The new element is selected.",
		Syntax:    "element add <type> [key=value]...",
		Arguments: []string{"type: The registry type key, see 'registry list'", "key=value: (Optional) Field overrides, keys are " + fieldKeys},
		Examples:  []string{"element add water", "element add callout label=\"AA2\" body=\"line 1\\nline 2\""},
	},
	{
		Scope:     "element",
		Operation: "list",
		ShortDesc: "List elements",
		LongDesc:  "Lists all elements, topmost first. The selected element is marked with '>'.",
		Syntax:    "element list",
		Examples:  []string{"element list"},
	},
	{
		Scope:     "element",
		Operation: "show",
		ShortDesc: "Show an element",
		LongDesc:  "Shows every field of one element, or of the selected element when no id is given.",
		Syntax:    "element show [id]",
		Arguments: []string{"id: (Optional) The element id"},
		Examples:  []string{"element show el_0001", "element show"},
	},
	{
		Scope:     "element",
		Operation: "update",
		ShortDesc: "Change fields without an undo step",
		LongDesc:  "Merges fields into an element without recording an undo step, the way a live drag does.",
		Syntax:    "element update <id> <key=value>...",
		Arguments: []string{"id: The element id", "key=value: Fields to change, keys are " + fieldKeys},
		Examples:  []string{"element update el_0001 x=120 y=80"},
	},
	{
		Scope:     "element",
		Operation: "set",
		ShortDesc: "Change fields as one undo step",
		LongDesc:  "Merges fields into an element and records the previous state for undo.",
		Syntax:    "element set <id> <key=value>...",
		Arguments: []string{"id: The element id", "key=value: Fields to change, keys are " + fieldKeys},
		Examples:  []string{"element set el_0001 label=\"MAIN ST\" color=#d63030", "element set el_0002 opacity=0.6"},
	},
	{
		Scope:     "element",
		Operation: "delete",
		ShortDesc: "Delete an element",
		LongDesc:  "Removes an element. The selection is cleared when it pointed at the element.",
		Syntax:    "element delete <id>",
		Arguments: []string{"id: The element id"},
		Examples:  []string{"element delete el_0003"},
	},
	{
		Scope:     "element",
		Operation: "duplicate",
		ShortDesc: "Duplicate an element",
		LongDesc:  "Copies an element with a new id, offset by 20 pixels. The copy is placed on top and selected.",
		Syntax:    "element duplicate <id>",
		Arguments: []string{"id: The element id"},
		Examples:  []string{"element duplicate el_0001"},
	},
	{
		Scope:     "element",
		Operation: "front",
		ShortDesc: "Bring an element to the front",
		LongDesc:  "Moves an element to the top of the z-order.",
		Syntax:    "element front <id>",
		Arguments: []string{"id: The element id"},
		Examples:  []string{"element front el_0001"},
	},
	{
		Scope:     "element",
		Operation: "back",
		ShortDesc: "Send an element to the back",
		LongDesc:  "Moves an element to the bottom of the z-order.",
		Syntax:    "element back <id>",
		Arguments: []string{"id: The element id"},
		Examples:  []string{"element back el_0001"},
	},
	{
		Scope:     "element",
		Operation: "forward",
		ShortDesc: "Bring an element forward one step",
		LongDesc:  "Swaps an element with the one directly above it.",
		Syntax:    "element forward <id>",
		Arguments: []string{"id: The element id"},
		Examples:  []string{"element forward el_0002"},
	},
	{
		Scope:     "element",
		Operation: "backward",
		ShortDesc: "Send an element backward one step",
		LongDesc:  "Swaps an element with the one directly below it.",
		Syntax:    "element backward <id>",
		Arguments: []string{"id: The element id"},
		Examples:  []string{"element backward el_0002"},
	},
	{
		Scope:     "element",
		Operation: "reorder",
		ShortDesc: "Move an element before another",
		LongDesc:  "Moves an element to the z-order position directly before another element, as one undo step.",
		Syntax:    "element reorder <from> <to>",
		Arguments: []string{"from: The element to move", "to: The element it is placed before"},
		Examples:  []string{"element reorder el_0004 el_0001"},
	},
	{
		Scope:     "element",
		Operation: "hide",
		ShortDesc: "Toggle visibility",
		LongDesc:  "Shows a hidden element or hides a visible one.",
		Syntax:    "element hide <id>",
		Arguments: []string{"id: The element id"},
		Examples:  []string{"element hide el_0001"},
	},
	{
		Scope:     "element",
		Operation: "lock",
		ShortDesc: "Toggle the lock",
		LongDesc:  "Locks or unlocks an element. Locked elements cannot be moved or transformed.",
		Syntax:    "element lock <id>",
		Arguments: []string{"id: The element id"},
		Examples:  []string{"element lock el_0001"},
	},
	{
		Scope:     "element",
		Operation: "select",
		ShortDesc: "Select an element",
		LongDesc:  "Selects an element, or clears the selection when no id is given.",
		Syntax:    "element select [id]",
		Arguments: []string{"id: (Optional) The element id"},
		Examples:  []string{"element select el_0001", "element select"},
	},
	{
		Scope:     "element",
		Operation: "move",
		ShortDesc: "Move an element",
		LongDesc:  "Moves an element to a position, rounded and snapped to the grid when one is set.",
		Syntax:    "element move <id> <x> <y>",
		Arguments: []string{"id: The element id", "x: The new left edge", "y: The new top edge"},
		Examples:  []string{"element move el_0001 100 40"},
	},
	{
		Scope:     "element",
		Operation: "transform",
		ShortDesc: "Resize and rotate an element",
		LongDesc:  "Applies a resize and rotation. The size is multiplied by the scale factors and kept at 20 pixels or more.",
		Syntax:    "element transform <id> <x> <y> <scaleX> <scaleY> <rotation>",
		Arguments: []string{"id: The element id", "x, y: The new position", "scaleX, scaleY: Size factors", "rotation: Rotation in degrees"},
		Examples:  []string{"element transform el_0001 100 40 1.5 1 15"},
	},
	{
		Scope:     "edit",
		Operation: "undo",
		ShortDesc: "Undo the last change",
		LongDesc:  "Restores the element list from before the last recorded change.",
		Syntax:    "edit undo",
		Examples:  []string{"edit undo"},
	},
	{
		Scope:     "edit",
		Operation: "redo",
		ShortDesc: "Redo the last undone change",
		LongDesc:  "Reapplies the last change that was undone.",
		Syntax:    "edit redo",
		Examples:  []string{"edit redo"},
	},
	{
		Scope:     "edit",
		Operation: "clear",
		ShortDesc: "Remove all elements",
		LongDesc:  "Removes every element as one undo step and clears the selection.",
		Syntax:    "edit clear",
		Examples:  []string{"edit clear"},
	},
	{
		Scope:     "project",
		Operation: "save",
		ShortDesc: "Save the project",
		LongDesc:  "Writes the project to a .mcoo file. Without a file the last saved or loaded file is used.",
		Syntax:    "project save [file] [title]",
		Arguments: []string{"file: (Optional) The project file, .mcoo is appended when missing", "title: (Optional) The project title"},
		Examples:  []string{"project save", "project save kingdom \"MAGIC KINGDOM AO\""},
	},
	{
		Scope:     "project",
		Operation: "load",
		ShortDesc: "Load a project",
		LongDesc:  "Replaces the canvas with a .mcoo file. The undo history is reset.",
		Syntax:    "project load <file> [--force]",
		Arguments: []string{"file: The project file"},
		Options:   []string{"--force: Discard unsaved changes"},
		Examples:  []string{"project load kingdom", "project load other.mcoo --force"},
	},
	{
		Scope:     "project",
		Operation: "info",
		ShortDesc: "Show project state",
		LongDesc:  "Shows the canvas, view, history depth and whether there are unsaved changes.",
		Syntax:    "project info",
		Examples:  []string{"project info"},
	},
	{
		Scope:     "project",
		Operation: "title",
		ShortDesc: "Set the project title",
		LongDesc:  "Sets the title written into the next save.",
		Syntax:    "project title <title>",
		Arguments: []string{"title: The project title"},
		Examples:  []string{"project title \"MAGIC KINGDOM AO\""},
	},
	{
		Scope:     "canvas",
		Operation: "size",
		ShortDesc: "Set the canvas size",
		LongDesc:  "Sets the canvas width and height in pixels.",
		Syntax:    "canvas size <width> <height>",
		Arguments: []string{"width: Width in pixels", "height: Height in pixels"},
		Examples:  []string{"canvas size 1200 800"},
	},
	{
		Scope:     "canvas",
		Operation: "map",
		ShortDesc: "Set or clear the map image",
		LongDesc:  "Loads a map image and sizes the canvas to it, or clears the map. Supported formats are png, jpeg, gif, bmp, tiff and webp.",
		Syntax:    "canvas map <image|clear>",
		Arguments: []string{"image: Path to the map image, or 'clear'"},
		Examples:  []string{"canvas map ./maps/kingdom.png", "canvas map clear"},
	},
	{
		Scope:     "canvas",
		Operation: "zoom",
		ShortDesc: "Set the zoom",
		LongDesc:  "Sets the zoom factor, clamped to 0.25..8, or resets it to 1.",
		Syntax:    "canvas zoom <factor|reset>",
		Arguments: []string{"factor: The zoom factor, or 'reset'"},
		Examples:  []string{"canvas zoom 1.5", "canvas zoom reset"},
	},
	{
		Scope:     "canvas",
		Operation: "grid",
		ShortDesc: "Set the snap grid",
		LongDesc:  "Sets the grid size used to snap moves. 0 turns snapping off.",
		Syntax:    "canvas grid <size>",
		Arguments: []string{"size: Grid size in pixels"},
		Examples:  []string{"canvas grid 20", "canvas grid 0"},
	},
	{
		Scope:     "registry",
		Operation: "list",
		ShortDesc: "List element types",
		LongDesc:  "Lists the toolbar sections, or the element types of one category.",
		Syntax:    "registry list [category]",
		Arguments: []string{"category: (Optional) terrain, obstacles, tactical, callouts or map"},
		Examples:  []string{"registry list", "registry list tactical"},
	},
	{
		Scope:     "journal",
		Operation: "list",
		ShortDesc: "Show command history",
		LongDesc:  "Shows the most recent commands run in this session.",
		Syntax:    "journal list [count] [--all]",
		Arguments: []string{"count: (Optional) Number of entries, 20 by default"},
		Options:   []string{"--all: Include every session"},
		Examples:  []string{"journal list", "journal list 50 --all"},
	},
	{
		Scope:     "system",
		Operation: "exit",
		ShortDesc: "Exit the program",
		LongDesc:  "Exits the MCOO editor. Unsaved changes block the exit unless --force is given.",
		Syntax:    "system exit [--force]",
		Options:   []string{"--force: Discard unsaved changes"},
		Examples:  []string{"system exit", "exit --force"},
	},
	{
		Scope:     "system",
		Operation: "quit",
		ShortDesc: "Quit the program",
		LongDesc:  "Equivalent to 'system exit'.",
		Syntax:    "system quit [--force]",
		Options:   []string{"--force: Discard unsaved changes"},
		Examples:  []string{"system quit"},
	},
}
