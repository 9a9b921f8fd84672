package session

import (
	"errors"
	"fmt"

	"mcoo/local-app/internal/data"
	"mcoo/local-app/internal/model"
	"mcoo/local-app/internal/registry"
)

func initElementCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":       handleElementAdd,
		"list":      handleElementList,
		"show":      handleElementShow,
		"update":    handleElementUpdate,
		"set":       handleElementSet,
		"delete":    handleElementDelete,
		"duplicate": handleElementDuplicate,
		"front":     zOrderHandler("brought to front", (*data.ElementManager).ElementBringToFront),
		"back":      zOrderHandler("sent to back", (*data.ElementManager).ElementSendToBack),
		"forward":   zOrderHandler("brought forward", (*data.ElementManager).ElementBringForward),
		"backward":  zOrderHandler("sent backward", (*data.ElementManager).ElementSendBackward),
		"reorder":   handleElementReorder,
		"hide":      handleElementHide,
		"lock":      handleElementLock,
		"select":    handleElementSelect,
		"move":      handleElementMove,
		"transform": handleElementTransform,
	}
}

// handleElementAdd places a new element of a registry type. Extra
// key=value arguments override the type defaults.
func handleElementAdd(s *Session, cmd model.Command) (interface{}, error) {
	t, ok := registry.Lookup(cmd.Args[0])
	if !ok {
		return nil, fmt.Errorf("unknown element type: %s", cmd.Args[0])
	}

	info, filter := t.Info()
	if len(cmd.Args) > 1 {
		over, overFilter, err := parseElementFields(cmd.Args[1:])
		if err != nil {
			return nil, err
		}
		info, filter = mergeFields(info, filter, over, overFilter)
	}

	id := s.Elements.ElementAdd(info, filter)
	el, _ := s.Elements.Element(id)
	return el, nil
}

func handleElementList(s *Session, cmd model.Command) (interface{}, error) {
	return s.Elements.Elements(), nil
}

// handleElementShow returns one element, or the selected one without an argument.
func handleElementShow(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) == 0 {
		el, ok := s.Elements.Selected()
		if !ok {
			return nil, errors.New("no element selected")
		}
		return el, nil
	}
	el, ok := s.Elements.Element(cmd.Args[0])
	if !ok {
		return nil, errElementNotFound(cmd.Args[0])
	}
	return el, nil
}

// handleElementUpdate merges fields without recording an undo step.
func handleElementUpdate(s *Session, cmd model.Command) (interface{}, error) {
	info, filter, err := parseElementFields(cmd.Args[1:])
	if err != nil {
		return nil, err
	}
	if !s.Elements.ElementUpdate(cmd.Args[0], info, filter) {
		return nil, errElementNotFound(cmd.Args[0])
	}
	el, _ := s.Elements.Element(cmd.Args[0])
	return el, nil
}

// handleElementSet merges fields as one undoable step. An unknown id is
// reported before the store is touched so the redo stack survives.
func handleElementSet(s *Session, cmd model.Command) (interface{}, error) {
	info, filter, err := parseElementFields(cmd.Args[1:])
	if err != nil {
		return nil, err
	}
	if _, ok := s.Elements.Element(cmd.Args[0]); !ok {
		return nil, errElementNotFound(cmd.Args[0])
	}
	if !s.Elements.ElementUpdateWithHistory(cmd.Args[0], info, filter) {
		return nil, errElementNotFound(cmd.Args[0])
	}
	el, _ := s.Elements.Element(cmd.Args[0])
	return el, nil
}

func handleElementDelete(s *Session, cmd model.Command) (interface{}, error) {
	if _, ok := s.Elements.Element(cmd.Args[0]); !ok {
		return nil, errElementNotFound(cmd.Args[0])
	}
	if !s.Elements.ElementDelete(cmd.Args[0]) {
		return nil, errElementNotFound(cmd.Args[0])
	}
	return fmt.Sprintf("Element %s deleted", cmd.Args[0]), nil
}

func handleElementDuplicate(s *Session, cmd model.Command) (interface{}, error) {
	id, ok := s.Elements.ElementDuplicate(cmd.Args[0])
	if !ok {
		return nil, errElementNotFound(cmd.Args[0])
	}
	el, _ := s.Elements.Element(id)
	return el, nil
}

func zOrderHandler(done string, op func(*data.ElementManager, string) bool) CommandHandler {
	return func(s *Session, cmd model.Command) (interface{}, error) {
		id := cmd.Args[0]
		if _, ok := s.Elements.Element(id); !ok {
			return nil, errElementNotFound(id)
		}
		if !op(s.Elements, id) {
			return fmt.Sprintf("Element %s unchanged", id), nil
		}
		return fmt.Sprintf("Element %s %s (layer %d of %d)", id, done, s.Elements.ElementIndex(id)+1, s.Elements.Len()), nil
	}
}

func handleElementReorder(s *Session, cmd model.Command) (interface{}, error) {
	from, to := cmd.Args[0], cmd.Args[1]
	for _, id := range []string{from, to} {
		if _, ok := s.Elements.Element(id); !ok {
			return nil, errElementNotFound(id)
		}
	}
	if !s.Elements.ElementReorder(from, to) {
		return fmt.Sprintf("Element %s unchanged", from), nil
	}
	return fmt.Sprintf("Element %s moved below %s", from, to), nil
}

func handleElementHide(s *Session, cmd model.Command) (interface{}, error) {
	if !s.Elements.ElementToggleVisibility(cmd.Args[0]) {
		return nil, errElementNotFound(cmd.Args[0])
	}
	el, _ := s.Elements.Element(cmd.Args[0])
	if el.Visible {
		return fmt.Sprintf("Element %s shown", el.ID), nil
	}
	return fmt.Sprintf("Element %s hidden", el.ID), nil
}

func handleElementLock(s *Session, cmd model.Command) (interface{}, error) {
	if !s.Elements.ElementToggleLock(cmd.Args[0]) {
		return nil, errElementNotFound(cmd.Args[0])
	}
	el, _ := s.Elements.Element(cmd.Args[0])
	if el.Locked {
		return fmt.Sprintf("Element %s locked", el.ID), nil
	}
	return fmt.Sprintf("Element %s unlocked", el.ID), nil
}

// handleElementSelect selects an element, or clears the selection without an argument.
func handleElementSelect(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) == 0 {
		s.Elements.ElementSelect("")
		return "Selection cleared", nil
	}
	if _, ok := s.Elements.Element(cmd.Args[0]); !ok {
		return nil, errElementNotFound(cmd.Args[0])
	}
	s.Elements.ElementSelect(cmd.Args[0])
	return fmt.Sprintf("Element %s selected", cmd.Args[0]), nil
}

func handleElementMove(s *Session, cmd model.Command) (interface{}, error) {
	id := cmd.Args[0]
	el, ok := s.Elements.Element(id)
	if !ok {
		return nil, errElementNotFound(id)
	}
	if el.Locked {
		return nil, fmt.Errorf("element %s is locked", id)
	}
	xy, err := parseFloats(cmd.Args[1:])
	if err != nil {
		return nil, err
	}
	if !s.Elements.ElementMove(id, xy[0], xy[1]) {
		return nil, fmt.Errorf("position %v,%v is out of range", xy[0], xy[1])
	}
	el, _ = s.Elements.Element(id)
	return el, nil
}

func handleElementTransform(s *Session, cmd model.Command) (interface{}, error) {
	id := cmd.Args[0]
	el, ok := s.Elements.Element(id)
	if !ok {
		return nil, errElementNotFound(id)
	}
	if el.Locked {
		return nil, fmt.Errorf("element %s is locked", id)
	}
	v, err := parseFloats(cmd.Args[1:])
	if err != nil {
		return nil, err
	}
	if !s.Elements.ElementTransform(id, data.Transform{X: v[0], Y: v[1], ScaleX: v[2], ScaleY: v[3], Rotation: v[4]}) {
		return nil, fmt.Errorf("transform of element %s is out of range", id)
	}
	el, _ = s.Elements.Element(id)
	return el, nil
}

func errElementNotFound(id string) error {
	return fmt.Errorf("element %s not found", id)
}
