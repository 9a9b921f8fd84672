package data

import (
	"context"

	"mcoo/local-app/internal/event"
	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
)

// Z-order operations. Front/back/forward/backward are treated as view
// operations and record no history; ElementReorder records history.

// ElementBringToFront moves the element to the top of the z-order.
func (em *ElementManager) ElementBringToFront(id string) bool {
	i := em.indexOf(id)
	if i < 0 || i == len(em.elements)-1 {
		return false
	}
	el := em.elements[i]
	copy(em.elements[i:], em.elements[i+1:])
	em.elements[len(em.elements)-1] = el
	em.publish(event.ElementsChanged, id)
	return true
}

// ElementSendToBack moves the element to the bottom of the z-order.
func (em *ElementManager) ElementSendToBack(id string) bool {
	i := em.indexOf(id)
	if i <= 0 {
		return false
	}
	el := em.elements[i]
	copy(em.elements[1:i+1], em.elements[:i])
	em.elements[0] = el
	em.publish(event.ElementsChanged, id)
	return true
}

// ElementBringForward swaps the element with the one directly above it.
func (em *ElementManager) ElementBringForward(id string) bool {
	i := em.indexOf(id)
	if i < 0 || i == len(em.elements)-1 {
		return false
	}
	em.elements[i], em.elements[i+1] = em.elements[i+1], em.elements[i]
	em.publish(event.ElementsChanged, id)
	return true
}

// ElementSendBackward swaps the element with the one directly below it.
func (em *ElementManager) ElementSendBackward(id string) bool {
	i := em.indexOf(id)
	if i <= 0 {
		return false
	}
	em.elements[i], em.elements[i-1] = em.elements[i-1], em.elements[i]
	em.publish(event.ElementsChanged, id)
	return true
}

// ElementReorder moves fromID to the position directly before toID, as a
// drag in the layers list does. The target position is taken after fromID
// has been lifted out of the list.
func (em *ElementManager) ElementReorder(fromID, toID string) bool {
	if fromID == toID {
		return false
	}
	from := em.indexOf(fromID)
	if from < 0 || em.indexOf(toID) < 0 {
		return false
	}

	em.pushHistory()

	el := em.elements[from]
	em.elements = append(em.elements[:from:from], em.elements[from+1:]...)
	to := em.indexOf(toID)
	em.elements = append(em.elements[:to], append([]model.Element{el}, em.elements[to:]...)...)

	em.logger.Debug(context.Background(), "Element reordered", log.Fields{"from": fromID, "before": toID, "index": to})
	em.publish(event.ElementsChanged, fromID)
	return true
}
