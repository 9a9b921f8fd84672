package data

import (
	"context"
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"

	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
)

// Fingerprint returns a BLAKE2b-256 digest of the persisted state: the
// element list and the canvas section of the project document. It returns ""
// when the state cannot be encoded.
func (em *ElementManager) Fingerprint() string {
	state := struct {
		Canvas   model.ProjectCanvas `json:"canvas"`
		Elements []model.Element     `json:"elements"`
	}{
		Canvas:   em.projectCanvas(),
		Elements: em.elements,
	}
	data, err := json.Marshal(state)
	if err != nil {
		em.logger.Warn(context.Background(), "Failed to encode state for fingerprint", log.Fields{"error": err})
		return ""
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// MarkSaved records the current state as the saved baseline.
func (em *ElementManager) MarkSaved() {
	em.savedPrint = em.Fingerprint()
}

// Dirty reports whether the state differs from the last saved or loaded one.
// State that cannot be encoded is always dirty.
func (em *ElementManager) Dirty() bool {
	fp := em.Fingerprint()
	return fp == "" || fp != em.savedPrint
}
