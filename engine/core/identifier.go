package core

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Registry of live scene objects keyed by a random identifier.
var (
	ownersMu sync.Mutex
	owners   = map[uuid.UUID]interface{}{}
)

// IdentifierAquireNewID registers the owner and returns its identifier.
func IdentifierAquireNewID(owner interface{}) uuid.UUID {
	ownersMu.Lock()
	defer ownersMu.Unlock()
	id := uuid.New()
	owners[id] = owner
	return id
}

func IdentifierReleaseID(id uuid.UUID) error {
	ownersMu.Lock()
	defer ownersMu.Unlock()
	if _, ok := owners[id]; !ok {
		return fmt.Errorf("identifier_release_id: id '%s' is not registered. Nothing was done", id)
	}
	delete(owners, id)
	return nil
}
