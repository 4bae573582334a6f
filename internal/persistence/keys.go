package persistence

import (
	"net/url"
	"strings"
)

// Nombres de colección; también son el label "collection" de las métricas.
const (
	CollectionPets      = "pets"
	CollectionEntries   = "entries"
	CollectionActivePet = "active_pet"
)

// Keys son las claves fijas de un workspace.
type Keys struct {
	Pets      string
	Entries   string
	ActivePet string
}

// KeysFor arma las claves <prefix>/<usuario escapado>/<colección>.
func KeysFor(prefix, userID string) Keys {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = "purrlog"
	}
	base := prefix + "/" + url.PathEscape(userID) + "/"
	return Keys{
		Pets:      base + CollectionPets,
		Entries:   base + CollectionEntries,
		ActivePet: base + CollectionActivePet,
	}
}
