package exchange

import (
	"github.com/google/uuid"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// uidSpace is the namespace for name-based UUIDs, so exporting the same
// contact twice yields the same UID and clients update instead of duplicating.
var uidSpace = uuid.NewSHA1(uuid.NameSpaceOID, []byte(config.UIDNamespace))

func contactUID(name string) uuid.UUID {
	return uuid.NewSHA1(uidSpace, []byte(name))
}
