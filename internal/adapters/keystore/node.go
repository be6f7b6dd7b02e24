package keystore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildgate/internal/core/ports"
)

// NodeID is the unique identifier for the signing source Graft node.
const NodeID graft.ID = "adapter.signing_source"

func init() {
	graft.Register(graft.Node[ports.SigningSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SigningSource, error) {
			return NewSource(), nil
		},
	})
}
