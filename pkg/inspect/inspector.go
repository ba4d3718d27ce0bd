package inspect

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/libnmea/libnmea-go/pkg/decode"
	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// Inspector errors.
var (
	ErrNoMessage     = errors.New("no payload decoded for pgn")
	ErrGroupNotFound = errors.New("group not found")
)

// Inspector decodes payloads and keeps the latest message per PGN for
// later lookup. It is safe for concurrent use.
type Inspector struct {
	dec *decode.Decoder

	mu     sync.RWMutex
	latest map[uint32]*decode.Message
}

// NewInspector creates a new Inspector decoding with dec.
func NewInspector(dec *decode.Decoder) *Inspector {
	return &Inspector{
		dec:    dec,
		latest: make(map[uint32]*decode.Message),
	}
}

// Registry returns the registry of the underlying decoder.
func (i *Inspector) Registry() *pgn.Registry {
	return i.dec.Registry()
}

// Decode decodes raw and records the result as the latest message for its
// PGN.
func (i *Inspector) Decode(raw decode.Raw) *decode.Message {
	msg := i.dec.DecodeRaw(raw)
	i.Record(msg)
	return msg
}

// Record stores msg as the latest message for its PGN.
func (i *Inspector) Record(msg *decode.Message) {
	i.mu.Lock()
	i.latest[msg.PGN] = msg
	i.mu.Unlock()
}

// Latest returns the last message recorded for id.
func (i *Inspector) Latest(id uint32) (*decode.Message, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	msg, ok := i.latest[id]
	return msg, ok
}

// PGNs returns the PGNs with a recorded message in ascending order.
func (i *Inspector) PGNs() []uint32 {
	i.mu.RLock()
	ids := make([]uint32, 0, len(i.latest))
	for id := range i.latest {
		ids = append(ids, id)
	}
	i.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Read returns the field value a path points to in the latest message for
// its PGN.
func (i *Inspector) Read(path *Path) (*decode.FieldValue, error) {
	if path.IsPartial {
		return nil, fmt.Errorf("%w: %s names no field", ErrInvalidPath, path.Raw)
	}
	msg, ok := i.Latest(path.PGN)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoMessage, path.PGN)
	}
	return ReadField(msg, path)
}

// ReadField returns the field value a path points to in msg.
func ReadField(msg *decode.Message, path *Path) (*decode.FieldValue, error) {
	if path.Group == 0 {
		fv, ok := msg.Field(path.Field)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a fixed field of pgn %d", ErrUnknownField, path.Field, msg.PGN)
		}
		return fv, nil
	}

	if path.Group > len(msg.Groups) {
		return nil, fmt.Errorf("%w: %d of %d in pgn %d", ErrGroupNotFound, path.Group, len(msg.Groups), msg.PGN)
	}
	fv, ok := msg.Groups[path.Group-1].Field(path.Field)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a group field of pgn %d", ErrUnknownField, path.Field, msg.PGN)
	}
	return fv, nil
}
