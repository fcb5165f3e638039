package hashid

import (
	"fmt"

	hashids "github.com/speps/go-hashids/v2"
)

// Codec turns numeric database ids into the short opaque codes used in
// shareable links, and back. The same salt must be used by anything that
// decodes the links.
type Codec struct {
	h *hashids.HashID
}

func New(salt string) (*Codec, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = 6
	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("init hashid codec: %w", err)
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(id int64) (string, error) {
	code, err := c.h.EncodeInt64([]int64{id})
	if err != nil {
		return "", fmt.Errorf("encode id %d: %w", id, err)
	}
	return code, nil
}

func (c *Codec) Decode(code string) (int64, error) {
	ids, err := c.h.DecodeInt64WithError(code)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", code, err)
	}
	if len(ids) != 1 {
		return 0, fmt.Errorf("decode %q: expected a single id, got %d", code, len(ids))
	}
	return ids[0], nil
}
