package common

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// maxSeenIDs caps how many served ids a feed cursor carries. Older ids fall
// off; a very deep scroller may see a repeat after this many items.
const maxSeenIDs = 500

// Cursor is the opaque continuation token returned with every page.
//
// Feed pages carry the set of content ids already served so candidate
// generation can exclude them. Simple keyset-paginated lists (search,
// comments, notifications) carry only the last-seen id.
type Cursor struct {
	LastID int64   `json:"l,omitempty"`
	Seen   []int64 `json:"s,omitempty"`
}

// Merge appends newly served ids, keeping the most recent maxSeenIDs.
func (c *Cursor) Merge(served []int64) {
	c.Seen = append(c.Seen, served...)
	if len(c.Seen) > maxSeenIDs {
		c.Seen = c.Seen[len(c.Seen)-maxSeenIDs:]
	}
}

// Encode serializes the cursor to an opaque URL-safe token.
func (c *Cursor) Encode() string {
	if c == nil || (c.LastID == 0 && len(c.Seen) == 0) {
		return ""
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses a client-supplied token. An empty token is a valid
// first-page cursor; anything else that fails to parse is a client error.
func DecodeCursor(token string) (*Cursor, error) {
	if token == "" {
		return &Cursor{}, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCursor, token)
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCursor, token)
	}
	return &c, nil
}
