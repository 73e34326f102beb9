package models

import (
	"bytes"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
)

// ContentBlock is one typed unit of rich content. The backend never interprets
// Content; any keys besides "type" and "content" survive a round trip in Attrs.
// Keys the client left out are left out again on the way back.
type ContentBlock struct {
	Type    string
	Content json.RawMessage
	Attrs   map[string]json.RawMessage

	hasType bool
	null    bool
}

type ContentBlocks = datatypes.JSONSlice[ContentBlock]

func (b ContentBlock) MarshalJSON() ([]byte, error) {
	if b.null {
		return []byte("null"), nil
	}

	out := make(map[string]json.RawMessage, len(b.Attrs)+2)
	for k, v := range b.Attrs {
		out[k] = v
	}
	if b.hasType || b.Type != "" {
		typ, err := json.Marshal(b.Type)
		if err != nil {
			return nil, err
		}
		out["type"] = typ
	}
	if b.Content != nil {
		out["content"] = b.Content
	}
	return json.Marshal(out)
}

func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	*b = ContentBlock{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		b.null = true
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("content block must be an object")
	}

	if typ, ok := raw["type"]; ok && !bytes.Equal(typ, []byte("null")) {
		if err := json.Unmarshal(typ, &b.Type); err != nil {
			return errors.New("content block type must be a string")
		}
		b.hasType = true
		delete(raw, "type")
	}
	if content, ok := raw["content"]; ok {
		b.Content = content
		delete(raw, "content")
	}
	if len(raw) > 0 {
		b.Attrs = raw
	}
	return nil
}
