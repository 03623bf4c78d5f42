package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MissingKeyError is returned when a response object lacks a key its DTO
// requires, or carries null for it
type MissingKeyError struct {
	Type string
	Key  string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: key %q not found", e.Type, e.Key)
}

var jsonNull = []byte("null")

// decodeStrict unmarshals b into v after checking that every key is present
// and non-null. v must be a pointer to a type without its own UnmarshalJSON.
func decodeStrict(b []byte, v any, typeName string, keys ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	// a JSON null object decodes into a nil map
	if fields == nil {
		return &MissingKeyError{Type: typeName, Key: keys[0]}
	}
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || bytes.Equal(raw, jsonNull) {
			return &MissingKeyError{Type: typeName, Key: key}
		}
	}
	return json.Unmarshal(b, v)
}

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	return decodeStrict(b, (*plain)(u), "User", "email", "type", "_id")
}

func (l *LoginUser) UnmarshalJSON(b []byte) error {
	type plain LoginUser
	return decodeStrict(b, (*plain)(l), "LoginUser", "token")
}

func (s *Show) UnmarshalJSON(b []byte) error {
	type plain Show
	return decodeStrict(b, (*plain)(s), "Show", "_id", "title", "imageUrl", "likesCount")
}

func (s *ShowDetails) UnmarshalJSON(b []byte) error {
	type plain ShowDetails
	return decodeStrict(b, (*plain)(s), "ShowDetails",
		"type", "title", "description", "_id", "likesCount", "imageUrl")
}

// UnmarshalJSON for Episode does not require showId: list entries are
// already scoped to the show they were requested for.
func (e *Episode) UnmarshalJSON(b []byte) error {
	type plain Episode
	return decodeStrict(b, (*plain)(e), "Episode",
		"_id", "title", "description", "imageUrl", "episodeNumber", "season")
}

func (e *EpisodeDetails) UnmarshalJSON(b []byte) error {
	type plain EpisodeDetails
	return decodeStrict(b, (*plain)(e), "EpisodeDetails",
		"_id", "showId", "type", "title", "description", "imageUrl", "episodeNumber", "season")
}

func (e *NewEpisode) UnmarshalJSON(b []byte) error {
	type plain NewEpisode
	return decodeStrict(b, (*plain)(e), "NewEpisode",
		"showId", "title", "description", "episodeNumber", "season", "type", "_id", "imageUrl")
}

func (m *Media) UnmarshalJSON(b []byte) error {
	type plain Media
	return decodeStrict(b, (*plain)(m), "Media", "_id", "path", "type")
}

func (c *Comment) UnmarshalJSON(b []byte) error {
	type plain Comment
	return decodeStrict(b, (*plain)(c), "Comment", "_id", "episodeId", "text", "userEmail")
}

func (c *NewComment) UnmarshalJSON(b []byte) error {
	type plain NewComment
	return decodeStrict(b, (*plain)(c), "NewComment",
		"_id", "episodeId", "text", "userEmail", "userId")
}
