package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"blog-api/internal/domain"
	"blog-api/internal/service"
)

// jsonObject is a decoded request body keyed by field name. Absent keys are absent
// fields; a key holding null is an explicit null.
type jsonObject map[string]json.RawMessage

// readObject decodes the request body as a JSON object. An empty body is an empty object.
func readObject(c *gin.Context) (jsonObject, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, domain.NewValidationError(map[string]string{"body": "body_unreadable"})
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return jsonObject{}, nil
	}
	var obj jsonObject
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, domain.NewValidationError(map[string]string{"body": "body_must_be_json_object"})
	}
	return obj, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// fieldDecoder collects per-field decoding failures.
type fieldDecoder struct {
	obj    jsonObject
	errors map[string]string
}

func newFieldDecoder(obj jsonObject) *fieldDecoder {
	return &fieldDecoder{obj: obj, errors: make(map[string]string)}
}

// String returns the field as a string. A null string is returned as "" so the
// required rules report it.
func (d *fieldDecoder) String(field string) (*string, bool) {
	raw, ok := d.obj[field]
	if !ok {
		return nil, false
	}
	s := ""
	if isNull(raw) {
		return &s, true
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		d.errors[field] = field + "_must_be_string"
		return nil, true
	}
	return &s, true
}

// Bool returns the field as a boolean. JSON booleans and the numbers 0 and 1 are accepted.
func (d *fieldDecoder) Bool(field string) (*bool, bool) {
	raw, ok := d.obj[field]
	if !ok {
		return nil, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil && !isNull(raw) {
		return &b, true
	}
	switch strings.TrimSpace(string(raw)) {
	case "0":
		b = false
		return &b, true
	case "1":
		b = true
		return &b, true
	}
	d.errors[field] = field + "_must_be_boolean"
	return nil, true
}

// Time returns the field as a timestamp. present reports whether the key was sent;
// a nil time with present set is an explicit null.
func (d *fieldDecoder) Time(field string) (t *time.Time, present bool) {
	raw, ok := d.obj[field]
	if !ok {
		return nil, false
	}
	if isNull(raw) {
		return nil, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.errors[field] = field + "_invalid_date"
		return nil, true
	}
	parsed, err := parseTimestamp(s)
	if err != nil {
		d.errors[field] = field + "_invalid_date"
		return nil, true
	}
	return &parsed, true
}

// Err returns the collected failures as a ValidationError, or nil.
func (d *fieldDecoder) Err() error {
	if len(d.errors) == 0 {
		return nil
	}
	return domain.NewValidationError(d.errors)
}

var errUnknownTimestamp = errors.New("unrecognized timestamp layout")

// parseTimestamp reads s with the first matching layout of timestampLayouts.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errUnknownTimestamp
}

// decodeCreatePost reads the body of POST /posts.
func decodeCreatePost(obj jsonObject) (service.CreatePostInput, error) {
	d := newFieldDecoder(obj)
	var in service.CreatePostInput

	if title, ok := d.String("title"); ok && title != nil {
		in.Title = *title
	}
	if content, ok := d.String("content"); ok && content != nil {
		in.Content = *content
	}
	if draft, ok := d.Bool("is_draft"); ok && draft != nil {
		in.IsDraft = *draft
	}
	in.PublishedAt, _ = d.Time("published_at")

	return in, d.Err()
}

// decodeUpdatePost reads the body of PUT /posts/{id}. Only sent fields end up in the patch.
func decodeUpdatePost(obj jsonObject) (domain.PostPatch, error) {
	d := newFieldDecoder(obj)
	var patch domain.PostPatch

	patch.Title, _ = d.String("title")
	patch.Content, _ = d.String("content")
	patch.IsDraft, _ = d.Bool("is_draft")
	patch.PublishedAt, patch.PublishedAtSet = d.Time("published_at")

	return patch, d.Err()
}

// credentials is the body of the login and register endpoints.
type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func decodeCredentials(obj jsonObject) (credentials, error) {
	d := newFieldDecoder(obj)
	var cr credentials
	if v, _ := d.String("name"); v != nil {
		cr.Name = *v
	}
	if v, _ := d.String("email"); v != nil {
		cr.Email = *v
	}
	if v, _ := d.String("password"); v != nil {
		cr.Password = *v
	}
	return cr, d.Err()
}
