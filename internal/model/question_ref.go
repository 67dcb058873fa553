package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// QuestionKind names one of the concrete question tables.
type QuestionKind string

const (
	KindMCQ QuestionKind = "mcq"
	KindFTQ QuestionKind = "ftq"
)

func (k QuestionKind) IsValid() bool {
	return k == KindMCQ || k == KindFTQ
}

var ErrInvalidQuestionRef = errors.New("invalid question reference")

// QuestionRef points at either an MCQ or an FTQ. It is stored in a single
// column as "<kind>:<id>" so kind and id are always written together; the
// zero value means "no question" and is stored as NULL.
type QuestionRef struct {
	Kind QuestionKind `json:"kind"`
	ID   uint         `json:"id"`
}

func NewQuestionRef(kind QuestionKind, id uint) QuestionRef {
	return QuestionRef{Kind: kind, ID: id}
}

// ParseQuestionRef parses the "<kind>:<id>" form produced by String.
func ParseQuestionRef(s string) (QuestionRef, error) {
	kind, idStr, ok := strings.Cut(s, ":")
	if !ok {
		return QuestionRef{}, fmt.Errorf("%w: %q", ErrInvalidQuestionRef, s)
	}
	k := QuestionKind(strings.ToLower(kind))
	if !k.IsValid() {
		return QuestionRef{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidQuestionRef, kind)
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return QuestionRef{}, fmt.Errorf("%w: bad id %q", ErrInvalidQuestionRef, idStr)
	}
	return QuestionRef{Kind: k, ID: uint(id)}, nil
}

func (r QuestionRef) IsZero() bool {
	return r.Kind == "" && r.ID == 0
}

func (r QuestionRef) IsValid() bool {
	return r.Kind.IsValid() && r.ID != 0
}

func (r QuestionRef) String() string {
	if r.IsZero() {
		return ""
	}
	return string(r.Kind) + ":" + strconv.FormatUint(uint64(r.ID), 10)
}

// Value implements driver.Valuer.
func (r QuestionRef) Value() (driver.Value, error) {
	if r.IsZero() {
		return nil, nil
	}
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidQuestionRef, r)
	}
	return r.String(), nil
}

// Scan implements sql.Scanner.
func (r *QuestionRef) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*r = QuestionRef{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidQuestionRef, src)
	}
	if s == "" {
		*r = QuestionRef{}
		return nil
	}
	parsed, err := ParseQuestionRef(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (QuestionRef) GormDataType() string {
	return "string"
}
