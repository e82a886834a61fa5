package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Table names used by every encoding.
const (
	TableJointFeatures        = "joint_features"
	TableLowercaseWords       = "lowercase_words"
	TableNonAbbreviationWords = "non_abbreviation_words"
)

// Format is an on-disk table encoding.
type Format int

const (
	// FormatProto is a binary google.protobuf.Struct.
	FormatProto Format = iota
	// FormatJSON is the protojson rendering of the same Struct.
	FormatJSON
	// FormatSQLite is an SQLite database with an entries table.
	FormatSQLite
)

func (f Format) String() string {
	switch f {
	case FormatProto:
		return "proto"
	case FormatJSON:
		return "json"
	case FormatSQLite:
		return "sqlite"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pb", ".bin":
		return FormatProto, nil
	case ".json":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads tables from path and builds a Model.
func Load(path string) (*Model, error) {
	t, err := LoadTables(path)
	if err != nil {
		return nil, err
	}
	return New(t)
}

// LoadTables reads tables from path, choosing the decoder by extension.
func LoadTables(path string) (Tables, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Tables{}, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Tables{}, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return Tables{}, fmt.Errorf("checking model file: %w", err)
	}

	if format == FormatSQLite {
		return loadSQLite(context.Background(), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("reading model file: %w", err)
	}

	var s structpb.Struct
	if format == FormatJSON {
		err = protojson.Unmarshal(data, &s)
	} else {
		err = proto.Unmarshal(data, &s)
	}
	if err != nil {
		return Tables{}, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return tablesFromStruct(&s)
}

// Save writes tables to path, choosing the encoder by extension.
func Save(path string, t Tables) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	if format == FormatSQLite {
		return saveSQLite(context.Background(), path, t)
	}

	s, err := tablesToStruct(t)
	if err != nil {
		return err
	}

	var data []byte
	if format == FormatJSON {
		data, err = protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	} else {
		data, err = proto.MarshalOptions{Deterministic: true}.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("encoding tables: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing model file: %w", err)
	}
	return nil
}

func tablesToStruct(t Tables) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(map[string]any{
		TableJointFeatures:        toAny(t.JointFeatures),
		TableLowercaseWords:       toAny(t.LowercaseWords),
		TableNonAbbreviationWords: toAny(t.NonAbbreviationWords),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding tables: %w", err)
	}
	return s, nil
}

func toAny(m map[string]float64) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func tablesFromStruct(s *structpb.Struct) (Tables, error) {
	var t Tables
	var err error

	if t.JointFeatures, err = numberTable(s, TableJointFeatures); err != nil {
		return Tables{}, err
	}
	if t.LowercaseWords, err = numberTable(s, TableLowercaseWords); err != nil {
		return Tables{}, err
	}
	if t.NonAbbreviationWords, err = numberTable(s, TableNonAbbreviationWords); err != nil {
		return Tables{}, err
	}
	return t, nil
}

func numberTable(s *structpb.Struct, name string) (map[string]float64, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing table %s", ErrInvalidModel, name)
	}
	inner := v.GetStructValue()
	if inner == nil {
		return nil, fmt.Errorf("%w: table %s is not an object", ErrInvalidModel, name)
	}

	out := make(map[string]float64, len(inner.GetFields()))
	for key, entry := range inner.GetFields() {
		n, ok := entry.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%q] is not a number", ErrInvalidModel, name, key)
		}
		out[key] = n.NumberValue
	}
	return out, nil
}
