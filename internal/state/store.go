package state

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/autocode-dev/autocode/internal/defs"
)

//go:embed marker.schema.json
var markerSchemaJSON string

var markerSchema = jsonschema.MustCompileString("marker.schema.json", markerSchemaJSON)

// Store loads marker files from project directories.
type Store struct {
	markerName string
	logger     *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMarkerName overrides the marker file name (default defs.MarkerJSON).
func WithMarkerName(name string) StoreOption {
	return func(s *Store) {
		if name != "" {
			s.markerName = name
		}
	}
}

// WithLogger sets the logger used to report why a marker was treated as absent.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a Store reading defs.MarkerJSON.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		markerName: defs.MarkerJSON,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MarkerPath returns the marker file location inside projectDir.
func (s *Store) MarkerPath(projectDir string) string {
	return filepath.Join(filepath.Clean(projectDir), s.markerName)
}

// Load reads the marker in projectDir. It never fails: a missing, unreadable
// or malformed marker yields an absent Snapshot whose Reason tells them apart.
func (s *Store) Load(projectDir string) Snapshot {
	path := s.MarkerPath(projectDir)
	snap := s.load(path)
	if !snap.Present() {
		s.logger.Debug("project marker absent",
			"path", path, "reason", snap.Reason(), "error", snap.Cause())
	}
	return snap
}

// IsInitialized reports whether the marker in projectDir exists and says
// initialized is true.
func (s *Store) IsInitialized(projectDir string) bool {
	return s.Load(projectDir).Initialized()
}

func (s *Store) load(path string) Snapshot {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Absent(ReasonNotFound, err)
		}
		return Absent(ReasonUnreadable, err)
	}

	st, err := decodeMarker(data)
	if err != nil {
		return Absent(ReasonMalformed, err)
	}
	return Present(st)
}

// decodeMarker turns raw marker bytes into a ProjectState. Numbers are kept
// as json.Number so integer checks in the schema see the literal value.
func decodeMarker(data []byte) (ProjectState, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return ProjectState{}, ErrEmptyMarker
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return ProjectState{}, fmt.Errorf("parse marker: %w", err)
	}
	if dec.More() {
		return ProjectState{}, fmt.Errorf("parse marker: trailing data after object")
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return ProjectState{}, ErrNotObject
	}

	if err := markerSchema.Validate(obj); err != nil {
		return ProjectState{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	var st ProjectState
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &st,
		TagName:    "mapstructure",
		DecodeHook: integralNumberHook,
	})
	if err != nil {
		return ProjectState{}, fmt.Errorf("marker decoder: %w", err)
	}
	if err := decoder.Decode(obj); err != nil {
		return ProjectState{}, fmt.Errorf("decode marker: %w", err)
	}
	return st, nil
}

// integralNumberHook decodes integral JSON numbers written with a fraction
// or exponent (3.0, 1e3) into int fields. The schema has already rejected
// non-integral values and anything beyond int64.
func integralNumberHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	n, ok := data.(json.Number)
	if !ok || to.Kind() != reflect.Int {
		return data, nil
	}
	if i, err := n.Int64(); err == nil {
		return intFromInt64(n, i)
	}
	r, ok := new(big.Rat).SetString(n.String())
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return nil, fmt.Errorf("number %s is not an integer in range", n)
	}
	return intFromInt64(n, r.Num().Int64())
}

func intFromInt64(n json.Number, i int64) (int, error) {
	if i > math.MaxInt || i < math.MinInt {
		return 0, fmt.Errorf("number %s overflows int", n)
	}
	return int(i), nil
}
