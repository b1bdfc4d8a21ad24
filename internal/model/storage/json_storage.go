package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

const (
	snapshotKind    = "json_snapshot"
	snapshotVersion = 1
)

type meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

type snapshot struct {
	Meta     meta              `json:"_meta"`
	Expenses []expense.Expense `json:"expenses"`
}

// JSONStorage keeps the whole collection in one file, rewritten atomically
// on every save.
type JSONStorage struct {
	path string
}

func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Load returns an empty collection when the file does not exist yet. Both
// the snapshot object and a bare array of records are accepted.
func (s *JSONStorage) Load(ctx context.Context) ([]expense.Expense, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "jsonLoad")
	defer span.Finish()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []expense.Expense{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read expenses file")
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []expense.Expense{}, nil
	}

	var exps []expense.Expense
	if raw[0] == '[' {
		err = json.Unmarshal(raw, &exps)
	} else {
		var snap snapshot
		err = json.Unmarshal(raw, &snap)
		exps = snap.Expenses
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode expenses file")
	}
	if exps == nil {
		exps = []expense.Expense{}
	}
	return exps, nil
}

// Save writes to a temporary file next to the target and renames it over
// the target, so a crash never leaves a half-written ledger.
func (s *JSONStorage) Save(ctx context.Context, exps []expense.Expense) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "jsonSave")
	defer span.Finish()

	if exps == nil {
		exps = []expense.Expense{}
	}
	snap := snapshot{
		Meta:     meta{Storage: snapshotKind, Version: snapshotVersion, Timestamp: time.Now().UTC()},
		Expenses: exps,
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create data directory")
		}
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err = enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "encode expenses")
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "close temp file")
	}

	return errors.Wrap(os.Rename(tmp, s.path), "replace expenses file")
}
