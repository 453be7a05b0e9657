package snapshot

import (
	"context"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tavernkeep/dungeonmaster/internal/errors"
	"github.com/tavernkeep/dungeonmaster/internal/pkg/clock"
)

const (
	// Error messages
	errSlotEmpty   = "slot cannot be empty"
	errSnapshotNil = "snapshot cannot be nil"
)

// FileConfig holds the dependencies for the file repository
type FileConfig struct {
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type fileRepository struct {
	clock clock.Clock
}

// NewFileRepository creates a filesystem-backed snapshot repository.
// The slot is a file path; saves are whole-file YAML overwrites with
// no atomic rename or backup.
func NewFileRepository(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &fileRepository{clock: cfg.Clock}, nil
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}

	doc := newSaveDocument(input.Snapshot, r.clock.Now().UTC().Format(time.RFC3339))
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	if err := os.WriteFile(input.Slot, data, 0o600); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to write save file %s", input.Slot)
	}

	return &SaveOutput{}, nil
}

func (r *fileRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	data, err := os.ReadFile(input.Slot)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to read save file %s", input.Slot)
	}

	var doc saveDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeSnapshotFormat, "save file %s does not parse", input.Slot)
	}

	snap, err := doc.toSnapshot()
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Snapshot: snap}, nil
}
