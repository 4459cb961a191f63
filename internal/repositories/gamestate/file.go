package gamestate

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

// FileConfig holds the configuration for the YAML file repository
type FileConfig struct {
	Dir   string
	Clock clock.Clock
}

// Validate ensures all required values are provided
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", c.Dir, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type fileRepository struct {
	dir   string
	clock clock.Clock
}

// NewFileRepository stores each game as {dir}/{id}.yaml, creating dir if needed
func NewFileRepository(cfg *FileConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to create save directory %s", cfg.Dir)
	}

	return &fileRepository{dir: cfg.Dir, clock: cfg.Clock}, nil
}

var _ Repository = (*fileRepository)(nil)

func (r *fileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := input.State.Validate(); err != nil {
		return nil, err
	}

	state := stamp(input.State, r.clock.Now())
	data, err := yaml.Marshal(state)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game %s", state.ID)
	}

	// write then rename so a crash never leaves a truncated save
	tmp, err := os.CreateTemp(r.dir, state.ID+".*.tmp")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create temporary save")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write save")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to close save")
	}
	if err := os.Rename(tmp.Name(), r.path(state.ID)); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to store game %s", state.ID)
	}

	return &SaveOutput{State: state}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := ValidateID(input.ID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(input.ID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("game %s not found", input.ID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read game %s", input.ID)
	}

	var state GameState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode game %s", input.ID)
	}
	if err := state.checkVersion(); err != nil {
		return nil, err
	}

	return &GetOutput{State: &state}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := ValidateID(input.ID); err != nil {
		return nil, err
	}

	if err := os.Remove(r.path(input.ID)); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("game %s not found", input.ID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to delete game %s", input.ID)
	}
	return &DeleteOutput{}, nil
}

func (r *fileRepository) path(id string) string {
	return filepath.Join(r.dir, id+".yaml")
}
