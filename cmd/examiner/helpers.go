package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"

	"github.com/reclamegraag/examiner/internal/config"
	"github.com/reclamegraag/examiner/internal/database"
	"github.com/reclamegraag/examiner/internal/practice"
	"github.com/reclamegraag/examiner/internal/wordset"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// store is an open database with its migrated repository.
type store struct {
	db   *sqlx.DB
	repo *wordset.ObservedRepository
}

func openStore(cfg *config.Config) (*store, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Migrate() > %w", err)
	}
	return &store{
		db:   db,
		repo: wordset.NewObservedRepository(wordset.NewDBRepository(db)),
	}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

// withStore loads the configuration, opens the store and runs fn.
func withStore(fn func(cfg *config.Config, s *store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()
	return fn(cfg, s)
}

func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, arg)
	}
	return id, nil
}

func findSet(ctx context.Context, repo wordset.SetRepository, id int64) (*wordset.WordSet, error) {
	set, err := repo.FindSet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("FindSet(%d) > %w", id, err)
	}
	if set == nil {
		return nil, fmt.Errorf("set %d: %w", id, wordset.ErrNotFound)
	}
	return set, nil
}

func findPair(ctx context.Context, repo wordset.SetRepository, setID, pairID int64) (*wordset.WordPair, error) {
	pairs, err := repo.FindPairsBySet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("FindPairsBySet(%d) > %w", setID, err)
	}
	for i := range pairs {
		if pairs[i].ID == pairID {
			return &pairs[i], nil
		}
	}
	return nil, fmt.Errorf("pair %d in set %d: %w", pairID, setID, wordset.ErrNotFound)
}

type ModeFlag wordset.PracticeMode

// Set implements pflag.Value.
func (m *ModeFlag) Set(v string) error {
	for _, mode := range wordset.PracticeModes {
		if string(mode) == v {
			*m = ModeFlag(mode)
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, valid values are %q", v, wordset.PracticeModes)
}

// String implements pflag.Value.
func (m *ModeFlag) String() string {
	if m == nil {
		return ""
	}
	return string(*m)
}

// Type implements pflag.Value.
func (m *ModeFlag) Type() string {
	return "ModeFlag"
}

type DirectionFlag practice.Direction

// Set implements pflag.Value.
func (d *DirectionFlag) Set(v string) error {
	direction, err := practice.ParseDirection(v)
	if err != nil {
		return fmt.Errorf("invalid value %q, valid values are %q", v, practice.Directions)
	}
	*d = DirectionFlag(direction)
	return nil
}

// String implements pflag.Value.
func (d *DirectionFlag) String() string {
	if d == nil {
		return ""
	}
	return string(*d)
}

// Type implements pflag.Value.
func (d *DirectionFlag) Type() string {
	return "DirectionFlag"
}

var (
	_ pflag.Value = (*ModeFlag)(nil)
	_ pflag.Value = (*DirectionFlag)(nil)
	_ pflag.Value = (*HideFlag)(nil)
)
