package state

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Paintersrp/focusnest/internal/config"
	"github.com/Paintersrp/focusnest/internal/constants"
	indexsvc "github.com/Paintersrp/focusnest/internal/services/index"
	"github.com/Paintersrp/focusnest/internal/services/notes"
	"github.com/Paintersrp/focusnest/internal/store"
)

// State carries the loaded configuration and, once connected, the store and
// services shared by every command.
type State struct {
	Config *config.Config
	Home   string
	Store  store.Store
	Index  *indexsvc.Service
	Notes  *notes.Service

	open func(context.Context, store.Config) (store.Store, error)
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	return &State{Config: cfg, Home: home, open: openStore}, nil
}

// NewWithStore builds a connected state around an existing store.
func NewWithStore(cfg *config.Config, st store.Store, opts ...indexsvc.Option) *State {
	s := &State{Config: cfg}
	s.attach(st, opts...)
	return s
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	_ = viper.ReadInConfig()

	return config.Load(home)
}

// Connect opens the configured store on first use. Flag overrides bound
// through viper are applied before connecting.
func (s *State) Connect(ctx context.Context) error {
	if s == nil {
		return errors.New("state is not initialized")
	}
	if s.Store != nil {
		return nil
	}
	if s.Config == nil {
		return errors.New("config is not loaded")
	}
	if err := s.Config.ApplyOverrides(); err != nil {
		return err
	}

	open := s.open
	if open == nil {
		open = openStore
	}
	st, err := open(ctx, store.Config{
		Driver: s.Config.Database.Driver,
		DSN:    s.Config.Database.DSN,
	})
	if err != nil {
		return err
	}

	s.attach(st)
	return nil
}

func (s *State) attach(st store.Store, opts ...indexsvc.Option) {
	base := []indexsvc.Option{}
	if s.Config != nil {
		base = append(base, indexsvc.WithResurfacing(
			s.Config.Resurface.StaleAfter,
			s.Config.Resurface.RecentWithin,
		))
	}

	s.Store = st
	s.Index = indexsvc.NewService(st, append(base, opts...)...)
	s.Notes = notes.NewService(st, s.Index)
}

func openStore(ctx context.Context, cfg store.Config) (store.Store, error) {
	return store.Open(ctx, cfg)
}

// Close releases the shared index service and the store.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Index != nil {
		if err := s.Index.Close(); err != nil && !errors.Is(err, indexsvc.ErrClosed) {
			errs = append(errs, err)
		}
		s.Index = nil
	}
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Store = nil
	}
	s.Notes = nil

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
