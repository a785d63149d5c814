package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/byteworld/internal/actor"
	"github.com/Faultbox/byteworld/internal/catalog"
	"github.com/Faultbox/byteworld/internal/config"
	"github.com/Faultbox/byteworld/internal/grid"
	"github.com/Faultbox/byteworld/internal/logger"
	"github.com/Faultbox/byteworld/internal/simhost"
)

// simulation wires one controller per scenario character to a shared host.
type simulation struct {
	host     *simhost.Host
	director *actor.Director
	scripts  map[string][]actor.Command
	log      *zap.Logger
}

func newSimulation(cfg *config.Config) (*simulation, error) {
	registry := catalog.Default()
	if cfg.Catalog.Path != "" {
		var err error
		if registry, err = catalog.Load(cfg.Catalog.Path); err != nil {
			return nil, err
		}
	}
	logger.Info("event catalog loaded",
		zap.String("path", cfg.Catalog.Path),
		zap.Int("events", len(registry.Events())),
		zap.String("digest", registry.Digest()),
	)

	scenario, err := simhost.LoadScenario(cfg.Scenario.Path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario: %w", err)
	}
	return buildSimulation(cfg, registry, scenario)
}

func buildSimulation(cfg *config.Config, registry *catalog.Registry, scenario *simhost.Scenario) (*simulation, error) {
	terrain := scenario.BuildTerrain()
	host := simhost.New(registry, cfg.World, terrain)
	director := actor.NewDirector()
	host.OnComplete(director.OnPlaybackComplete)

	g := grid.New(cfg.World.GridSpacing)
	scripts := make(map[string][]actor.Command, len(scenario.Characters))
	for _, ch := range scenario.Characters {
		body, err := ch.Spawn(g, terrain)
		if err != nil {
			return nil, err
		}
		cmds, err := ch.ActorCommands()
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", ch.Name, err)
		}
		ctrl := actor.NewController(ch.Name, body, host, actor.WithSpeed(cfg.Actor.Speed))
		if err := director.Add(ctrl); err != nil {
			return nil, err
		}
		scripts[ch.Name] = cmds
	}

	return &simulation{
		host:     host,
		director: director,
		scripts:  scripts,
		log:      logger.Named("actorsim"),
	}, nil
}

// run replays every character's script concurrently. Each controller stays
// on its own goroutine.
func (s *simulation) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range s.director.Names() {
		g.Go(func() error {
			return s.replay(ctx, name)
		})
	}
	return g.Wait()
}

func (s *simulation) replay(ctx context.Context, name string) error {
	ctrl, _ := s.director.Controller(name)
	log := s.log.With(logger.Character(name))

	for _, cmd := range s.scripts[name] {
		err := ctrl.Submit(cmd)
		if errors.Is(err, actor.ErrBusy) {
			// Play out what is queued, then retry
			if err := s.drain(ctx, name, log); err != nil {
				return err
			}
			err = ctrl.Submit(cmd)
		}
		if err != nil {
			return fmt.Errorf("character %q: %s: %w", name, cmd, err)
		}
	}
	if err := s.drain(ctx, name, log); err != nil {
		return err
	}

	log.Info("script finished",
		zap.Stringer("coordinate", ctrl.Coordinate()),
		zap.Stringer("heading", ctrl.Heading()),
	)
	return nil
}

func (s *simulation) drain(ctx context.Context, name string, log *zap.Logger) error {
	done, err := s.host.Drain(ctx, name)
	for _, req := range done {
		log.Info("played", zap.Stringer("request", req))
	}
	return err
}
