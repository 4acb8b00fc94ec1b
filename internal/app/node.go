package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gunchamalik/wheelhouse/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"github.com/gunchamalik/wheelhouse/internal/adapters/git"        //nolint:depguard // Wired in app layer
	"github.com/gunchamalik/wheelhouse/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"github.com/gunchamalik/wheelhouse/internal/adapters/pip"        //nolint:depguard // Wired in app layer
	"github.com/gunchamalik/wheelhouse/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"github.com/gunchamalik/wheelhouse/internal/adapters/wheelcache" //nolint:depguard // Wired in app layer
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
)

const (
	// PipelineNodeID is the unique identifier for the Pipeline Graft node.
	PipelineNodeID graft.ID = "app.pipeline"
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the wired application surface handed to main.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        PipelineNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.ResolverNodeID,
			git.ClonerNodeID,
			pip.BuilderNodeID,
			pip.InstallerNodeID,
			wheelcache.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runPipelineNode,
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			PipelineNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			pipeline, err := graft.Dep[*Pipeline](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, pipeline, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runPipelineNode(ctx context.Context) (*Pipeline, error) {
	resolver, err := graft.Dep[ports.HeadResolver](ctx)
	if err != nil {
		return nil, err
	}
	cloner, err := graft.Dep[ports.SourceCloner](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[ports.WheelBuilder](ctx)
	if err != nil {
		return nil, err
	}
	installer, err := graft.Dep[ports.PackageInstaller](ctx)
	if err != nil {
		return nil, err
	}
	cache, err := graft.Dep[ports.WheelCache](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	return NewPipeline(resolver, cloner, builder, installer, cache, log, tracer), nil
}
