package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildgate/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildgate/internal/adapters/i18n"     //nolint:depguard // Wired in app layer
	"go.trai.ch/buildgate/internal/adapters/keystore" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildgate/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildgate/internal/adapters/report"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildgate/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			keystore.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			report.NodeID,
			i18n.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	signing, err := graft.Dep[ports.SigningSource](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, signing, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	translator, err := graft.Dep[ports.Translator](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:        app,
		Logger:     log,
		Reporter:   reporter,
		Translator: translator,
	}, nil
}
