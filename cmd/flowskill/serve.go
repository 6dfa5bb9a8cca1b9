package main

import (
	"context"

	"github.com/flowgraph-tools/flowskill/internal/lint"
	"github.com/flowgraph-tools/flowskill/internal/mcptools"
)

func newSkillService() (*mcptools.SkillService, error) {
	bundle, err := loadEmbeddedBundle()
	if err != nil {
		return nil, err
	}
	return mcptools.NewSkillService(bundle, lint.New(lint.Options{})), nil
}

func runServeStdio(ctx context.Context) error {
	svc, err := newSkillService()
	if err != nil {
		return err
	}
	return mcptools.RunStdio(ctx, mcptools.NewSkillMCPServer(svc, version))
}

func runServeHTTP(ctx context.Context, addr string) error {
	svc, err := newSkillService()
	if err != nil {
		return err
	}
	return mcptools.RunHTTP(ctx, mcptools.NewSkillMCPServer(svc, version), addr)
}
