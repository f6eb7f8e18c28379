package cli

import (
	"fmt"

	"github.com/rileyhilliard/nodewatch/internal/config"
	"github.com/rileyhilliard/nodewatch/internal/engine"
	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/rileyhilliard/nodewatch/internal/util"
)

// loadConfig finds, loads, and validates the config file.
func loadConfig() (*config.Config, error) {
	path, err := config.Find(Config())
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New(errors.ErrConfig,
			"No config file found",
			"Run 'nodewatch init' to create one, or point at it with --config")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEngine loads config proper and restores persisted state.
func buildEngine() (*engine.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	eng := engine.New(cfg)
	if err := eng.LoadState(); err != nil {
		return nil, err
	}
	return eng, nil
}

// resolveNode verifies nodeID is configured, suggesting close matches when
// it is not.
func resolveNode(eng *engine.Engine, nodeID string) error {
	if _, ok := eng.Config().Nodes[nodeID]; ok {
		return nil
	}

	suggestion := "Run 'nodewatch config show' to list configured nodes"
	if similar := util.SuggestSimilar(nodeID, eng.NodeIDs(), 3); len(similar) > 0 {
		suggestion = fmt.Sprintf("Did you mean %s?", util.JoinOrDefault(similar, ""))
	}
	return errors.New(errors.ErrNotFound,
		fmt.Sprintf("Unknown node %q", nodeID), suggestion)
}
