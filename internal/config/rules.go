package config

import (
	"fmt"

	"github.com/lgbarn/movecheck-go/internal/engine"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// RuleConfig holds the engine rule switches.
type RuleConfig struct {
	// KingRule judges ordinary king moves.
	KingRule engine.KingRule

	// Castling enables the castling branch of the king rule.
	Castling bool

	// FixedBound restricts destinations to 1..FixedBound on both axes.
	// Zero uses the board's own extents.
	FixedBound int
}

// NewRuleConfig creates a RuleConfig with default values.
func NewRuleConfig() *RuleConfig {
	return &RuleConfig{
		KingRule: engine.KingAdjacent,
		Castling: true,
	}
}

// Validate checks that the rule configuration is valid.
func (r *RuleConfig) Validate() error {
	switch r.KingRule {
	case engine.KingAdjacent, engine.KingEitherAxis:
	default:
		return fmt.Errorf("king rule %v: %w", r.KingRule, errors.ErrInvalidConfig)
	}
	if r.FixedBound < 0 {
		return fmt.Errorf("fixed bound %d is negative: %w", r.FixedBound, errors.ErrInvalidConfig)
	}
	return nil
}

// EngineOptions maps the rule switches onto engine options.
func (r *RuleConfig) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithKingRule(r.KingRule),
		engine.WithCastling(r.Castling),
		engine.WithFixedBound(r.FixedBound),
	}
}

// NewEngine builds an engine for these rules.
func (r *RuleConfig) NewEngine() *engine.Engine {
	return engine.New(r.EngineOptions()...)
}
