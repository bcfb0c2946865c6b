package main

import (
	"github.com/jonathan/profile-forge/internal/config"
	"github.com/jonathan/profile-forge/internal/devicon"
	"github.com/jonathan/profile-forge/internal/llm"
)

// llmConfigFrom builds the model configuration, applying any per-tier
// overrides from the config file on top of the Gemini defaults.
func llmConfigFrom(cfg config.Config) *llm.Config {
	llmCfg := llm.DefaultGeminiConfig()
	if cfg.LiteModel != "" {
		llmCfg = llmCfg.WithModel(llm.TierLite, cfg.LiteModel)
	}
	if cfg.StandardModel != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.StandardModel)
	}
	if cfg.AdvancedModel != "" {
		llmCfg = llmCfg.WithModel(llm.TierAdvanced, cfg.AdvancedModel)
	}
	return llmCfg
}

// resolverOptionsFrom maps config file values onto resolver options.
func resolverOptionsFrom(cfg config.Config) devicon.ResolverOptions {
	return devicon.ResolverOptions{
		CacheSize:  cfg.CacheSize,
		CDNBase:    cfg.CDNBase,
		BadgeColor: cfg.BadgeColor,
		BadgeStyle: cfg.BadgeStyle,
	}
}
