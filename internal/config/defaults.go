package config

import "slackwire/internal/client"

func Defaults() *Config {
	return &Config{
		LogLevel: "info",
		Defaults: client.DefaultOptions(),
		History: HistoryConfig{
			Enabled:       true,
			DBPath:        "~/.slackwire/history.db",
			RetentionDays: 90,
		},
		Templates: TemplatesConfig{
			Dir: "~/.slackwire/templates",
		},
	}
}
