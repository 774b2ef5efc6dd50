package config

// Config represents the complete configuration structure
type Config struct {
	List    ListConfig    `mapstructure:"list"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ListConfig holds the list API credentials
type ListConfig struct {
	URL       string `mapstructure:"url"`
	BotID     string `mapstructure:"bot_id"`
	BotToken  string `mapstructure:"bot_token"`
	UserToken string `mapstructure:"user_token"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
