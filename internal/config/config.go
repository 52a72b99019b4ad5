package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Engine EngineConfig `mapstructure:"engine" validate:"required"`
	Batch  BatchConfig  `mapstructure:"batch" validate:"required"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// EngineConfig sets the fortune-cycle horizons and the solar-term table.
type EngineConfig struct {
	DaiunSteps int `mapstructure:"daiun_steps" validate:"required,min=1,max=12"`
	NenunYears int `mapstructure:"nenun_years" validate:"required,min=1,max=150"`
	// SolarTermOverridesFile optionally names a YAML file of extra
	// solar-term entry days, merged over the embedded table.
	SolarTermOverridesFile string `mapstructure:"solar_term_overrides_file" validate:"omitempty,file"`
}

// BatchConfig bounds batch computation.
type BatchConfig struct {
	MaxItems    int `mapstructure:"max_items" validate:"required,min=1,max=10000"`
	Concurrency int `mapstructure:"concurrency" validate:"required,min=1,max=256"`
}

// CacheConfig sizes the report cache. Zero disables caching.
type CacheConfig struct {
	Size int `mapstructure:"size" validate:"min=0"`
}
