package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays cfg with MYFLIX_* variables. Unset variables leave the
// current value alone; unparsable ones panic.
func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
