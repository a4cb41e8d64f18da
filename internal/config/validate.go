package config

func ValidateForRun(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return ErrJWTSecretMissing
	}
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	return validatePlatform(cfg)
}
