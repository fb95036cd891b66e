package config

// serverFile mirrors the igniter.yaml document. Every field is optional;
// the loader fills defaults after decoding and before validation.
type serverFile struct {
	Listen   string       `yaml:"listen"`
	Versions versionsFile `yaml:"versions"`
	CORS     corsFile     `yaml:"cors"`
	Trace    string       `yaml:"trace" validate:"oneof=off stdout"`
}

type versionsFile struct {
	Path           string `yaml:"path" validate:"required"`
	URL            string `yaml:"url" validate:"required,url"`
	RefreshOnStart bool   `yaml:"refreshOnStart"`
}

type corsFile struct {
	Origins []string `yaml:"origins" validate:"min=1,dive,required"`
}
