package config

const (
	_etc = "/usr/local/etc/competency"
	_var = "/usr/local/var/competency"

	DefaultConfig      = _etc + "/competency.yaml"
	DefaultWorkdir     = _var
	DefaultCredentials = _etc + "/sheets/.google/credentials.json"
)
