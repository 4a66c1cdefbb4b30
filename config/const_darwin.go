package config

const (
	_etc = "/usr/local/etc/com.github.kompetanse/competency"
	_var = "/usr/local/var/com.github.kompetanse/competency"

	DefaultConfig      = _etc + "/competency.yaml"
	DefaultWorkdir     = _var
	DefaultCredentials = _etc + "/sheets/.google/credentials.json"
)
